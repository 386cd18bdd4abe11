package sink

// Sink is the destination for synthesized pointer input. Implementations
// translate calls into whatever the underlying transport needs: a
// uinput device, an X11 connection, or just a log line.
//
// Move and Scroll deltas are already accelerated and quantized by the
// gesture engine; a Sink must not re-scale them.
type Sink interface {
	// Move reports a relative cursor motion.
	Move(dx, dy int8) error
	// Button reports a button transition. down=true is press,
	// down=false is release. button identifies which button (0 = left,
	// matching the engine's only emitted button today).
	Button(button int, down bool) error
	// Scroll reports wheel motion. horizontal selects the horizontal
	// wheel axis instead of the vertical one.
	Scroll(units int8, horizontal bool) error
	// Close releases the underlying transport.
	Close() error
}
