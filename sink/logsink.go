package sink

// LogSink logs every call instead of touching hardware. It's the
// sink the trace-replay CLI mode uses; live mode never falls back to
// it, so off Linux padgestd has no live sink.
type LogSink struct {
	log Logger
}

// NewLogSink wraps a Logger as a Sink.
func NewLogSink(log Logger) *LogSink { return &LogSink{log: log} }

func (s *LogSink) Move(dx, dy int8) error {
	s.log.Debug("move", "dx", dx, "dy", dy)
	return nil
}

func (s *LogSink) Button(button int, down bool) error {
	s.log.Debug("button", "button", button, "down", down)
	return nil
}

func (s *LogSink) Scroll(units int8, horizontal bool) error {
	axis := "v"
	if horizontal {
		axis = "h"
	}
	s.log.Debug("scroll", "units", units, "axis", axis)
	return nil
}

func (s *LogSink) Close() error {
	s.log.Info("sink closed")
	return nil
}
