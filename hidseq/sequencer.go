package hidseq

// Pulse is a single button transition the Sequencer wants the caller
// to send. A zero-value Pulse means nothing to send.
type Pulse int

const (
	PulseNone Pulse = iota
	PulseDown
	PulseUp
)

func (p Pulse) String() string {
	switch p {
	case PulseDown:
		return "down"
	case PulseUp:
		return "up"
	default:
		return "none"
	}
}

// phase mirrors the click queue's three states: idle between clicks,
// pressed (button-down pulse outstanding), released (waiting out the
// inter-click gap before the next press).
type phase int

const (
	phaseIdle phase = iota
	phasePressed
	phaseReleased
)

const (
	defaultPressMS = 10
	defaultGapMS   = 30
)

// Sequencer converts a queued click count into down/up pulses spaced
// by PressMS/GapMS. Enqueue a count, then call Tick on every poll
// until Idle reports true.
type Sequencer struct {
	PressMS int64
	GapMS   int64

	pendingClicks uint8
	phase         phase
	phaseChangeAt int64
}

// NewSequencer constructs a Sequencer with the default press/gap
// timing (10ms press, 30ms gap), matching the reference firmware's
// click queue.
func NewSequencer() Sequencer {
	return Sequencer{PressMS: defaultPressMS, GapMS: defaultGapMS}
}

// Enqueue schedules count clicks starting at now, discarding any
// click sequence already in progress. count of 0 is a no-op.
func (s *Sequencer) Enqueue(count uint8, now int64) {
	if count == 0 {
		return
	}
	s.pendingClicks = count
	s.phase = phaseIdle
	s.phaseChangeAt = now
}

// Idle reports whether the sequencer has no pulses left to emit.
func (s *Sequencer) Idle() bool { return s.pendingClicks == 0 && s.phase == phaseIdle }

// Tick advances the sequencer and returns the pulse, if any, the
// caller should send this call. It must be called frequently enough
// relative to PressMS/GapMS to not miss the timing window; a single
// call emits at most one pulse.
func (s *Sequencer) Tick(now int64) Pulse {
	if s.pendingClicks == 0 {
		return PulseNone
	}

	elapsed := now - s.phaseChangeAt

	switch s.phase {
	case phaseIdle:
		s.phase = phasePressed
		s.phaseChangeAt = now
		return PulseDown

	case phasePressed:
		if elapsed >= s.PressMS {
			s.pendingClicks--
			s.phaseChangeAt = now
			if s.pendingClicks == 0 {
				s.phase = phaseIdle
			} else {
				s.phase = phaseReleased
			}
			return PulseUp
		}
		return PulseNone

	case phaseReleased:
		if s.pendingClicks > 0 && elapsed >= s.GapMS {
			s.phase = phaseIdle
			s.phaseChangeAt = now
		} else if s.pendingClicks == 0 {
			s.phase = phaseIdle
		}
		return PulseNone

	default:
		return PulseNone
	}
}
