package gesture

import "sync/atomic"

// Phase is one of the gesture state machine's touch lifecycle states.
type Phase int32

const (
	PhaseIdle Phase = iota
	PhaseDown
	PhaseMoving
	PhaseScrolling
	PhaseWaitingForChain
	PhaseDragging
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDown:
		return "down"
	case PhaseMoving:
		return "moving"
	case PhaseScrolling:
		return "scrolling"
	case PhaseWaitingForChain:
		return "waiting-for-chain"
	case PhaseDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// EventType distinguishes the three shapes of raw touch sample the
// host polling loop can deliver.
type EventType int

const (
	EventPressed EventType = iota
	EventPressing
	EventReleased
)

// Event is one raw touch sample. Coordinates are panel pixels,
// pre-rotated/mirrored by the host so the axes match the configured
// resolution.
type Event struct {
	Type EventType
	X, Y int32
}

type point struct{ X, Y int32 }

// State holds all mutable engine state. It is owned solely by the
// engine; callers never write its fields directly. Construct with
// NewState and drive it with ProcessInput/Tick.
type State struct {
	cfg Config

	phase      Phase
	touchStart point
	lastPos    point

	touchDownTime   int64
	lastSampleTime  int64
	lastReleaseTime int64

	tapCount      uint8
	totalMovement int32
	buttonHeld    bool
	contactDown   bool

	vxSmooth, vySmooth float64
	accumX, accumY     float64
	scrollAccumV       float64
	scrollAccumH       float64

	chainStartZone Zone
}

// NewState constructs an engine instance in the Idle phase for the
// given configuration. Configuration is never mutated after this call.
func NewState(cfg Config) State {
	return State{cfg: cfg, phase: PhaseIdle}
}

// Config returns the engine's immutable configuration.
func (s *State) Config() Config { return s.cfg }

// Phase returns the engine's current lifecycle phase.
func (s *State) Phase() Phase { return s.phase }

// Reset returns the engine to a clean Idle state, preserving
// configuration. It is idempotent and emits no action — callers invoke
// it directly rather than through ProcessInput/Tick.
func (s *State) Reset() {
	cfg := s.cfg
	*s = State{cfg: cfg, phase: PhaseIdle}
}

func (s *State) startContact(ev Event, now int64, zone Zone) {
	s.touchStart = point{ev.X, ev.Y}
	s.lastPos = point{ev.X, ev.Y}
	s.touchDownTime = now
	s.lastSampleTime = now
	s.totalMovement = 0
	s.accumX, s.accumY = 0, 0
	s.scrollAccumV, s.scrollAccumH = 0, 0
	s.vxSmooth, s.vySmooth = 0, 0
	s.chainStartZone = zone
	s.contactDown = true
}

// checkInvariants verifies the invariants of §3 against the current
// state. It is not used by the hot path — only by tests — so it
// allocates and returns a descriptive error rather than panicking.
func (s *State) checkInvariants() error {
	if s.phase == PhaseIdle {
		if s.buttonHeld {
			return errInvariant("phase is Idle but button_held is true")
		}
		if s.tapCount != 0 {
			return errInvariant("phase is Idle but tap_count is nonzero")
		}
	}
	if s.buttonHeld && s.phase != PhaseDragging {
		return errInvariant("button_held is true but phase is not Dragging")
	}
	if s.tapCount != 0 && s.phase != PhaseWaitingForChain {
		return errInvariant("tap_count is nonzero outside WaitingForChain")
	}
	if s.accumX <= -1 || s.accumX >= 1 {
		return errInvariant("accum_x out of (-1,1)")
	}
	if s.accumY <= -1 || s.accumY >= 1 {
		return errInvariant("accum_y out of (-1,1)")
	}
	if s.scrollAccumV <= -1 || s.scrollAccumV >= 1 {
		return errInvariant("scroll_accum_v out of (-1,1)")
	}
	if s.scrollAccumH <= -1 || s.scrollAccumH >= 1 {
		return errInvariant("scroll_accum_h out of (-1,1)")
	}
	return nil
}

type invariantError string

func (e invariantError) Error() string { return "gesture: invariant violated: " + string(e) }

func errInvariant(msg string) error { return invariantError(msg) }

// StatusMirror lets a host publish engine-derived status (current
// phase and zone) for a second goroutine — e.g. a UI renderer — to
// read via word-atomic loads, without the engine itself taking a lock.
// The engine never touches a StatusMirror; the host updates it after
// each ProcessInput/Tick call.
type StatusMirror struct {
	phase atomic.Int32
	zone  atomic.Int32
}

// Update publishes the given state's phase and zone.
func (m *StatusMirror) Update(s *State) {
	m.phase.Store(int32(s.phase))
	m.zone.Store(int32(s.chainStartZone))
}

// Phase returns the most recently published phase.
func (m *StatusMirror) Phase() Phase { return Phase(m.phase.Load()) }

// Zone returns the most recently published zone.
func (m *StatusMirror) Zone() Zone { return Zone(m.zone.Load()) }
