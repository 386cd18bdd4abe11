package gesture

import "math"

// ProcessInput advances the state machine by one raw touch sample and
// returns at most one Action. It never allocates, blocks, or reads the
// clock: now is the caller's monotonic timestamp in milliseconds.
func (s *State) ProcessInput(ev Event, now int64) Action {
	switch ev.Type {
	case EventPressed:
		return s.onPressed(ev, now)
	case EventPressing:
		return s.onPressing(ev, now)
	case EventReleased:
		return s.onReleased(ev, now)
	default:
		return noneAction()
	}
}

// Tick advances time without a new touch sample, for the two
// transitions that depend on elapsed time alone: multi-tap window
// expiry and tap-then-hold drag promotion while WaitingForChain.
func (s *State) Tick(now int64) Action {
	if s.phase != PhaseWaitingForChain {
		return noneAction()
	}

	if s.contactDown {
		elapsed := now - s.touchDownTime
		if elapsed >= s.cfg.Tuning.DragHoldMS && s.totalMovement <= s.cfg.Tuning.TapMovePixels {
			s.phase = PhaseDragging
			s.buttonHeld = true
			s.tapCount = 0
			return Action{Kind: ActionDragStart}
		}
		return noneAction()
	}

	if now-s.lastReleaseTime >= s.cfg.Tuning.MultiTapWindowMS {
		clicks := s.tapCount
		s.phase = PhaseIdle
		s.tapCount = 0
		if clicks > 0 {
			return Action{Kind: ActionClick, Clicks: clicks}
		}
	}
	return noneAction()
}

func (s *State) onPressed(ev Event, now int64) Action {
	zone := s.cfg.classify(ev.X, ev.Y)

	switch s.phase {
	case PhaseIdle:
		s.startContact(ev, now, zone)
		s.phase = PhaseDown
		return noneAction()

	case PhaseWaitingForChain:
		s.startContact(ev, now, s.chainStartZone)
		if s.cfg.Tuning.EmitDragPending {
			return Action{Kind: ActionDragPending, Pending: true}
		}
		return noneAction()

	default:
		// A press while already tracking a contact is a protocol
		// violation from the sampler; ignore it rather than corrupt
		// state.
		return noneAction()
	}
}

func (s *State) onPressing(ev Event, now int64) Action {
	switch s.phase {
	case PhaseDown, PhaseMoving, PhaseScrolling:
		return s.onPressingMain(ev, now)
	case PhaseWaitingForChain:
		if !s.contactDown {
			return noneAction()
		}
		return s.onPressingMain(ev, now)
	case PhaseDragging:
		return s.onPressingDrag(ev, now)
	default:
		return noneAction()
	}
}

func (s *State) onPressingMain(ev Event, now int64) Action {
	dt := now - s.lastSampleTime
	if dt <= 0 {
		dt = 1
	}

	rawDX := ev.X - s.lastPos.X
	rawDY := ev.Y - s.lastPos.Y
	jitter := s.cfg.Tuning.JitterPixels

	if isJitter(rawDX, rawDY, jitter) {
		s.lastPos = point{ev.X, ev.Y}
		s.lastSampleTime = now
		return noneAction()
	}

	s.totalMovement += abs32(rawDX) + abs32(rawDY)

	fx := float64(filterJitter(rawDX, jitter))
	fy := float64(filterJitter(rawDY, jitter))

	seconds := float64(dt) / 1000.0
	instVX := fx / seconds
	instVY := fy / seconds
	s.vxSmooth = ewmaUpdate(s.vxSmooth, instVX, s.cfg.Tuning.Alpha)
	s.vySmooth = ewmaUpdate(s.vySmooth, instVY, s.cfg.Tuning.Alpha)
	speed := math.Hypot(s.vxSmooth, s.vySmooth)

	s.lastPos = point{ev.X, ev.Y}
	s.lastSampleTime = now

	zone := s.chainStartZone
	if zone == ZoneScrollV || zone == ZoneScrollH || zone == ZoneScrollCorner {
		chained := s.phase == PhaseWaitingForChain
		s.phase = PhaseScrolling
		if chained && s.tapCount > 0 {
			// Leaving the chain: flush its accumulated clicks first.
			clicks := s.tapCount
			s.tapCount = 0
			return Action{Kind: ActionClick, Clicks: clicks}
		}
		return s.emitScroll(zone, fx, fy)
	}

	// A held second contact of a tap chain promotes to Dragging the
	// moment it moves meaningfully, without waiting for drag_hold_ms.
	if s.phase == PhaseWaitingForChain && s.contactDown && s.totalMovement > s.cfg.Tuning.DragMovePixels {
		s.phase = PhaseDragging
		s.buttonHeld = true
		s.tapCount = 0
		return Action{Kind: ActionDragStart}
	}

	if (s.phase == PhaseDown || s.phase == PhaseWaitingForChain) && s.totalMovement > s.cfg.Tuning.TapMovePixels {
		chained := s.phase == PhaseWaitingForChain
		s.phase = PhaseMoving
		if chained && s.tapCount > 0 {
			// Leaving the chain: flush its accumulated clicks first.
			clicks := s.tapCount
			s.tapCount = 0
			return Action{Kind: ActionClick, Clicks: clicks}
		}
	}

	return s.emitMove(fx, fy, speed)
}

func (s *State) emitMove(fx, fy, speed float64) Action {
	ax := s.cfg.Tuning.applyAcceleration(fx, speed)
	ay := s.cfg.Tuning.applyAcceleration(fy, speed)

	dx := extractIntegerDelta(&s.accumX, ax)
	dy := extractIntegerDelta(&s.accumY, ay)

	if dx == 0 && dy == 0 {
		return noneAction()
	}
	if s.phase == PhaseDragging {
		return Action{Kind: ActionDragMove, DX: clampInt8(dx), DY: clampInt8(dy)}
	}
	return Action{Kind: ActionMove, DX: clampInt8(dx), DY: clampInt8(dy)}
}

func (s *State) emitScroll(zone Zone, fx, fy float64) Action {
	sens := s.cfg.Tuning.ScrollSensitivityPixels
	if zone == ZoneScrollV || zone == ZoneScrollCorner {
		units := extractIntegerDelta(&s.scrollAccumV, fy/sens)
		if units != 0 {
			// Inverted for natural scrolling: downward finger motion
			// produces negative units.
			return Action{Kind: ActionScrollV, ScrollUnits: clampInt8(-units)}
		}
	}
	if zone == ZoneScrollH {
		units := extractIntegerDelta(&s.scrollAccumH, fx/sens)
		if units != 0 {
			return Action{Kind: ActionScrollH, ScrollUnits: clampInt8(units)}
		}
	}
	return noneAction()
}

func (s *State) onPressingDrag(ev Event, now int64) Action {
	dt := now - s.lastSampleTime
	if dt <= 0 {
		dt = 1
	}
	rawDX := ev.X - s.lastPos.X
	rawDY := ev.Y - s.lastPos.Y
	jitter := s.cfg.Tuning.JitterPixels

	if isJitter(rawDX, rawDY, jitter) {
		s.lastPos = point{ev.X, ev.Y}
		s.lastSampleTime = now
		return noneAction()
	}

	s.totalMovement += abs32(rawDX) + abs32(rawDY)

	fx := float64(filterJitter(rawDX, jitter))
	fy := float64(filterJitter(rawDY, jitter))

	seconds := float64(dt) / 1000.0
	instVX := fx / seconds
	instVY := fy / seconds
	s.vxSmooth = ewmaUpdate(s.vxSmooth, instVX, s.cfg.Tuning.Alpha)
	s.vySmooth = ewmaUpdate(s.vySmooth, instVY, s.cfg.Tuning.Alpha)
	speed := math.Hypot(s.vxSmooth, s.vySmooth)

	s.lastPos = point{ev.X, ev.Y}
	s.lastSampleTime = now

	return s.emitMove(fx, fy, speed)
}

func (s *State) onReleased(ev Event, now int64) Action {
	switch s.phase {
	case PhaseDown:
		return s.finishTapCandidate(now)

	case PhaseMoving, PhaseScrolling:
		s.phase = PhaseIdle
		s.tapCount = 0
		s.contactDown = false
		return noneAction()

	case PhaseWaitingForChain:
		s.contactDown = false
		return s.finishTapCandidate(now)

	case PhaseDragging:
		s.phase = PhaseIdle
		s.buttonHeld = false
		s.tapCount = 0
		s.contactDown = false
		return Action{Kind: ActionDragEnd}

	default:
		return noneAction()
	}
}

// finishTapCandidate classifies the just-ended contact as a non-tap
// (bounce, hold, or swipe: chain abandoned, back to Idle) or a tap
// (chain continues; Tick flushes it once the multi-tap window expires).
// A tap that brings the chain to four flushes Click{4} immediately.
func (s *State) finishTapCandidate(now int64) Action {
	s.contactDown = false
	if !s.classifyTap(now) {
		s.phase = PhaseIdle
		s.tapCount = 0
		return noneAction()
	}

	s.tapCount++
	s.lastReleaseTime = now
	s.phase = PhaseWaitingForChain

	if s.tapCount >= 4 {
		clicks := s.tapCount
		s.phase = PhaseIdle
		s.tapCount = 0
		return Action{Kind: ActionClick, Clicks: clicks}
	}
	return noneAction()
}

// classifyTap reports whether the contact that just ended qualifies as
// a tap: duration strictly greater than tap_min_ms (a contact lasting
// exactly tap_min_ms is a bounce, not a tap), no greater than
// tap_max_ms, and Manhattan-summed net displacement from the
// touch-down point strictly less than tap_move_px — a net displacement
// equal to the threshold is a swipe, not a tap.
func (s *State) classifyTap(now int64) bool {
	duration := now - s.touchDownTime
	if duration <= s.cfg.Tuning.TapMinMS || duration > s.cfg.Tuning.TapMaxMS {
		return false
	}
	dx := abs32(s.lastPos.X - s.touchStart.X)
	dy := abs32(s.lastPos.Y - s.touchStart.Y)
	net := dx + dy
	return net < s.cfg.Tuning.TapMovePixels
}
