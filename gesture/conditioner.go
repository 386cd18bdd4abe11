package gesture

import "math"

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// filterJitter subtracts the dead zone from a raw delta, rather than
// passing it through untouched, so motion that starts outside the dead
// zone doesn't jump.
func filterJitter(raw, threshold int32) int32 {
	if abs32(raw) <= threshold {
		return 0
	}
	if raw > 0 {
		return raw - threshold
	}
	return raw + threshold
}

// isJitter reports whether both axes lie within the dead zone
// simultaneously.
func isJitter(dx, dy, threshold int32) bool {
	return abs32(dx) <= threshold && abs32(dy) <= threshold
}

// ewmaUpdate applies one step of exponential smoothing.
func ewmaUpdate(smooth, instant, alpha float64) float64 {
	return alpha*instant + (1-alpha)*smooth
}

// applyAcceleration maps a filtered delta and the current scalar speed
// to an accelerated delta via the piecewise curve: a sub-unity
// multiplier below the precision threshold, a linear ramp to 1.0
// through the linear threshold, a concave sqrt ramp up to accel_max
// through the max threshold, and a clamp to accel_max beyond it. Both
// the piecewise curve and the smooth-power alternative permitted by the
// design are monotonically non-decreasing in speed; this implementation
// commits to piecewise, matching the original firmware's curve.
func (t Tuning) applyAcceleration(delta, speed float64) float64 {
	if math.Abs(delta) < 0.5 {
		return delta
	}
	if t.FixedSensitivity > 0 {
		return delta * t.FixedSensitivity
	}

	var mult float64
	switch {
	case speed < t.AccelPrecisionThresholdPPS:
		mult = t.AccelMin
	case speed < t.AccelLinearThresholdPPS:
		frac := (speed - t.AccelPrecisionThresholdPPS) / (t.AccelLinearThresholdPPS - t.AccelPrecisionThresholdPPS)
		mult = t.AccelMin + frac*(1.0-t.AccelMin)
	case speed < t.AccelMaxThresholdPPS:
		frac := (speed - t.AccelLinearThresholdPPS) / (t.AccelMaxThresholdPPS - t.AccelLinearThresholdPPS)
		mult = 1.0 + math.Sqrt(frac)*(t.AccelMax-1.0)
	default:
		mult = t.AccelMax
	}
	return delta * mult
}

// extractIntegerDelta accumulates delta into accum and returns the
// truncated-toward-zero integer part, leaving the fractional remainder
// in accum so slow motion isn't permanently lost to truncation. The
// invariant accum ∈ (-1, 1) holds after every call.
func extractIntegerDelta(accum *float64, delta float64) int32 {
	*accum += delta
	whole := math.Trunc(*accum)
	*accum -= whole
	return int32(whole)
}

// clampInt8 clamps a delta to the signed 8-bit range the action emitter
// guarantees to callers.
func clampInt8(v int32) int8 {
	switch {
	case v > 127:
		return 127
	case v < -127:
		return -127
	default:
		return int8(v)
	}
}
