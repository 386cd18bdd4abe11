package gesture

import "testing"

func TestFilterJitterSubtractsDeadZone(t *testing.T) {
	tests := []struct {
		raw, threshold, want int32
	}{
		{0, 3, 0},
		{3, 3, 0},
		{-3, 3, 0},
		{4, 3, 1},
		{-4, 3, -1},
		{10, 3, 7},
		{-10, 3, -7},
	}
	for _, tc := range tests {
		got := filterJitter(tc.raw, tc.threshold)
		if got != tc.want {
			t.Errorf("filterJitter(%d,%d) = %d, want %d", tc.raw, tc.threshold, got, tc.want)
		}
	}
}

func TestIsJitterRequiresBothAxes(t *testing.T) {
	if !isJitter(2, 2, 3) {
		t.Error("both axes within threshold should be jitter")
	}
	if isJitter(5, 0, 3) {
		t.Error("one axis exceeding threshold should not be jitter")
	}
}

func TestEwmaUpdateConverges(t *testing.T) {
	smooth := 0.0
	for i := 0; i < 200; i++ {
		smooth = ewmaUpdate(smooth, 100.0, 0.3)
	}
	if diff := smooth - 100.0; diff > 0.01 || diff < -0.01 {
		t.Errorf("ewma should converge to steady input, got %v", smooth)
	}
}

func TestEwmaUpdateAlphaOneIsInstant(t *testing.T) {
	got := ewmaUpdate(5.0, 20.0, 1.0)
	if got != 20.0 {
		t.Errorf("alpha=1 should pass the instant value through unchanged, got %v", got)
	}
}

func TestApplyAccelerationSubPixelPassesThrough(t *testing.T) {
	tun := DefaultTuning()
	got := tun.applyAcceleration(0.3, 1000)
	if got != 0.3 {
		t.Errorf("deltas under 0.5px should pass through unscaled, got %v", got)
	}
}

func TestApplyAccelerationFixedSensitivityOverridesCurve(t *testing.T) {
	tun := DefaultTuning()
	tun.FixedSensitivity = 2.0
	got := tun.applyAcceleration(10, 5000)
	if got != 20 {
		t.Errorf("fixed sensitivity should multiply directly regardless of speed, got %v", got)
	}
}

func TestApplyAccelerationMonotonicInSpeed(t *testing.T) {
	tun := DefaultTuning()
	speeds := []float64{10, 50, 99, 100, 250, 400, 800, 1500, 3000}
	var prevMult float64
	for i, speed := range speeds {
		out := tun.applyAcceleration(10, speed)
		mult := out / 10
		if i > 0 && mult < prevMult-1e-9 {
			t.Errorf("acceleration multiplier decreased from %v to %v between speed steps", prevMult, mult)
		}
		prevMult = mult
	}
}

func TestApplyAccelerationClampsAtMax(t *testing.T) {
	tun := DefaultTuning()
	got := tun.applyAcceleration(10, 10000)
	want := 10 * tun.AccelMax
	if got != want {
		t.Errorf("speed beyond accel_max_threshold_pps should clamp to accel_max, got %v want %v", got, want)
	}
}

func TestApplyAccelerationFloorsAtMin(t *testing.T) {
	tun := DefaultTuning()
	got := tun.applyAcceleration(10, 1)
	want := 10 * tun.AccelMin
	if got != want {
		t.Errorf("speed below accel_precision_threshold_pps should floor to accel_min, got %v want %v", got, want)
	}
}

func TestExtractIntegerDeltaAccumulatesFractions(t *testing.T) {
	var accum float64
	var sum int32
	for i := 0; i < 10; i++ {
		sum += extractIntegerDelta(&accum, 0.37)
	}
	// 10 * 0.37 = 3.7, truncation toward zero must yield 3 whole units
	// across the run, not 0 (lost) and not 4 (over-counted).
	if sum != 3 {
		t.Errorf("accumulated sub-pixel motion should yield 3 whole units, got %d", sum)
	}
	if accum <= -1 || accum >= 1 {
		t.Errorf("accum must stay in (-1,1), got %v", accum)
	}
}

func TestExtractIntegerDeltaNegative(t *testing.T) {
	var accum float64
	var sum int32
	for i := 0; i < 10; i++ {
		sum += extractIntegerDelta(&accum, -0.37)
	}
	if sum != -3 {
		t.Errorf("accumulated negative sub-pixel motion should yield -3 whole units, got %d", sum)
	}
}

func TestClampInt8(t *testing.T) {
	tests := []struct{ in, want int32 }{
		{0, 0}, {127, 127}, {128, 127}, {1000, 127}, {-127, -127}, {-128, -127}, {-1000, -127},
	}
	for _, tc := range tests {
		if got := clampInt8(tc.in); int32(got) != tc.want {
			t.Errorf("clampInt8(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
