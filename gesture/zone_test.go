package gesture

import "testing"

func TestClassify(t *testing.T) {
	const hres, vres = 1000, 600
	const scrollW, scrollH = 40, 30

	tests := []struct {
		name    string
		x, y    int32
		want    Zone
	}{
		{"top-left is main", 0, 0, ZoneMain},
		{"center is main", 500, 300, ZoneMain},
		{"just left of right strip is main", hres - scrollW - 1, 0, ZoneMain},
		{"right strip boundary is scroll-v", hres - scrollW, 0, ZoneScrollV},
		{"deep in right strip is scroll-v", hres - 1, 0, ZoneScrollV},
		{"bottom strip boundary is scroll-h", 0, vres - scrollH, ZoneScrollH},
		{"corner is scroll-corner", hres - scrollW, vres - scrollH, ZoneScrollCorner},
		{"far corner is scroll-corner", hres - 1, vres - 1, ZoneScrollCorner},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.x, tc.y, hres, vres, scrollW, scrollH)
			if got != tc.want {
				t.Errorf("Classify(%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestClassifyZeroWidthStripInactive(t *testing.T) {
	got := Classify(999, 599, 1000, 600, 0, 0)
	if got != ZoneMain {
		t.Errorf("zero-width strips should be inactive, got %v", got)
	}
}

func TestConfigClassifyMatchesFreeFunction(t *testing.T) {
	cfg, err := NewConfig(1000, 600, 40, 30)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	got := cfg.classify(990, 10)
	want := Classify(990, 10, 1000, 600, 40, 30)
	if got != want {
		t.Errorf("cfg.classify = %v, want %v", got, want)
	}
}
