package hostconfig

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/nobmurakita/trackgest/gesture"
)

const fileName = "trackgest.toml"

// document is the on-disk TOML shape. Field names match the tuning
// table's snake_case parameter names so a hand-edited config file
// reads the same as the design document it was derived from.
type document struct {
	HRes        int32 `toml:"hres"`
	VRes        int32 `toml:"vres"`
	ScrollZoneW int32 `toml:"scroll_zone_w"`
	ScrollZoneH int32 `toml:"scroll_zone_h"`

	JitterPixels int32   `toml:"jitter_px"`
	Alpha        float64 `toml:"alpha"`

	AccelMin                   float64 `toml:"accel_min"`
	AccelMax                   float64 `toml:"accel_max"`
	AccelPrecisionThresholdPPS float64 `toml:"accel_precision_threshold_pps"`
	AccelLinearThresholdPPS    float64 `toml:"accel_linear_threshold_pps"`
	AccelMaxThresholdPPS       float64 `toml:"accel_max_threshold_pps"`
	FixedSensitivity           float64 `toml:"fixed_sensitivity"`

	TapMinMS      int64 `toml:"tap_min_ms"`
	TapMaxMS      int64 `toml:"tap_max_ms"`
	TapMovePixels int32 `toml:"tap_move_px"`

	MultiTapWindowMS int64 `toml:"multi_tap_window_ms"`

	DragHoldMS     int64 `toml:"drag_hold_ms"`
	DragMovePixels int32 `toml:"drag_move_px"`

	ScrollSensitivityPixels float64 `toml:"scroll_sensitivity_px"`

	EmitDragPending bool `toml:"emit_drag_pending"`
}

func documentFromConfig(cfg gesture.Config) document {
	t := cfg.Tuning
	return document{
		HRes:                       cfg.HRes,
		VRes:                       cfg.VRes,
		ScrollZoneW:                cfg.ScrollZoneW,
		ScrollZoneH:                cfg.ScrollZoneH,
		JitterPixels:               t.JitterPixels,
		Alpha:                      t.Alpha,
		AccelMin:                   t.AccelMin,
		AccelMax:                   t.AccelMax,
		AccelPrecisionThresholdPPS: t.AccelPrecisionThresholdPPS,
		AccelLinearThresholdPPS:    t.AccelLinearThresholdPPS,
		AccelMaxThresholdPPS:       t.AccelMaxThresholdPPS,
		FixedSensitivity:           t.FixedSensitivity,
		TapMinMS:                   t.TapMinMS,
		TapMaxMS:                   t.TapMaxMS,
		TapMovePixels:              t.TapMovePixels,
		MultiTapWindowMS:           t.MultiTapWindowMS,
		DragHoldMS:                 t.DragHoldMS,
		DragMovePixels:             t.DragMovePixels,
		ScrollSensitivityPixels:    t.ScrollSensitivityPixels,
		EmitDragPending:            t.EmitDragPending,
	}
}

func (d document) toConfig() (gesture.Config, error) {
	return gesture.NewConfig(d.HRes, d.VRes, d.ScrollZoneW, d.ScrollZoneH,
		gesture.WithJitterPixels(d.JitterPixels),
		gesture.WithAlpha(d.Alpha),
		gesture.WithAcceleration(d.AccelMin, d.AccelMax, d.AccelPrecisionThresholdPPS, d.AccelLinearThresholdPPS, d.AccelMaxThresholdPPS),
		gesture.WithFixedSensitivity(d.FixedSensitivity),
		gesture.WithTapTiming(d.TapMinMS, d.TapMaxMS, d.TapMovePixels),
		gesture.WithMultiTapWindow(d.MultiTapWindowMS),
		gesture.WithDragPromotion(d.DragHoldMS, d.DragMovePixels),
		gesture.WithScrollSensitivity(d.ScrollSensitivityPixels),
		gesture.WithDragPending(d.EmitDragPending),
	)
}

// Default returns the built-in configuration for a panel of the given
// resolution, with no scroll strip carved out.
func Default(hres, vres int32) (gesture.Config, error) {
	return gesture.NewConfig(hres, vres, 0, 0)
}

// Load reads and validates a TOML configuration file. Fields absent
// from the file fall back to the engine's defaults, not to zero; an
// unknown key is an error.
func Load(path string) (gesture.Config, error) {
	def, err := Default(1, 1)
	if err != nil {
		return gesture.Config{}, err
	}
	doc := documentFromConfig(def)

	md, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return gesture.Config{}, fmt.Errorf("hostconfig: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return gesture.Config{}, fmt.Errorf("hostconfig: %s: unknown key %q", path, undecoded[0].String())
	}

	cfg, err := doc.toConfig()
	if err != nil {
		return gesture.Config{}, fmt.Errorf("hostconfig: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as TOML, overwriting any existing file.
func Save(path string, cfg gesture.Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(documentFromConfig(cfg)); err != nil {
		return fmt.Errorf("hostconfig: encode: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("hostconfig: write %s: %w", path, err)
	}
	return nil
}

// Dir returns the XDG config directory for this program, honoring
// $XDG_CONFIG_HOME and falling back to ~/.config.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "trackgest")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "trackgest")
}

// Path returns the default config file path inside Dir.
func Path() string {
	return filepath.Join(Dir(), fileName)
}

// EnsureDefault creates the config directory and a default config
// file at Path if one does not already exist.
func EnsureDefault(hres, vres int32) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("hostconfig: create dir %s: %w", dir, err)
	}
	path := Path()
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("hostconfig: stat %s: %w", path, err)
	}

	cfg, err := Default(hres, vres)
	if err != nil {
		return err
	}
	return Save(path, cfg)
}
