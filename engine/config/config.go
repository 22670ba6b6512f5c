// Package config loads camera tuning from YAML, watches it for changes and persists operator
// preferences.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a tuning file parses but holds unusable values.
var ErrInvalidConfig = errors.New("invalid camera config")

// CameraConfig is the on-disk tuning file. Zero fields fall back to camera.DefaultTuning.
type CameraConfig struct {
	Mode      string          `yaml:"mode"`
	Smoothing string          `yaml:"smoothing"`
	Back      BackSpec        `yaml:"back"`
	Fixed     FixedSpec       `yaml:"fixed"`
	Visit     VisitSpec       `yaml:"visit"`
	Free      FreeSpec        `yaml:"free"`
	Edit      EditSpec        `yaml:"edit"`
	Plane     PlaneSpec       `yaml:"plane"`
	Exclusion ExclusionSpec   `yaml:"exclusion"`
	Input     InputSpec       `yaml:"input"`
	Smooth    SmoothRatesSpec `yaml:"smooth_rates"`
	Effects   EffectSpec      `yaml:"effects"`
}

type BackSpec struct {
	Distance    float32 `yaml:"distance"`
	MinDistance float32 `yaml:"min_distance"`
	MaxDistance float32 `yaml:"max_distance"`
	Elevation   float32 `yaml:"elevation"`
	LookHeight  float32 `yaml:"look_height"`
}

type FixedSpec struct {
	Distance    float32 `yaml:"distance"`
	MinDistance float32 `yaml:"min_distance"`
	MaxDistance float32 `yaml:"max_distance"`
	DirectionH  float32 `yaml:"direction_h"`
	DirectionV  float32 `yaml:"direction_v"`
}

type VisitSpec struct {
	MinDistance float32 `yaml:"min_distance"`
	MaxDistance float32 `yaml:"max_distance"`
	Duration    float32 `yaml:"duration"`
	Elevation   float32 `yaml:"elevation"`
}

type FreeSpec struct {
	Height       float32 `yaml:"height"`
	Speed        float32 `yaml:"speed"`
	LookDistance float32 `yaml:"look_distance"`
}

type EditSpec struct {
	Height float32 `yaml:"height"`
}

type PlaneSpec struct {
	Height float32 `yaml:"height"`
}

type ExclusionSpec struct {
	Clearance   float32 `yaml:"clearance"`
	Iterations  int     `yaml:"iterations"`
	Tolerance   float32 `yaml:"tolerance"`
	Step        float32 `yaml:"step"`
	ProbeRadius float32 `yaml:"probe_radius"`
}

type InputSpec struct {
	MouseMargin     float32 `yaml:"mouse_margin"`
	ScrollSpeed     float32 `yaml:"scroll_speed"`
	WheelStep       float32 `yaml:"wheel_step"`
	DragSensitivity float32 `yaml:"drag_sensitivity"`
}

type SmoothRatesSpec struct {
	Normal  float32 `yaml:"normal"`
	Hard    float32 `yaml:"hard"`
	Special float32 `yaml:"special"`
}

type EffectSpec struct {
	Near    float32 `yaml:"near"`
	Falloff float32 `yaml:"falloff"`
}

// Load reads and validates a tuning file.
//
// Parameters:
//   - path: path to the YAML file
//
// Returns:
//   - *CameraConfig: the parsed config
//   - error: error if the file cannot be read, parsed or validated
func Load(path string) (*CameraConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates YAML tuning data. Empty input yields an empty config.
//
// Parameters:
//   - data: YAML bytes
//
// Returns:
//   - *CameraConfig: the parsed config
//   - error: error if the data cannot be parsed or validated
func Parse(data []byte) (*CameraConfig, error) {
	var cfg CameraConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects negative distances, inverted ranges and unknown mode names.
//
// Returns:
//   - error: an error wrapping ErrInvalidConfig, or nil
func (c *CameraConfig) Validate() error {
	if _, err := c.InitialMode(); err != nil {
		return err
	}
	if _, err := c.InitialSmoothing(); err != nil {
		return err
	}
	t := c.Tuning()
	for name, v := range map[string]float32{
		"back.distance":       t.BackDistance,
		"back.min_distance":   t.BackMinDistance,
		"fixed.distance":      t.FixedDistance,
		"fixed.min_distance":  t.FixedMinDistance,
		"visit.min_distance":  t.VisitMinDistance,
		"visit.duration":      t.VisitDuration,
		"exclusion.clearance": t.GroundClearance,
		"exclusion.tolerance": t.ExclusionTolerance,
		"input.mouse_margin":  t.MouseMargin,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidConfig, name, v)
		}
	}
	if t.BackMinDistance > t.BackMaxDistance {
		return fmt.Errorf("%w: back.min_distance %v exceeds back.max_distance %v", ErrInvalidConfig, t.BackMinDistance, t.BackMaxDistance)
	}
	if t.FixedMinDistance > t.FixedMaxDistance {
		return fmt.Errorf("%w: fixed.min_distance %v exceeds fixed.max_distance %v", ErrInvalidConfig, t.FixedMinDistance, t.FixedMaxDistance)
	}
	if t.VisitMinDistance > t.VisitMaxDistance {
		return fmt.Errorf("%w: visit.min_distance %v exceeds visit.max_distance %v", ErrInvalidConfig, t.VisitMinDistance, t.VisitMaxDistance)
	}
	if t.ExclusionIterations < 0 {
		return fmt.Errorf("%w: exclusion.iterations must not be negative, got %d", ErrInvalidConfig, t.ExclusionIterations)
	}
	if t.MouseMargin >= 0.5 {
		return fmt.Errorf("%w: input.mouse_margin must be below 0.5, got %v", ErrInvalidConfig, t.MouseMargin)
	}
	return nil
}

// Tuning merges the file over camera.DefaultTuning.
//
// Returns:
//   - camera.Tuning: the effective tuning
func (c *CameraConfig) Tuning() camera.Tuning {
	t := camera.DefaultTuning()

	t.BackDistance = common.Coalesce(c.Back.Distance, t.BackDistance)
	t.BackMinDistance = common.Coalesce(c.Back.MinDistance, t.BackMinDistance)
	t.BackMaxDistance = common.Coalesce(c.Back.MaxDistance, t.BackMaxDistance)
	t.BackElevation = common.Coalesce(c.Back.Elevation, t.BackElevation)
	t.BackLookHeight = common.Coalesce(c.Back.LookHeight, t.BackLookHeight)

	t.FixedDistance = common.Coalesce(c.Fixed.Distance, t.FixedDistance)
	t.FixedMinDistance = common.Coalesce(c.Fixed.MinDistance, t.FixedMinDistance)
	t.FixedMaxDistance = common.Coalesce(c.Fixed.MaxDistance, t.FixedMaxDistance)
	t.FixedDirectionH = common.Coalesce(c.Fixed.DirectionH, t.FixedDirectionH)
	t.FixedDirectionV = common.Coalesce(c.Fixed.DirectionV, t.FixedDirectionV)

	t.VisitMinDistance = common.Coalesce(c.Visit.MinDistance, t.VisitMinDistance)
	t.VisitMaxDistance = common.Coalesce(c.Visit.MaxDistance, t.VisitMaxDistance)
	t.VisitDuration = common.Coalesce(c.Visit.Duration, t.VisitDuration)
	t.VisitElevation = common.Coalesce(c.Visit.Elevation, t.VisitElevation)

	t.FreeHeight = common.Coalesce(c.Free.Height, t.FreeHeight)
	t.FreeSpeed = common.Coalesce(c.Free.Speed, t.FreeSpeed)
	t.FreeLookDistance = common.Coalesce(c.Free.LookDistance, t.FreeLookDistance)
	t.EditHeight = common.Coalesce(c.Edit.Height, t.EditHeight)
	t.PlaneHeight = common.Coalesce(c.Plane.Height, t.PlaneHeight)

	t.GroundClearance = common.Coalesce(c.Exclusion.Clearance, t.GroundClearance)
	t.ExclusionIterations = common.Coalesce(c.Exclusion.Iterations, t.ExclusionIterations)
	t.ExclusionTolerance = common.Coalesce(c.Exclusion.Tolerance, t.ExclusionTolerance)
	t.ExclusionStep = common.Coalesce(c.Exclusion.Step, t.ExclusionStep)
	t.ObjectProbeRadius = common.Coalesce(c.Exclusion.ProbeRadius, t.ObjectProbeRadius)

	t.MouseMargin = common.Coalesce(c.Input.MouseMargin, t.MouseMargin)
	t.ScrollSpeed = common.Coalesce(c.Input.ScrollSpeed, t.ScrollSpeed)
	t.WheelStep = common.Coalesce(c.Input.WheelStep, t.WheelStep)
	t.DragSensitivity = common.Coalesce(c.Input.DragSensitivity, t.DragSensitivity)

	t.SmoothNormal = common.Coalesce(c.Smooth.Normal, t.SmoothNormal)
	t.SmoothHard = common.Coalesce(c.Smooth.Hard, t.SmoothHard)
	t.SmoothSpecial = common.Coalesce(c.Smooth.Special, t.SmoothSpecial)

	t.EffectNear = common.Coalesce(c.Effects.Near, t.EffectNear)
	t.EffectFalloff = common.Coalesce(c.Effects.Falloff, t.EffectFalloff)
	return t
}

// InitialMode returns the configured starting mode, ModeUndefined when unset.
//
// Returns:
//   - camera.Mode: the mode
//   - error: an error wrapping ErrInvalidConfig for an unknown name
func (c *CameraConfig) InitialMode() (camera.Mode, error) {
	if c.Mode == "" {
		return camera.ModeUndefined, nil
	}
	m, ok := camera.ParseMode(c.Mode)
	if !ok {
		return camera.ModeUndefined, fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}
	return m, nil
}

// InitialSmoothing returns the configured smoothing, SmoothNormal when unset.
//
// Returns:
//   - camera.Smoothing: the smoothing mode
//   - error: an error wrapping ErrInvalidConfig for an unknown name
func (c *CameraConfig) InitialSmoothing() (camera.Smoothing, error) {
	switch c.Smoothing {
	case "":
		return camera.SmoothNormal, nil
	case "none":
		return camera.SmoothNone, nil
	case "normal":
		return camera.SmoothNormal, nil
	case "hard":
		return camera.SmoothHard, nil
	case "special":
		return camera.SmoothSpecial, nil
	}
	return camera.SmoothNormal, fmt.Errorf("%w: unknown smoothing %q", ErrInvalidConfig, c.Smoothing)
}

// Options returns the controller options that apply this config.
//
// Returns:
//   - []camera.CameraControllerOption: tuning, mode and smoothing options
func (c *CameraConfig) Options() []camera.CameraControllerOption {
	opts := []camera.CameraControllerOption{camera.WithTuning(c.Tuning())}
	if m, err := c.InitialMode(); err == nil {
		opts = append(opts, camera.WithMode(m))
	}
	if s, err := c.InitialSmoothing(); err == nil {
		opts = append(opts, camera.WithSmoothing(s))
	}
	return opts
}
