package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in the user and local config directories.
const ConfigFile = "cube.yaml"

// LoadCube loads the simulation configuration.
// Search order: customPath -> ~/.cuberun/configs/cube.yaml -> ./configs/cube.yaml -> embedded default.
// Files may be partial; missing keys keep their default values.
func LoadCube(customPath string) (CubeConfig, error) {
	// Custom path errors are reported, every other source falls through
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultCubeConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultCubeConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultCubeYAML)
	if err != nil {
		return DefaultCubeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the hard-coded defaults and validates the result.
func Parse(data []byte) (CubeConfig, error) {
	cfg := DefaultCubeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg CubeConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate rejects values the simulation cannot run with.
func (c CubeConfig) Validate() error {
	var errs []error
	for _, f := range c.floatFields() {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			errs = append(errs, fmt.Errorf("%s must be finite, got %g", f.name, f.value))
		}
	}
	if c.Physics.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("physics.tick_rate must be positive, got %d", c.Physics.TickRate))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be positive, got %g", c.Physics.Gravity))
	}
	if c.Physics.MoveSpeed < 0 {
		errs = append(errs, fmt.Errorf("physics.move_speed must not be negative, got %g", c.Physics.MoveSpeed))
	}
	if c.Physics.MaxFrameDelta <= 0 {
		errs = append(errs, fmt.Errorf("physics.max_frame_delta must be positive, got %g", c.Physics.MaxFrameDelta))
	}
	if c.Physics.ReverseScale < 0 {
		errs = append(errs, fmt.Errorf("physics.reverse_scale must not be negative, got %g", c.Physics.ReverseScale))
	}
	if c.Scoring.Min > c.Scoring.Base {
		errs = append(errs, fmt.Errorf("scoring.min (%d) exceeds scoring.base (%d)", c.Scoring.Min, c.Scoring.Base))
	}
	if c.Scoring.DecayRate < 0 {
		errs = append(errs, fmt.Errorf("scoring.decay_rate must not be negative, got %g", c.Scoring.DecayRate))
	}
	if !unit(c.Camera.FollowLerp) || !unit(c.Camera.LookLerp) {
		errs = append(errs, errors.New("camera lerp factors must be within [0, 1]"))
	}
	if c.Enemy.SpeedScale < 0 {
		errs = append(errs, fmt.Errorf("enemy.speed_scale must not be negative, got %g", c.Enemy.SpeedScale))
	}
	return errors.Join(errs...)
}

type floatField struct {
	name  string
	value float64
}

func (c CubeConfig) floatFields() []floatField {
	return []floatField{
		{"physics.gravity", c.Physics.Gravity},
		{"physics.move_speed", c.Physics.MoveSpeed},
		{"physics.reverse_scale", c.Physics.ReverseScale},
		{"physics.jump_velocity", c.Physics.JumpVelocity},
		{"physics.turn_speed", c.Physics.TurnSpeed},
		{"physics.death_altitude", c.Physics.DeathAltitude},
		{"physics.max_frame_delta", c.Physics.MaxFrameDelta},
		{"scoring.decay_rate", c.Scoring.DecayRate},
		{"camera.follow_distance", c.Camera.FollowDistance},
		{"camera.follow_height", c.Camera.FollowHeight},
		{"camera.shoulder_offset", c.Camera.ShoulderOffset},
		{"camera.look_height", c.Camera.LookHeight},
		{"camera.look_ahead", c.Camera.LookAhead},
		{"camera.follow_lerp", c.Camera.FollowLerp},
		{"camera.look_lerp", c.Camera.LookLerp},
		{"enemy.speed_scale", c.Enemy.SpeedScale},
	}
}

func unit(v float64) bool {
	return v >= 0 && v <= 1
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cuberun", "configs", filename)
}
