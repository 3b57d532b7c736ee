// Package config provides YAML-based simulation tuning and difficulty presets
// for cuberun.
package config

// CubeConfig contains all tuning for the block platformer simulation.
type CubeConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	Scoring ScoringConfig `yaml:"scoring"`
	Camera  CameraConfig  `yaml:"camera"`
	Enemy   EnemyConfig   `yaml:"enemy"`
}

// PhysicsConfig defines integration and movement parameters.
// Lengths are world units, times are seconds, angles are radians.
type PhysicsConfig struct {
	TickRate      int     `yaml:"tick_rate"`       // Fixed ticks per second
	Gravity       float64 `yaml:"gravity"`         // Downward acceleration
	MoveSpeed     float64 `yaml:"move_speed"`      // Forward speed
	ReverseScale  float64 `yaml:"reverse_scale"`   // Backward speed multiplier
	JumpVelocity  float64 `yaml:"jump_velocity"`   // Vertical velocity set on jump
	TurnSpeed     float64 `yaml:"turn_speed"`      // Yaw rate
	DeathAltitude float64 `yaml:"death_altitude"`  // Falling below this loses the run
	MaxFrameDelta float64 `yaml:"max_frame_delta"` // Catch-up clamp for the frame driver
}

// ScoringConfig defines how the win score decays with elapsed time.
type ScoringConfig struct {
	Base      int     `yaml:"base"`
	Min       int     `yaml:"min"`
	DecayRate float64 `yaml:"decay_rate"` // Points lost per second
}

// CameraConfig defines the follow rig.
type CameraConfig struct {
	FollowDistance float64 `yaml:"follow_distance"`
	FollowHeight   float64 `yaml:"follow_height"`
	ShoulderOffset float64 `yaml:"shoulder_offset"`
	LookHeight     float64 `yaml:"look_height"`
	LookAhead      float64 `yaml:"look_ahead"`
	FollowLerp     float64 `yaml:"follow_lerp"` // Position smoothing per tick, 0..1
	LookLerp       float64 `yaml:"look_lerp"`   // Look target smoothing per tick, 0..1
}

// EnemyConfig scales the arena's patrol enemy.
type EnemyConfig struct {
	SpeedScale float64 `yaml:"speed_scale"`
}

// TickSeconds returns the fixed tick duration in seconds.
func (p PhysicsConfig) TickSeconds() float64 {
	if p.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(p.TickRate)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty maps a flag value to a preset. Unknown and empty values
// return DifficultyFixed, which leaves the loaded config untouched.
func ParseDifficulty(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return DifficultyFixed
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *CubeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Enemy.SpeedScale = 0.6
		cfg.Scoring.DecayRate *= 0.5
	case DifficultyNormal:
		cfg.Enemy.SpeedScale = 1.0
	case DifficultyHard:
		cfg.Enemy.SpeedScale = 1.6
		cfg.Scoring.DecayRate *= 1.5
	}
}
