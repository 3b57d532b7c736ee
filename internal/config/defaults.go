package config

import (
	_ "embed"
)

//go:embed defaults/cube.yaml
var defaultCubeYAML []byte

// DefaultCubeConfig returns the built-in tuning, matching defaults/cube.yaml.
func DefaultCubeConfig() CubeConfig {
	return CubeConfig{
		Physics: PhysicsConfig{
			TickRate:      60,
			Gravity:       18,
			MoveSpeed:     4.8,
			ReverseScale:  0.72,
			JumpVelocity:  7.2,
			TurnSpeed:     1.65,
			DeathAltitude: -6,
			MaxFrameDelta: 0.05,
		},
		Scoring: ScoringConfig{
			Base:      300,
			Min:       20,
			DecayRate: 40,
		},
		Camera: CameraConfig{
			FollowDistance: 4.1,
			FollowHeight:   2.2,
			ShoulderOffset: 0.85,
			LookHeight:     1.2,
			LookAhead:      2.5,
			FollowLerp:     0.14,
			LookLerp:       0.2,
		},
		Enemy: EnemyConfig{
			SpeedScale: 1.0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCubeYAML
}
