package config

import (
	_ "embed"
)

//go:embed defaults/escape.yaml
var defaultEscapeYAML []byte

// DefaultEscapeConfig returns the default Tilt Escape configuration.
func DefaultEscapeConfig() EscapeConfig {
	return EscapeConfig{
		Physics: EscapePhysics{
			Gravity:      -9.8,
			TiltAngleDeg: 45,
		},
		Player: EscapePlayer{
			Radius: 0.5,
		},
		Guards: EscapeGuards{
			Radius:         0.5,
			VisionRadius:   0.5,
			VisionDistance: 1,
			MaxWaitSeconds: 2,
			MaxLookSeconds: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 4, // Max difficulty by the final campaign board
			},
			Scaling: ScalingConfig{
				WaitReduction: 1.5,
				LookReduction: 1.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "escape", "escape_practice":
		return defaultEscapeYAML
	default:
		return nil
	}
}
