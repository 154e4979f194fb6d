// Package config loads the YAML game configuration and scales guard
// behavior with the difficulty progression.
package config

// EscapeConfig is the full game configuration.
type EscapeConfig struct {
	Physics    EscapePhysics    `yaml:"physics"`
	Player     EscapePlayer     `yaml:"player"`
	Guards     EscapeGuards     `yaml:"guards"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// EscapePhysics holds the tilt parameters.
type EscapePhysics struct {
	Gravity      float64 `yaml:"gravity"`
	TiltAngleDeg float64 `yaml:"tilt_angle_deg"`
}

// EscapePlayer holds the marble parameters.
type EscapePlayer struct {
	Radius float64 `yaml:"radius"`
}

// EscapeGuards holds patrol and vision parameters.
type EscapeGuards struct {
	Radius         float64 `yaml:"radius"`
	VisionRadius   float64 `yaml:"vision_radius"`
	VisionDistance float64 `yaml:"vision_distance"`
	MaxWaitSeconds float64 `yaml:"max_wait_seconds"`
	MaxLookSeconds float64 `yaml:"max_look_seconds"`
}

// DifficultyConfig drives the difficulty progression.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig says what moves the difficulty and how fast.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig sizes the effect of difficulty on the guards.
type ScalingConfig struct {
	WaitReduction float64 `yaml:"wait_reduction"` // Seconds cut from the guard dwell ceiling at max difficulty
	LookReduction float64 `yaml:"look_reduction"` // Seconds cut from the guard look ceiling at max difficulty
}

// DifficultyPreset is a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

var presetLevels = map[DifficultyPreset]float64{
	DifficultyEasy:   0,
	DifficultyNormal: 0.3,
	DifficultyHard:   0.7,
}

// InitialLevelForPreset maps a preset to its starting level; unknown
// presets start at zero.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	return presetLevels[preset]
}

// IsFixedPreset reports whether the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
