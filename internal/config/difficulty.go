package config

import "math"

// Timers keep at least this much range so dwell and facing stay
// randomized at max difficulty.
const minTimerSeconds = 0.25

// DifficultyManager turns score or elapsed ticks into scaled guard
// parameters.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a manager from cfg.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the starting difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0, 1)
}

// SetEnabled switches difficulty progression on or off.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled reports whether difficulty progresses at all.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level maps the current score and tick count to a difficulty in
// [initial, 1.0].
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	return d.initialLevel + clampF(progress, 0, 1)*(1-d.initialLevel)
}

func (d *DifficultyManager) scaled(base, reduction float64, score, ticks int) float64 {
	v := base - d.Level(score, ticks)*reduction
	if v < minTimerSeconds {
		v = minTimerSeconds
	}
	return v
}

// PauseSeconds is the guard dwell ceiling at the current difficulty.
// Guards rest for less time as the level rises.
func (d *DifficultyManager) PauseSeconds(baseWait float64, score, ticks int) float64 {
	return d.scaled(baseWait, d.cfg.Scaling.WaitReduction, score, ticks)
}

// LookSeconds is the guard facing-change ceiling at the current
// difficulty. Guards sweep their gaze more often as the level rises.
func (d *DifficultyManager) LookSeconds(baseLook float64, score, ticks int) float64 {
	return d.scaled(baseLook, d.cfg.Scaling.LookReduction, score, ticks)
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
