package sim

import "math/rand"

// Params tunes entity construction and physics. Callers should start from
// DefaultParams and override what they need.
type Params struct {
	Gravity      float64 // Negative; magnitude of the pull on a tilted axis
	TiltAngleDeg float64 // Board incline when a tilt is held, in degrees

	PlayerRadius float64
	GuardRadius  float64
	GuardVision  GuardVision

	// Guard timer ceilings: dwell and look thresholds are drawn uniformly
	// from [0, max).
	MaxWaitSeconds float64
	MaxLookSeconds float64

	// Seed drives all randomness. Guards derive per-guard sources from it
	// so the same seed always replays the same run.
	Seed int64

	// Rand supplies construction-time draws. Parse seeds one from Seed
	// when nil; the world passes its own so repeated loads keep advancing
	// the same stream.
	Rand *rand.Rand
}

// DefaultParams returns the standard tuning.
func DefaultParams() Params {
	return Params{
		Gravity:        -9.8,
		TiltAngleDeg:   45,
		PlayerRadius:   0.5,
		GuardRadius:    0.5,
		GuardVision:    GuardVision{Radius: 0.5, Distance: 1, Direction: LookDownRight},
		MaxWaitSeconds: 2,
		MaxLookSeconds: 2,
	}
}
