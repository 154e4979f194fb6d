package sim

// Wall is an axis-aligned box obstacle. Level cells produce 1x1 walls at
// integer positions, but the collision engine accepts any size (guard
// vision reuses it as a synthetic box).
type Wall struct {
	Pos  Vec2 // Top-left corner
	Size Vec2
}

// Hole is a unit floor opening at an integer cell position.
type Hole struct {
	Pos Vec2
}

// Player is the rolling marble. Pos is the top-left of its bounding cell;
// the collision engine derives the center from Pos and Radius.
type Player struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64
}
