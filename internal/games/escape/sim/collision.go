package sim

// Direction is a coarse 4-way compass heading used to classify collision
// normals.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
	// DirNone means no heading matched: the vector was zero or had no
	// positive dot product with any compass axis.
	DirNone
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "none"
	}
}

// compass holds the unit axis vectors in enum order, y growing down.
var compass = [4]Vec2{
	{X: 0, Y: -1}, // up
	{X: 1, Y: 0},  // right
	{X: 0, Y: 1},  // down
	{X: -1, Y: 0}, // left
}

// VectorDirection maps a vector to the compass heading it points along
// most closely. Returns DirNone for the zero vector and for vectors whose
// dot product with every axis is zero or negative.
func VectorDirection(v Vec2) Direction {
	n := v.Normalize()
	best := DirNone
	max := 0.0
	for i, axis := range compass {
		if d := n.Dot(axis); d > max {
			max = d
			best = Direction(i)
		}
	}
	return best
}

// Collision is the result of a circle-vs-box test.
type Collision struct {
	Hit  bool
	Dir  Direction
	Diff Vec2 // From the player's center to the closest point on the box
}

// CheckWallCollision tests the player's circle against a box. The circle
// center is Pos offset by Radius on both axes, so with the standard 0.5
// radius it sits at the middle of the player's cell.
func (l *Level) CheckWallCollision(w Wall) Collision {
	center := l.Player.Pos.Add(V(l.Player.Radius, l.Player.Radius))
	half := w.Size.Scale(0.5)
	boxCenter := w.Pos.Add(half)

	diff := center.Sub(boxCenter)
	clamped := diff.Clamp(half.Scale(-1), half)
	closest := boxCenter.Add(clamped)

	diff = closest.Sub(center)
	if diff.Len() < l.Player.Radius {
		return Collision{Hit: true, Dir: VectorDirection(diff), Diff: diff}
	}
	return Collision{Dir: DirUp}
}

// CaughtByGuard reports whether any guard's watched cell overlaps the
// player. The watched cell is modeled as a synthetic 1x1 box one offset
// from the guard, reusing the wall test.
func (l *Level) CaughtByGuard() bool {
	for _, g := range l.Guards {
		box := Wall{Pos: g.WatchedCell(), Size: V(1, 1)}
		if l.CheckWallCollision(box).Hit {
			return true
		}
	}
	return false
}

// FellInHole reports whether the player's center lies strictly inside any
// hole cell. Resting exactly on the rim does not count.
func (l *Level) FellInHole() bool {
	c := l.Player.Pos.Add(V(0.5, 0.5))
	for _, h := range l.Holes {
		if c.X > h.Pos.X && c.X < h.Pos.X+1 && c.Y > h.Pos.Y && c.Y < h.Pos.Y+1 {
			return true
		}
	}
	return false
}
