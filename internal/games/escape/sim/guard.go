package sim

import "math/rand"

// LookDirection is one of the eight directions a guard can watch.
type LookDirection int

const (
	LookUp LookDirection = iota
	LookUpLeft
	LookLeft
	LookDownLeft
	LookDown
	LookDownRight
	LookRight
	LookUpRight
)

const lookDirCount = 8

// Offset returns the unit cell offset for the direction, y growing down.
func (d LookDirection) Offset() Vec2 {
	switch d {
	case LookUp:
		return V(0, -1)
	case LookUpLeft:
		return V(-1, -1)
	case LookLeft:
		return V(-1, 0)
	case LookDownLeft:
		return V(-1, 1)
	case LookDown:
		return V(0, 1)
	case LookDownRight:
		return V(1, 1)
	case LookRight:
		return V(1, 0)
	case LookUpRight:
		return V(1, -1)
	default:
		return V(0, 0)
	}
}

func (d LookDirection) String() string {
	switch d {
	case LookUp:
		return "up"
	case LookUpLeft:
		return "up-left"
	case LookLeft:
		return "left"
	case LookDownLeft:
		return "down-left"
	case LookDown:
		return "down"
	case LookDownRight:
		return "down-right"
	case LookRight:
		return "right"
	case LookUpRight:
		return "up-right"
	default:
		return "unknown"
	}
}

// GuardVision describes what a guard watches: a field of the given radius
// reaching Distance cells along Direction. The catch test itself uses the
// single adjacent cell at the direction's offset.
type GuardVision struct {
	Radius    float64
	Distance  float64
	Direction LookDirection
}

// Guard patrols a fixed waypoint loop and periodically changes where it
// looks. Waypoints come from matching digits in the level map, visited in
// scan order.
type Guard struct {
	ID     int
	Pos    Vec2
	Vel    Vec2
	Radius float64
	Vision GuardVision

	waypoints []Vec2
	current   Vec2
	next      Vec2

	timeAtWaypoint float64
	timeLooking    float64
	waitThreshold  float64
	lookThreshold  float64

	maxLook float64
	rng     *rand.Rand
}

// newGuard constructs a guard at its spawn cell. The spawn doubles as the
// first waypoint and as both the current and next target, so a lone digit
// yields a stationary guard. Thresholds are drawn from the construction
// rand; the look stream gets its own source derived from the seed and id,
// keeping runs reproducible per guard.
func newGuard(id int, pos Vec2, p Params) *Guard {
	g := &Guard{
		ID:      id,
		Pos:     pos,
		Radius:  p.GuardRadius,
		Vision:  p.GuardVision,
		current: pos,
		next:    pos,
		maxLook: p.MaxLookSeconds,
		rng:     rand.New(rand.NewSource(p.Seed + int64(id))),
	}
	g.lookThreshold = p.Rand.Float64() * p.MaxLookSeconds
	g.waitThreshold = p.Rand.Float64() * p.MaxWaitSeconds
	g.waypoints = append(g.waypoints, pos)
	return g
}

// Advance moves the guard by one frame.
func (g *Guard) Advance(dt float64) {
	g.Pos = g.Pos.Add(g.Vel.Scale(dt))

	atCurrent := g.atWaypoint(g.current)
	atNext := g.atWaypoint(g.next)

	if atCurrent {
		g.timeAtWaypoint += dt
		if g.timeAtWaypoint >= g.waitThreshold {
			// Rotate the route: the front waypoint becomes the target and
			// moves to the back. The dwell timer stays hot, so the initial
			// self-targeted rotation falls through on the next frame.
			front := g.waypoints[0]
			g.waypoints = append(g.waypoints[1:], front)
			g.next = front
			g.Vel = g.next.Sub(g.current).Normalize()
		}
	}

	if !atCurrent && !atNext {
		// Steer straight at the target. Not normalized: the guard slows
		// as it closes in.
		g.Vel = g.next.Sub(g.Pos)
	}

	if atNext && !atCurrent {
		g.Vel = Vec2{}
		g.timeAtWaypoint = 0
		g.current = g.next
	}

	g.timeLooking += dt
	if g.timeLooking >= g.lookThreshold {
		g.changeLookDirection()
	}
}

// atWaypoint reports whether the guard, rounded to the cell grid, sits on
// the given waypoint.
func (g *Guard) atWaypoint(wp Vec2) bool {
	return g.Pos.Round() == wp
}

// changeLookDirection picks a new look direction uniformly from all eight
// and redraws the time until the next change.
func (g *Guard) changeLookDirection() {
	g.timeLooking = 0
	g.Vision.Direction = LookDirection(g.rng.Intn(lookDirCount))
	g.lookThreshold = g.rng.Float64() * g.maxLook
}

// Waypoints returns a copy of the guard's patrol loop in its current
// rotation order.
func (g *Guard) Waypoints() []Vec2 {
	out := make([]Vec2, len(g.waypoints))
	copy(out, g.waypoints)
	return out
}

// WatchedCell returns the top-left corner of the cell the guard is
// currently watching.
func (g *Guard) WatchedCell() Vec2 {
	return g.Pos.Add(g.Vision.Direction.Offset())
}
