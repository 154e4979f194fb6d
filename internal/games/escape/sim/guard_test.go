package sim

import (
	"math"
	"testing"
)

func TestGuardStaysWithSingleWaypoint(t *testing.T) {
	p := DefaultParams()
	p.Seed = 7
	l := Parse([]byte("0\n"), p)
	g := l.Guards[0]

	// The route rotates onto the spawn itself, so the guard never moves
	for i := 0; i < 100; i++ {
		g.Advance(0.1)
	}
	if g.Pos != V(0, 0) {
		t.Errorf("Lone guard should stay at spawn, got %v", g.Pos)
	}
	if g.Vel != (Vec2{}) {
		t.Errorf("Lone guard should stay still, got velocity %v", g.Vel)
	}
}

func TestGuardWaitsOutDwellThreshold(t *testing.T) {
	p := DefaultParams()
	p.Seed = 7
	l := Parse([]byte("0 0\n"), p)
	g := l.Guards[0]
	g.waitThreshold = math.MaxFloat64
	g.lookThreshold = math.MaxFloat64

	for i := 0; i < 50; i++ {
		g.Advance(0.1)
	}
	if g.Pos != V(0, 0) || g.Vel != (Vec2{}) {
		t.Errorf("Guard should dwell until its threshold, got pos %v vel %v", g.Pos, g.Vel)
	}
	if g.timeAtWaypoint == 0 {
		t.Error("Dwell timer should be accumulating")
	}
}

func TestGuardPatrolsBetweenWaypoints(t *testing.T) {
	p := DefaultParams()
	p.Seed = 7
	l := Parse([]byte("0 0\n"), p)
	g := l.Guards[0]
	g.waitThreshold = 0.25
	g.lookThreshold = math.MaxFloat64

	a, b := V(0, 0), V(2, 0)

	// Walk the full loop: out to the second waypoint and back home
	reachedB := false
	returnedA := false
	for i := 0; i < 400; i++ {
		g.Advance(0.1)
		if !reachedB && g.current == b {
			reachedB = true
		}
		if reachedB && g.current == a {
			returnedA = true
			break
		}
	}
	if !reachedB {
		t.Fatal("Guard never arrived at its second waypoint")
	}
	if !returnedA {
		t.Fatal("Guard never returned to its spawn")
	}
}

func TestGuardArrivalStopsAndRests(t *testing.T) {
	p := DefaultParams()
	p.Seed = 7
	l := Parse([]byte("0 0\n"), p)
	g := l.Guards[0]
	g.waitThreshold = 0.25
	g.lookThreshold = math.MaxFloat64

	b := V(2, 0)
	for i := 0; i < 400; i++ {
		g.Advance(0.1)
		if g.current == b {
			break
		}
	}
	if g.current != b {
		t.Fatal("Guard never arrived at its second waypoint")
	}
	if g.Vel != (Vec2{}) {
		t.Errorf("Arrival should zero velocity, got %v", g.Vel)
	}
	if g.Pos.Round() != b {
		t.Errorf("Guard should rest on the waypoint cell, got %v", g.Pos)
	}
}

func TestGuardTransitVelocityDecays(t *testing.T) {
	p := DefaultParams()
	p.Seed = 7
	l := Parse([]byte("0   0\n"), p)
	g := l.Guards[0]
	g.waitThreshold = math.MaxFloat64
	g.lookThreshold = math.MaxFloat64

	// Drop the guard mid-route, already heading for the far waypoint
	g.current = V(0, 0)
	g.next = V(4, 0)
	g.Pos = V(1.4, 0)
	g.Vel = V(1, 0)

	prev := math.MaxFloat64
	for i := 0; i < 10; i++ {
		g.Advance(0.1)
		if g.Pos.Round() == g.next || g.Pos.Round() == g.current {
			break
		}
		speed := g.Vel.Len()
		if speed >= prev {
			t.Fatalf("Transit speed should shrink toward the target, got %v after %v", speed, prev)
		}
		if g.Vel != g.next.Sub(g.Pos) {
			t.Fatalf("Transit velocity should be the raw offset to the target, got %v", g.Vel)
		}
		prev = speed
	}
}

func TestGuardRouteRotation(t *testing.T) {
	p := DefaultParams()
	p.Seed = 7
	l := Parse([]byte("0 0 0\n"), p)
	g := l.Guards[0]
	g.waitThreshold = 0
	g.lookThreshold = math.MaxFloat64

	a, b, c := V(0, 0), V(2, 0), V(4, 0)

	// First rotation retargets the spawn itself
	g.Advance(1)
	if wps := g.Waypoints(); wps[0] != b || wps[1] != c || wps[2] != a {
		t.Errorf("Expected route [b c a], got %v", wps)
	}
	if g.next != a {
		t.Errorf("First rotation should target the spawn, got %v", g.next)
	}
	if g.Vel != (Vec2{}) {
		t.Errorf("Self-targeted rotation should not move the guard, got %v", g.Vel)
	}

	// The hot dwell timer rotates again next frame, now onto a real target
	g.Advance(1)
	if wps := g.Waypoints(); wps[0] != c || wps[1] != a || wps[2] != b {
		t.Errorf("Expected route [c a b], got %v", wps)
	}
	if g.next != b {
		t.Errorf("Second rotation should target the next waypoint, got %v", g.next)
	}
	if g.Vel != V(1, 0) {
		t.Errorf("Departure velocity should be the unit direction, got %v", g.Vel)
	}
}

func TestGuardLookCoversAllDirections(t *testing.T) {
	p := DefaultParams()
	p.Seed = 99
	l := Parse([]byte("5\n"), p)
	g := l.Guards[0]
	g.maxLook = 0
	g.lookThreshold = 0

	seen := make(map[LookDirection]bool)
	for i := 0; i < 200; i++ {
		g.Advance(0.1)
		d := g.Vision.Direction
		if d < 0 || d >= lookDirCount {
			t.Fatalf("Look direction out of range: %d", d)
		}
		seen[d] = true
	}
	if len(seen) != lookDirCount {
		t.Errorf("Expected all %d look directions over 200 redraws, got %d", lookDirCount, len(seen))
	}
}

func TestGuardLookStreamsDiverge(t *testing.T) {
	p := DefaultParams()
	p.Seed = 4
	l := Parse([]byte("01\n"), p)
	a, b := l.Guards[0], l.Guards[1]
	for _, g := range []*Guard{a, b} {
		g.maxLook = 0
		g.lookThreshold = 0
		g.waitThreshold = math.MaxFloat64
	}

	for i := 0; i < 100; i++ {
		a.Advance(0.1)
		b.Advance(0.1)
		if a.Vision.Direction != b.Vision.Direction {
			return
		}
	}
	t.Error("Guards with distinct ids should draw distinct look sequences")
}

func TestGuardConstructionDeterminism(t *testing.T) {
	data := []byte("3 3\n")
	p := DefaultParams()
	p.Seed = 11

	l1 := Parse(data, p)
	l2 := Parse(data, p)
	g1, g2 := l1.Guards[0], l2.Guards[0]

	if g1.waitThreshold != g2.waitThreshold || g1.lookThreshold != g2.lookThreshold {
		t.Error("Same seed should draw the same thresholds")
	}

	for i := 0; i < 300; i++ {
		g1.Advance(0.05)
		g2.Advance(0.05)
		if g1.Pos != g2.Pos || g1.Vision.Direction != g2.Vision.Direction {
			t.Fatalf("Runs diverged at frame %d: %v/%v vs %v/%v",
				i, g1.Pos, g1.Vision.Direction, g2.Pos, g2.Vision.Direction)
		}
	}
}

func TestWatchedCell(t *testing.T) {
	p := DefaultParams()
	l := Parse([]byte("0\n"), p)
	g := l.Guards[0]

	g.Vision.Direction = LookDownRight
	if got := g.WatchedCell(); got != V(1, 1) {
		t.Errorf("Down-right watch from origin should be (1,1), got %v", got)
	}
	g.Vision.Direction = LookUp
	if got := g.WatchedCell(); got != V(0, -1) {
		t.Errorf("Up watch from origin should be (0,-1), got %v", got)
	}
}

func TestLookDirectionOffsets(t *testing.T) {
	// Offsets must stay consistent with the y-down screen layout
	cases := []struct {
		dir  LookDirection
		want Vec2
	}{
		{LookUp, V(0, -1)},
		{LookUpLeft, V(-1, -1)},
		{LookLeft, V(-1, 0)},
		{LookDownLeft, V(-1, 1)},
		{LookDown, V(0, 1)},
		{LookDownRight, V(1, 1)},
		{LookRight, V(1, 0)},
		{LookUpRight, V(1, -1)},
	}
	for _, c := range cases {
		if got := c.dir.Offset(); got != c.want {
			t.Errorf("%v offset should be %v, got %v", c.dir, c.want, got)
		}
	}
}
