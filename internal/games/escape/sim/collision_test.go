package sim

import (
	"math"
	"testing"
)

func TestVectorDirection(t *testing.T) {
	cases := []struct {
		v    Vec2
		want Direction
	}{
		{V(0, -5), DirUp},
		{V(3, 0), DirRight},
		{V(0, 2), DirDown},
		{V(-1, 0), DirLeft},
		{V(0, 0), DirNone},
		// Diagonal ties resolve to the earliest compass entry
		{V(1, -1), DirUp},
		{V(1, 1), DirRight},
		{V(-1, 1), DirDown},
	}
	for _, c := range cases {
		if got := VectorDirection(c.v); got != c.want {
			t.Errorf("VectorDirection(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestCheckWallCollisionSides(t *testing.T) {
	wall := Wall{Pos: V(2, 2), Size: V(1, 1)}
	l := &Level{Player: Player{Radius: 0.5}}

	cases := []struct {
		name string
		pos  Vec2
		want Direction
	}{
		{"wall right of player", V(1.2, 2), DirRight},
		{"wall left of player", V(2.7, 2), DirLeft},
		{"wall below player", V(2, 1.3), DirDown},
		{"wall above player", V(2, 2.7), DirUp},
	}
	for _, c := range cases {
		l.Player.Pos = c.pos
		got := l.CheckWallCollision(wall)
		if !got.Hit {
			t.Errorf("%s: expected a hit", c.name)
			continue
		}
		if got.Dir != c.want {
			t.Errorf("%s: direction %v, want %v", c.name, got.Dir, c.want)
		}
		if got.Diff.Len() >= l.Player.Radius {
			t.Errorf("%s: diff %v should be shorter than the radius", c.name, got.Diff)
		}
	}
}

func TestCheckWallCollisionMiss(t *testing.T) {
	wall := Wall{Pos: V(2, 2), Size: V(1, 1)}
	l := &Level{Player: Player{Pos: V(0, 0), Radius: 0.5}}

	got := l.CheckWallCollision(wall)
	if got.Hit {
		t.Error("Far-away player should not collide")
	}
	if got.Dir != DirUp || got.Diff != (Vec2{}) {
		t.Errorf("Miss should report the zero-value heading, got %v %v", got.Dir, got.Diff)
	}

	// Exactly touching is not a hit; the test is strict
	l.Player.Pos = V(1, 2)
	got = l.CheckWallCollision(wall)
	if got.Hit {
		t.Error("Circle exactly touching the box face should not count as a hit")
	}
}

func TestCheckWallCollisionCenterInside(t *testing.T) {
	wall := Wall{Pos: V(2, 2), Size: V(1, 1)}
	l := &Level{Player: Player{Pos: V(2.1, 2.1), Radius: 0.5}}

	got := l.CheckWallCollision(wall)
	if !got.Hit {
		t.Fatal("Center inside the box should be a hit")
	}
	if got.Dir != DirNone {
		t.Errorf("Center inside the box has no heading, got %v", got.Dir)
	}
}

func TestCheckWallCollisionCenterBias(t *testing.T) {
	// The circle center sits at Pos + (r, r), so a larger radius shifts it
	wall := Wall{Pos: V(2, 2), Size: V(1, 1)}
	l := &Level{Player: Player{Pos: V(0.9, 2), Radius: 1}}

	got := l.CheckWallCollision(wall)
	if !got.Hit {
		t.Fatal("Radius-1 player at (0.9,2) should reach the wall")
	}
	// Center (1.9, 3): closest point (2, 3), 0.1 away
	if math.Abs(got.Diff.Len()-0.1) > 1e-9 {
		t.Errorf("Expected gap 0.1 to the box, got %v", got.Diff.Len())
	}
}

func TestCaughtByGuard(t *testing.T) {
	p := DefaultParams()
	p.Seed = 3
	l := Parse([]byte("P0\n"), p)
	g := l.Guards[0]

	g.Vision.Direction = LookDownRight
	if l.CaughtByGuard() {
		t.Error("Guard watching away should not catch the player")
	}

	g.Vision.Direction = LookLeft
	if !l.CaughtByGuard() {
		t.Error("Guard watching the player's cell should catch them")
	}
}

func TestFellInHoleIsStrict(t *testing.T) {
	l := &Level{
		Holes:  []Hole{{Pos: V(3, 1)}},
		Player: Player{Radius: 0.5},
	}

	cases := []struct {
		pos  Vec2
		want bool
	}{
		{V(3, 1), true},      // Centered on the hole
		{V(2.5, 1), false},   // Center exactly on the left rim
		{V(3.5, 1), false},   // Center exactly on the right rim
		{V(3, 0.5), false},   // Center exactly on the top rim
		{V(3.4, 1.4), true},  // Off-center but still inside
		{V(0, 0), false},     // Nowhere near
	}
	for _, c := range cases {
		l.Player.Pos = c.pos
		if got := l.FellInHole(); got != c.want {
			t.Errorf("FellInHole at %v = %v, want %v", c.pos, got, c.want)
		}
	}
}
