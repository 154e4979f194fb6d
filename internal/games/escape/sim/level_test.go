package sim

import "testing"

func TestParseEntities(t *testing.T) {
	data := []byte("" +
		"#####\n" +
		"#P H#\n" +
		"#0 0#\n" +
		"#####\n")

	p := DefaultParams()
	p.Seed = 1
	l := Parse(data, p)

	// 5 + 5 border rows plus two side walls per middle row
	if len(l.Walls) != 14 {
		t.Errorf("Expected 14 walls, got %d", len(l.Walls))
	}
	if l.Player.Pos != V(1, 1) {
		t.Errorf("Player should spawn at (1,1), got %v", l.Player.Pos)
	}
	if l.Player.Radius != 0.5 {
		t.Errorf("Player radius should be 0.5, got %v", l.Player.Radius)
	}
	if len(l.Holes) != 1 || l.Holes[0].Pos != V(3, 1) {
		t.Errorf("Expected one hole at (3,1), got %v", l.Holes)
	}
	if len(l.Guards) != 1 {
		t.Fatalf("Expected one guard, got %d", len(l.Guards))
	}

	g := l.Guards[0]
	if g.ID != 0 {
		t.Errorf("Guard id should be 0, got %d", g.ID)
	}
	if g.Pos != V(1, 2) {
		t.Errorf("Guard should spawn at (1,2), got %v", g.Pos)
	}
	wps := g.Waypoints()
	if len(wps) != 2 || wps[0] != V(1, 2) || wps[1] != V(3, 2) {
		t.Errorf("Expected waypoints [(1,2) (3,2)], got %v", wps)
	}
	if g.current != V(1, 2) || g.next != V(1, 2) {
		t.Errorf("Fresh guard should target its spawn, got current %v next %v", g.current, g.next)
	}

	if l.Length() != 5 || l.Height() != 4 {
		t.Errorf("Expected 5x4 board, got %dx%d", l.Length(), l.Height())
	}
}

func TestParseLastPlayerWins(t *testing.T) {
	l := Parse([]byte("P P\n"), DefaultParams())
	if l.Player.Pos != V(2, 0) {
		t.Errorf("Last player marker should win, got %v", l.Player.Pos)
	}
}

func TestParseGuardsSortedByID(t *testing.T) {
	data := []byte("" +
		"2 0\n" +
		"0 2\n")
	l := Parse(data, DefaultParams())

	if len(l.Guards) != 2 {
		t.Fatalf("Expected two guards, got %d", len(l.Guards))
	}
	if l.Guards[0].ID != 0 || l.Guards[1].ID != 2 {
		t.Errorf("Guards should be sorted by id, got %d then %d", l.Guards[0].ID, l.Guards[1].ID)
	}
	// Spawn comes from the first occurrence in scan order
	if l.Guards[0].Pos != V(2, 0) {
		t.Errorf("Guard 0 should spawn at (2,0), got %v", l.Guards[0].Pos)
	}
	if l.Guards[1].Pos != V(0, 0) {
		t.Errorf("Guard 2 should spawn at (0,0), got %v", l.Guards[1].Pos)
	}
	if wps := l.Guards[0].Waypoints(); len(wps) != 2 || wps[1] != V(0, 1) {
		t.Errorf("Guard 0 waypoints wrong: %v", wps)
	}

	if g := l.GuardByID(2); g == nil || g.Pos != V(0, 0) {
		t.Errorf("GuardByID(2) wrong: %v", g)
	}
	if g := l.GuardByID(7); g != nil {
		t.Errorf("GuardByID(7) should be nil, got %v", g)
	}
}

func TestAtSentinel(t *testing.T) {
	// Second row is shorter than the first
	l := Parse([]byte("##\n#\n"), DefaultParams())

	if l.Length() != 2 || l.Height() != 2 {
		t.Fatalf("Expected 2x2 board, got %dx%d", l.Length(), l.Height())
	}
	if l.At(0, 0) != '#' || l.At(0, 1) != '#' || l.At(1, 0) != '#' {
		t.Error("In-bounds cells should return their rune")
	}
	if l.At(1, 1) != 0 {
		t.Errorf("Ragged short row should yield the sentinel, got %q", l.At(1, 1))
	}
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if l.At(rc[0], rc[1]) != 0 {
			t.Errorf("At(%d,%d) should be the sentinel", rc[0], rc[1])
		}
	}
}

func TestParseCRLF(t *testing.T) {
	l := Parse([]byte("#P\r\n#H\r\n"), DefaultParams())
	if l.Height() != 2 {
		t.Fatalf("Trailing newline should not add a row, got height %d", l.Height())
	}
	if l.Player.Pos != V(1, 0) {
		t.Errorf("Player should spawn at (1,0), got %v", l.Player.Pos)
	}
	if len(l.Holes) != 1 || l.Holes[0].Pos != V(1, 1) {
		t.Errorf("Expected one hole at (1,1), got %v", l.Holes)
	}
}

func TestClear(t *testing.T) {
	l := Parse([]byte("#P#\n"), DefaultParams())
	l.Clear()
	if l.Length() != 0 || l.Height() != 0 || len(l.Walls) != 0 || len(l.Guards) != 0 {
		t.Error("Clear should empty the level")
	}
}
