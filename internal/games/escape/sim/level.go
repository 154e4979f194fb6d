package sim

import (
	"math/rand"
	"sort"
	"strings"
)

// Level is one parsed board: the raw character matrix plus the entities
// lifted out of it.
type Level struct {
	Walls  []Wall
	Holes  []Hole
	Player Player
	Guards []*Guard // Ascending id

	matrix [][]rune
}

// Parse builds a level from raw map data.
//
// Recognized runes: '#' places a 1x1 wall, 'P' the player spawn (the last
// one wins), 'H' a hole, and '0'..'9' guard waypoints: the first occurrence
// of a digit spawns that guard, later occurrences of the same digit extend
// its patrol loop in scan order. Anything else is open floor. Rows keep
// their original length; every rune stays addressable through At.
func Parse(data []byte, p Params) *Level {
	if p.Rand == nil {
		p.Rand = rand.New(rand.NewSource(p.Seed))
	}

	l := &Level{}
	byID := make(map[int]*Guard)

	lines := strings.Split(string(data), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	for y, line := range lines {
		row := []rune(strings.TrimSuffix(line, "\r"))
		for x, ch := range row {
			cell := V(float64(x), float64(y))
			switch {
			case ch == '#':
				l.Walls = append(l.Walls, Wall{Pos: cell, Size: V(1, 1)})
			case ch == 'P':
				l.Player = Player{Pos: cell, Radius: p.PlayerRadius}
			case ch == 'H':
				l.Holes = append(l.Holes, Hole{Pos: cell})
			case ch >= '0' && ch <= '9':
				id := int(ch - '0')
				if g, ok := byID[id]; ok {
					g.waypoints = append(g.waypoints, cell)
				} else {
					g := newGuard(id, cell, p)
					byID[id] = g
					l.Guards = append(l.Guards, g)
				}
			}
		}
		l.matrix = append(l.matrix, row)
	}

	sort.Slice(l.Guards, func(i, j int) bool { return l.Guards[i].ID < l.Guards[j].ID })
	return l
}

// Clear resets the level to empty.
func (l *Level) Clear() {
	*l = Level{}
}

// Length returns the board width in cells, taken from the first row.
func (l *Level) Length() int {
	if len(l.matrix) == 0 {
		return 0
	}
	return len(l.matrix[0])
}

// Height returns the board height in cells.
func (l *Level) Height() int {
	return len(l.matrix)
}

// At returns the rune at (row, col), or rune 0 when out of bounds. The
// column bound comes from the first row; positions past the end of a
// shorter ragged row also yield the sentinel.
func (l *Level) At(row, col int) rune {
	if row < 0 || col < 0 || row >= l.Height() || col >= l.Length() {
		return 0
	}
	if col >= len(l.matrix[row]) {
		return 0
	}
	return l.matrix[row][col]
}

// GuardByID returns the guard with the given id, or nil.
func (l *Level) GuardByID(id int) *Guard {
	for _, g := range l.Guards {
		if g.ID == id {
			return g
		}
	}
	return nil
}
