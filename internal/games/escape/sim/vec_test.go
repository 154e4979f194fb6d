package sim

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	v := V(3, 4).Normalize()
	if math.Abs(v.Len()-1) > 1e-12 {
		t.Errorf("Normalized length should be 1, got %v", v.Len())
	}
	if math.Abs(v.X-0.6) > 1e-12 || math.Abs(v.Y-0.8) > 1e-12 {
		t.Errorf("Expected (0.6, 0.8), got %v", v)
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	// The zero vector must stay zero, not become NaN
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("Zero vector should normalize to zero, got %v", got)
	}
}

func TestClamp(t *testing.T) {
	got := V(5, -3).Clamp(V(-1, -1), V(1, 1))
	if got != V(1, -1) {
		t.Errorf("Expected (1, -1), got %v", got)
	}

	// Inside the box nothing changes
	got = V(0.25, -0.75).Clamp(V(-1, -1), V(1, 1))
	if got != V(0.25, -0.75) {
		t.Errorf("Expected (0.25, -0.75), got %v", got)
	}
}

func TestRound(t *testing.T) {
	if got := V(0.4, 1.6).Round(); got != V(0, 2) {
		t.Errorf("Expected (0, 2), got %v", got)
	}

	// Halves round away from zero
	if got := V(0.5, -0.5).Round(); got != V(1, -1) {
		t.Errorf("Expected (1, -1), got %v", got)
	}
}
