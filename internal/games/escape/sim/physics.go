package sim

import "math"

// TiltState is the board tilt input for one frame. Axes are independent;
// if both directions of an axis are held, right and down win.
type TiltState struct {
	Left, Right, Up, Down bool
}

// Any reports whether the board is tilted at all.
func (t TiltState) Any() bool {
	return t.Left || t.Right || t.Up || t.Down
}

// accelerationFor maps the tilt to a frame acceleration. Each held
// direction inclines its axis by the tilt angle; the sign of the angle
// together with the negative gravity picks the axis direction.
func accelerationFor(tilt TiltState, gravity, angleRad float64) Vec2 {
	var acc Vec2
	if tilt.Left {
		acc.X = rollAccel(gravity, angleRad)
	}
	if tilt.Right {
		acc.X = rollAccel(gravity, -angleRad)
	}
	if tilt.Up {
		acc.Y = rollAccel(gravity, angleRad)
	}
	if tilt.Down {
		acc.Y = rollAccel(gravity, -angleRad)
	}
	return acc
}

// rollAccel is the acceleration of a solid ball rolling down an incline:
// (2/3)*g*sin(angle).
func rollAccel(gravity, angleRad float64) float64 {
	return 2.0 / 3.0 * gravity * math.Sin(angleRad)
}

// integrate advances the player by one explicit Euler step. Displacement
// uses the same-frame acceleration: d = v*t + a*t^2/2, then v += a*t.
// There is no friction; the marble coasts until a wall stops it.
func integrate(p *Player, acc Vec2, dt float64) {
	disp := p.Vel.Scale(dt).Add(acc.Scale(0.5 * dt * dt))
	p.Pos = p.Pos.Add(disp)
	p.Vel = p.Vel.Add(acc.Scale(dt))
}
