package spacerun

import (
	"math"

	"github.com/vovakirdan/spacerun/internal/core"
)

// DeadZone is the distance within which the ship stops homing.
const DeadZone = 4.0

// AdvanceShip moves current toward target by speed*dt along the straight
// bearing. Within DeadZone of the target the ship does not move.
func AdvanceShip(current, target core.Vec, speed, dt float64) core.Vec {
	return advanceShip(current, target, speed, dt, DeadZone)
}

func advanceShip(current, target core.Vec, speed, dt, deadZone float64) core.Vec {
	d := target.Sub(current)
	if d.Len() <= deadZone {
		return current
	}
	bearing := math.Atan2(d.Y, d.X)
	step := speed * dt
	return core.Vec{
		X: current.X + math.Cos(bearing)*step,
		Y: current.Y + math.Sin(bearing)*step,
	}
}

// MotionKind selects how a scripted entity moves.
type MotionKind int

const (
	MotionLinear MotionKind = iota // Straight line From -> To
	MotionPath                     // Path offsets added to From
)

// Motion is a scripted motion descriptor, resolved once at spawn.
type Motion struct {
	Kind     MotionKind
	From     core.Vec
	To       core.Vec // Linear only
	Path     *Path    // Path only
	Start    float64  // Frame time the motion began
	Duration float64

	OrientToPath bool    // Heading follows the path tangent
	Spin         float64 // Radians per second, applied for the entity's lifetime

	ScaleFrom     float64
	ScaleTo       float64
	ScaleDuration float64 // 0 disables the scale tween
}

// Linear creates a constant-velocity motion from one point to another.
func Linear(from, to core.Vec, start, duration float64) *Motion {
	checkDuration(duration)
	return &Motion{Kind: MotionLinear, From: from, To: to, Start: start, Duration: duration}
}

// FollowPath creates a motion along path, offset from origin.
func FollowPath(origin core.Vec, path *Path, start, duration float64) *Motion {
	checkDuration(duration)
	return &Motion{Kind: MotionPath, From: origin, Path: path, Start: start, Duration: duration, OrientToPath: true}
}

// WithScale adds a scale tween and returns m.
func (m *Motion) WithScale(from, to, duration float64) *Motion {
	checkDuration(duration)
	m.ScaleFrom, m.ScaleTo, m.ScaleDuration = from, to, duration
	return m
}

// WithSpin adds a constant spin and returns m.
func (m *Motion) WithSpin(radiansPerSecond float64) *Motion {
	m.Spin = radiansPerSecond
	return m
}

// Progress returns the completed fraction at now, in [0, 1].
func (m *Motion) Progress(now float64) float64 {
	if m.Duration == 0 {
		return 1
	}
	return core.ClampF((now-m.Start)/m.Duration, 0, 1)
}

// Done reports whether the motion has completed at now.
func (m *Motion) Done(now float64) bool {
	return now-m.Start >= m.Duration
}

// Apply sets the entity's position, heading and scale for time now.
func (m *Motion) Apply(e *Entity, now float64) {
	t := m.Progress(now)
	switch m.Kind {
	case MotionLinear:
		e.Pos = core.Lerp(m.From, m.To, t)
	case MotionPath:
		offset, heading := m.Path.At(t)
		e.Pos = m.From.Add(offset)
		if m.OrientToPath {
			e.Angle = heading
		}
	}

	elapsed := now - m.Start
	if m.Spin != 0 {
		e.Angle = math.Mod(m.Spin*elapsed, 2*math.Pi)
	}
	if m.ScaleDuration > 0 {
		f := core.ClampF(elapsed/m.ScaleDuration, 0, 1)
		e.Scale = m.ScaleFrom + (m.ScaleTo-m.ScaleFrom)*f
	}
}

func checkDuration(d float64) {
	if d < 0 || math.IsNaN(d) {
		panic("spacerun: negative motion duration")
	}
}
