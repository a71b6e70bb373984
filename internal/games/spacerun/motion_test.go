package spacerun

import (
	"math"
	"testing"

	"github.com/vovakirdan/spacerun/internal/core"
)

const eps = 1e-9

func near(a, b core.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func TestAdvanceShip(t *testing.T) {
	tests := []struct {
		name     string
		current  core.Vec
		target   core.Vec
		dt       float64
		expected core.Vec
	}{
		{"right", core.V(0, 0), core.V(100, 0), 0.1, core.V(30, 0)},
		{"down", core.V(50, 50), core.V(50, -50), 0.1, core.V(50, 20)},
		{"diagonal", core.V(0, 0), core.V(300, 400), 0.01, core.V(1.8, 2.4)},
		{"zero dt", core.V(10, 10), core.V(100, 100), 0, core.V(10, 10)},
		{"inside dead zone", core.V(0, 0), core.V(3, 0), 1, core.V(0, 0)},
		{"on dead zone edge", core.V(0, 0), core.V(0, 4), 1, core.V(0, 0)},
		{"overshoots then corrects", core.V(0, 0), core.V(10, 0), 0.1, core.V(30, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AdvanceShip(tc.current, tc.target, 300, tc.dt)
			if !near(got, tc.expected, 1e-9) {
				t.Errorf("AdvanceShip() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestAdvanceShipMovesExactlySpeedTimesDt(t *testing.T) {
	targets := []core.Vec{core.V(200, 13), core.V(-50, -70), core.V(4.1, 0), core.V(0, -1000)}
	for _, target := range targets {
		for _, dt := range []float64{0, 1.0 / 120, 1.0 / 60, 0.25} {
			got := AdvanceShip(core.V(0, 0), target, 300, dt)
			if d := got.Len(); math.Abs(d-300*dt) > 1e-9 {
				t.Errorf("target %+v dt %f: moved %f, expected %f", target, dt, d, 300*dt)
			}
			if dt > 0 {
				bearing := math.Atan2(target.Y, target.X)
				if got := math.Atan2(got.Y, got.X); math.Abs(got-bearing) > 1e-9 {
					t.Errorf("target %+v: bearing %f, expected %f", target, got, bearing)
				}
			}
		}
	}
}

func TestLinearMotion(t *testing.T) {
	m := Linear(core.V(0, 100), core.V(0, -100), 2, 4)
	e := &Entity{Scale: 1}

	m.Apply(e, 2)
	if !near(e.Pos, core.V(0, 100), eps) {
		t.Errorf("start position = %+v", e.Pos)
	}
	m.Apply(e, 3)
	if !near(e.Pos, core.V(0, 50), eps) {
		t.Errorf("quarter position = %+v, expected (0,50)", e.Pos)
	}
	if m.Done(5.99) {
		t.Error("motion should still run before its duration")
	}
	if !m.Done(6) {
		t.Error("motion should be done at start+duration")
	}
	m.Apply(e, 10)
	if !near(e.Pos, core.V(0, -100), eps) {
		t.Errorf("position past the end = %+v, expected clamped to (0,-100)", e.Pos)
	}
}

func TestMotionScaleAndSpin(t *testing.T) {
	m := Linear(core.V(0, 0), core.V(0, 0), 0, 5).WithScale(1, 0.5, 5).WithSpin(math.Pi / 4)
	e := &Entity{Scale: 1}

	m.Apply(e, 2.5)
	if math.Abs(e.Scale-0.75) > eps {
		t.Errorf("scale at half time = %f, expected 0.75", e.Scale)
	}
	if math.Abs(e.Angle-math.Pi*2.5/4) > eps {
		t.Errorf("angle = %f, expected %f", e.Angle, math.Pi*2.5/4)
	}
	m.Apply(e, 5)
	if math.Abs(e.Scale-0.5) > eps {
		t.Errorf("final scale = %f, expected 0.5", e.Scale)
	}
}

func TestNegativeDurationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("negative duration should panic")
		}
	}()
	Linear(core.V(0, 0), core.V(1, 1), 0, -1)
}

func TestEnemyPathEndpoints(t *testing.T) {
	p := EnemyPath(600)

	if !near(p.Start(), core.V(0.5, -0.5), eps) {
		t.Errorf("Start() = %+v, expected (0.5,-0.5)", p.Start())
	}
	if !near(p.End(), core.V(-2.5, -600), eps) {
		t.Errorf("End() = %+v, expected (-2.5,-600)", p.End())
	}
	if start, _ := p.At(0); !near(start, p.Start(), eps) {
		t.Errorf("At(0) = %+v", start)
	}
	if end, _ := p.At(1); !near(end, p.End(), eps) {
		t.Errorf("At(1) = %+v", end)
	}
}

func TestPathConstantSpeed(t *testing.T) {
	p := EnemyPath(700)
	const steps = 50

	prev, _ := p.At(0)
	expected := p.Length() / steps
	for i := 1; i <= steps; i++ {
		pt, _ := p.At(float64(i) / steps)
		// Chords are never longer than the arc they cut.
		if d := core.Distance(prev, pt); d > expected+1e-6 {
			t.Errorf("step %d covers %f, more than arc step %f", i, d, expected)
		}
		prev = pt
	}
}

func TestFollowPathIsOffsetFromOrigin(t *testing.T) {
	p := EnemyPath(400)
	origin := core.V(200, 430)
	m := FollowPath(origin, p, 0, 6)
	e := &Entity{Scale: 1}

	m.Apply(e, 6)
	if !near(e.Pos, origin.Add(p.End()), eps) {
		t.Errorf("final position = %+v, expected %+v", e.Pos, origin.Add(p.End()))
	}
	if math.Abs(e.Pos.Y-(origin.Y-400)) > eps {
		t.Errorf("path should end a scene height below its origin, at %f", e.Pos.Y)
	}
}

func TestStraightPathHeading(t *testing.T) {
	p := NewPath([]Segment{{core.V(0, 0), core.V(0, -10), core.V(0, -20), core.V(0, -30)}})

	pos, heading := p.At(0.5)
	if !near(pos, core.V(0, -15), 1e-6) {
		t.Errorf("midpoint = %+v, expected (0,-15)", pos)
	}
	if math.Abs(heading-(-math.Pi/2)) > eps {
		t.Errorf("heading = %f, expected -pi/2", heading)
	}
}
