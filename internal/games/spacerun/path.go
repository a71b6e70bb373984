package spacerun

import (
	"math"
	"sort"

	"github.com/vovakirdan/spacerun/internal/core"
)

// samplesPerSegment sets the arc-length table resolution.
const samplesPerSegment = 32

// Segment is a cubic Bezier curve.
type Segment struct {
	P0, C1, C2, P3 core.Vec
}

// At evaluates the curve at t in [0, 1].
func (s Segment) At(t float64) core.Vec {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return core.Vec{
		X: a*s.P0.X + b*s.C1.X + c*s.C2.X + d*s.P3.X,
		Y: a*s.P0.Y + b*s.C1.Y + c*s.C2.Y + d*s.P3.Y,
	}
}

// Path is a chain of Bezier segments traversed at constant speed.
// Points are offsets from the owner's spawn position.
type Path struct {
	points []core.Vec // Samples along the whole path
	cum    []float64  // Arc length from the start to each sample
}

// NewPath samples the segments into an arc-length table.
func NewPath(segments []Segment) *Path {
	if len(segments) == 0 {
		panic("spacerun: path needs at least one segment")
	}
	p := &Path{
		points: make([]core.Vec, 0, len(segments)*samplesPerSegment+1),
		cum:    make([]float64, 0, len(segments)*samplesPerSegment+1),
	}
	p.points = append(p.points, segments[0].P0)
	p.cum = append(p.cum, 0)
	for _, s := range segments {
		for i := 1; i <= samplesPerSegment; i++ {
			pt := s.At(float64(i) / samplesPerSegment)
			last := p.points[len(p.points)-1]
			p.cum = append(p.cum, p.cum[len(p.cum)-1]+core.Distance(last, pt))
			p.points = append(p.points, pt)
		}
	}
	return p
}

// Length returns the total arc length.
func (p *Path) Length() float64 {
	return p.cum[len(p.cum)-1]
}

// Start returns the first point.
func (p *Path) Start() core.Vec {
	return p.points[0]
}

// End returns the last point.
func (p *Path) End() core.Vec {
	return p.points[len(p.points)-1]
}

// At returns the point at fraction t of the arc length and the heading of
// the path there in radians.
func (p *Path) At(t float64) (core.Vec, float64) {
	t = core.ClampF(t, 0, 1)
	target := t * p.Length()

	i := sort.SearchFloat64s(p.cum, target)
	switch {
	case i <= 0:
		i = 1
	case i >= len(p.cum):
		i = len(p.cum) - 1
	}
	a, b := p.points[i-1], p.points[i]
	span := p.cum[i] - p.cum[i-1]
	f := 0.0
	if span > 0 {
		f = (target - p.cum[i-1]) / span
	}
	d := b.Sub(a)
	return core.Lerp(a, b, f), math.Atan2(d.Y, d.X)
}

// EnemyPath returns the weaving flight path shared by enemy ships and
// power-ups. It ends sceneH below its start, off the bottom of the scene.
func EnemyPath(sceneH float64) *Path {
	v := core.V
	yMax := -sceneH
	return NewPath([]Segment{
		{v(0.5, -0.5), v(0.5, -0.5), v(4.55, -29.48), v(-2.5, -59.5)},
		{v(-2.5, -59.5), v(-9.55, -89.52), v(-43.32, -115.43), v(-27.5, -154.5)},
		{v(-27.5, -154.5), v(-11.68, -193.57), v(17.28, -186.95), v(30.5, -243.5)},
		{v(30.5, -243.5), v(43.72, -300.05), v(-47.71, -335.76), v(-52.5, -379.5)},
		{v(-52.5, -379.5), v(-57.29, -423.24), v(-8.14, -482.45), v(54.5, -449.5)},
		{v(54.5, -449.5), v(117.14, -416.55), v(52.25, -308.62), v(-5.5, -348.5)},
		{v(-5.5, -348.5), v(-63.25, -388.38), v(-14.48, -457.43), v(10.5, -494.5)},
		{v(10.5, -494.5), v(23.74, -514.16), v(6.93, -537.57), v(0.5, -559.5)},
		{v(0.5, -559.5), v(-5.2, yMax), v(-2.5, yMax), v(-2.5, yMax)},
	})
}
