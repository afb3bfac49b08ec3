package orbitshot

import (
	"math"
	"sort"
)

// arcSamples is the number of samples used to build an arc-length table for
// curved segments.
const arcSamples = 64

// curve is one segment of a Path. pointAt and tangentAt take an arc-length
// fraction u in [0, 1].
type curve interface {
	length() float64
	pointAt(u float64) Vec2
	tangentAt(u float64) Vec2
	startPoint() Vec2
	endPoint() Vec2
}

type lineCurve struct {
	a, b Vec2
}

func (l lineCurve) length() float64 { return l.b.Sub(l.a).Len() }
func (l lineCurve) pointAt(u float64) Vec2 { return l.a.Add(l.b.Sub(l.a).Scale(u)) }
func (l lineCurve) tangentAt(float64) Vec2 { return l.b.Sub(l.a).Normalize() }
func (l lineCurve) startPoint() Vec2 { return l.a }
func (l lineCurve) endPoint() Vec2 { return l.b }

// ellipseCurve is an elliptical arc. Angles are in radians; sweep is signed.
type ellipseCurve struct {
	center   Vec2
	xRadius  float64
	yRadius  float64
	start    float64
	sweep    float64
	rotation float64
	cumLen   []float64 // cumulative length at each of arcSamples+1 parameter steps
}

func newEllipseCurve(center Vec2, xr, yr, start, sweep, rotation float64) *ellipseCurve {
	e := &ellipseCurve{center: center, xRadius: xr, yRadius: yr, start: start, sweep: sweep, rotation: rotation}
	e.cumLen = make([]float64, arcSamples+1)
	prev := e.rawPoint(0)
	for i := 1; i <= arcSamples; i++ {
		p := e.rawPoint(float64(i) / arcSamples)
		e.cumLen[i] = e.cumLen[i-1] + p.Sub(prev).Len()
		prev = p
	}
	return e
}

// sweepFor normalises the angular travel from start to end. Equal angles
// sweep nothing; otherwise the counter-clockwise sweep is in (0, 2*pi] and a
// clockwise arc travels the complementary way round.
func sweepFor(start, end float64, clockwise bool) float64 {
	const twoPi = 2 * math.Pi
	delta := end - start
	same := math.Abs(delta) < 1e-12
	for delta < 0 {
		delta += twoPi
	}
	for delta > twoPi {
		delta -= twoPi
	}
	if delta < 1e-12 {
		if same {
			delta = 0
		} else {
			delta = twoPi
		}
	}
	if clockwise && !same {
		if delta == twoPi {
			delta = -twoPi
		} else {
			delta -= twoPi
		}
	}
	return delta
}

// rawPoint evaluates the arc at parameter t (uniform in angle, not length).
func (e *ellipseCurve) rawPoint(t float64) Vec2 {
	sin, cos := math.Sincos(e.start + t*e.sweep)
	x := e.xRadius * cos
	y := e.yRadius * sin
	if e.rotation != 0 {
		rs, rc := math.Sincos(e.rotation)
		x, y = x*rc-y*rs, x*rs+y*rc
	}
	return Vec2{e.center.X + x, e.center.Y + y}
}

// paramAt converts an arc-length fraction into the angle parameter.
func (e *ellipseCurve) paramAt(u float64) float64 {
	total := e.cumLen[arcSamples]
	if total == 0 {
		return u
	}
	target := u * total
	i := sort.SearchFloat64s(e.cumLen, target)
	if i <= 0 {
		return 0
	}
	if i > arcSamples {
		return 1
	}
	lo, hi := e.cumLen[i-1], e.cumLen[i]
	frac := 0.0
	if hi > lo {
		frac = (target - lo) / (hi - lo)
	}
	return (float64(i-1) + frac) / arcSamples
}

func (e *ellipseCurve) length() float64 { return e.cumLen[arcSamples] }
func (e *ellipseCurve) pointAt(u float64) Vec2 { return e.rawPoint(e.paramAt(u)) }
func (e *ellipseCurve) startPoint() Vec2 { return e.rawPoint(0) }
func (e *ellipseCurve) endPoint() Vec2 { return e.rawPoint(1) }

func (e *ellipseCurve) tangentAt(u float64) Vec2 {
	sin, cos := math.Sincos(e.start + e.paramAt(u)*e.sweep)
	dx := -e.xRadius * sin * e.sweep
	dy := e.yRadius * cos * e.sweep
	if e.rotation != 0 {
		rs, rc := math.Sincos(e.rotation)
		dx, dy = dx*rc-dy*rs, dx*rs+dy*rc
	}
	return Vec2{dx, dy}.Normalize()
}

// Path is a sequence of connected line and elliptical-arc segments. Positions
// along the path are addressed by a fraction of its total length.
type Path struct {
	start  Vec2
	curves []curve
	cumLen []float64 // cumulative length after each curve
}

// NewPath starts an empty path at (x, y).
func NewPath(x, y float64) *Path {
	return &Path{start: Vec2{x, y}}
}

func (p *Path) add(c curve) *Path {
	total := 0.0
	if n := len(p.cumLen); n > 0 {
		total = p.cumLen[n-1]
	}
	p.curves = append(p.curves, c)
	p.cumLen = append(p.cumLen, total+c.length())
	return p
}

// LineTo appends a straight segment from the current end point to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	return p.add(lineCurve{a: p.EndPoint(), b: Vec2{x, y}})
}

// EllipseTo appends an elliptical arc. The arc's centre is chosen so that its
// start point coincides with the path's current end point. Angles are in
// degrees; negative radii mirror the arc through its centre.
func (p *Path) EllipseTo(xRadius, yRadius, startDeg, endDeg float64, clockwise bool, rotationDeg float64) *Path {
	start := DegToRad(startDeg)
	sweep := sweepFor(start, DegToRad(endDeg), clockwise)
	rot := DegToRad(rotationDeg)
	probe := newEllipseCurve(Vec2{}, xRadius, yRadius, start, sweep, rot)
	center := p.EndPoint().Sub(probe.startPoint())
	return p.add(newEllipseCurve(center, xRadius, yRadius, start, sweep, rot))
}

// NumSegments returns the number of segments in the path.
func (p *Path) NumSegments() int {
	return len(p.curves)
}

// StartPoint returns the first point of the path.
func (p *Path) StartPoint() Vec2 {
	return p.start
}

// EndPoint returns the last point of the path, or the start point if empty.
func (p *Path) EndPoint() Vec2 {
	if len(p.curves) == 0 {
		return p.start
	}
	return p.curves[len(p.curves)-1].endPoint()
}

// Length returns the total arc length of the path.
func (p *Path) Length() float64 {
	if len(p.cumLen) == 0 {
		return 0
	}
	return p.cumLen[len(p.cumLen)-1]
}

// Closed reports whether the end point meets the start point within tol.
func (p *Path) Closed(tol float64) bool {
	return p.EndPoint().Sub(p.start).Len() <= tol
}

// locate maps a path fraction onto a segment index and that segment's own
// length fraction.
func (p *Path) locate(t float64) (int, float64) {
	t = math.Max(0, math.Min(1, t))
	total := p.Length()
	d := t * total
	i := sort.SearchFloat64s(p.cumLen, d)
	if i >= len(p.curves) {
		i = len(p.curves) - 1
	}
	prev := 0.0
	if i > 0 {
		prev = p.cumLen[i-1]
	}
	segLen := p.cumLen[i] - prev
	if segLen == 0 {
		return i, 0
	}
	return i, (d - prev) / segLen
}

// PointAt returns the point at fraction t of the path's length. t is clamped
// to [0, 1].
func (p *Path) PointAt(t float64) Vec2 {
	if len(p.curves) == 0 || p.Length() == 0 {
		return p.start
	}
	i, u := p.locate(t)
	return p.curves[i].pointAt(u)
}

// TangentAt returns the unit direction of travel at fraction t.
func (p *Path) TangentAt(t float64) Vec2 {
	if len(p.curves) == 0 || p.Length() == 0 {
		return Vec2{}
	}
	i, u := p.locate(t)
	return p.curves[i].tangentAt(u)
}

// Points returns a polyline approximating the path. Straight segments
// contribute their end points; arcs contribute divisions samples each.
func (p *Path) Points(divisions int) []Vec2 {
	if divisions < 1 {
		divisions = 1
	}
	pts := []Vec2{p.start}
	for _, c := range p.curves {
		steps := divisions
		if _, ok := c.(lineCurve); ok {
			steps = 1
		}
		for i := 1; i <= steps; i++ {
			pt := c.pointAt(float64(i) / float64(steps))
			if pt.Sub(pts[len(pts)-1]).Len() > 1e-9 {
				pts = append(pts, pt)
			}
		}
	}
	return pts
}

// NewRoundedRectPath builds a closed rounded-rectangle path with its top-left
// at (x, y). It starts at the left end of the top edge and runs clockwise on
// screen: top edge, top-right arc, right edge, bottom-right arc, bottom edge,
// bottom-left arc, left edge, top-left arc.
func NewRoundedRectPath(x, y, width, height, radius float64) *Path {
	p := NewPath(x+radius, y)
	p.LineTo(x+width-radius, y)
	p.EllipseTo(-radius, -radius, 90, 180, false, 0)
	p.LineTo(x+width, y+height-radius)
	p.EllipseTo(-radius, -radius, 180, 270, false, 0)
	p.LineTo(x+radius, y+height)
	p.EllipseTo(-radius, -radius, 270, 0, false, 0)
	p.LineTo(x, y+radius)
	p.EllipseTo(-radius, -radius, 0, 90, false, 0)
	return p
}
