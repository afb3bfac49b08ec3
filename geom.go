package orbitshot

import "math"

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the centre point of the rectangle.
func (r Rect) Center() Vec2 { return Vec2{r.X + r.Width/2, r.Y + r.Height/2} }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Line is a finite segment from (X1, Y1) to (X2, Y2).
type Line struct {
	X1, Y1, X2, Y2 float64
}

// LineFromAngle returns the segment that starts at (x, y) and runs length
// units in direction angle (radians, 0 = +X, increasing clockwise on screen).
func LineFromAngle(x, y, angle, length float64) Line {
	sin, cos := math.Sincos(angle)
	return Line{X1: x, Y1: y, X2: x + length*cos, Y2: y + length*sin}
}

// Length returns the segment length.
func (l Line) Length() float64 {
	return math.Hypot(l.X2-l.X1, l.Y2-l.Y1)
}

// LineIntersectsRect reports whether the segment touches the rectangle: either
// endpoint lies inside (edges inclusive) or the segment crosses an edge.
func LineIntersectsRect(l Line, r Rect) bool {
	if r.Contains(l.X1, l.Y1) || r.Contains(l.X2, l.Y2) {
		return true
	}
	a := Vec2{l.X1, l.Y1}
	b := Vec2{l.X2, l.Y2}
	tl := Vec2{r.X, r.Y}
	tr := Vec2{r.Right(), r.Y}
	br := Vec2{r.Right(), r.Bottom()}
	bl := Vec2{r.X, r.Bottom()}
	return segmentsIntersect(a, b, tl, tr) ||
		segmentsIntersect(a, b, tr, br) ||
		segmentsIntersect(a, b, br, bl) ||
		segmentsIntersect(a, b, bl, tl)
}

// cross returns the z component of (b-a) x (c-a).
func cross(a, b, c Vec2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// onSegment reports whether c, known to be collinear with a-b, lies between them.
func onSegment(a, b, c Vec2) bool {
	return math.Min(a.X, b.X) <= c.X && c.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= c.Y && c.Y <= math.Max(a.Y, b.Y)
}

// segmentsIntersect reports whether segments p1-p2 and q1-q2 share a point.
func segmentsIntersect(p1, p2, q1, q2 Vec2) bool {
	d1 := cross(q1, q2, p1)
	d2 := cross(q1, q2, p2)
	d3 := cross(p1, p2, q1)
	d4 := cross(p1, p2, q2)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	switch {
	case d1 == 0 && onSegment(q1, q2, p1):
		return true
	case d2 == 0 && onSegment(q1, q2, p2):
		return true
	case d3 == 0 && onSegment(p1, p2, q1):
		return true
	case d4 == 0 && onSegment(p1, p2, q2):
		return true
	}
	return false
}
