package orbitshot

import (
	"math"
	"testing"
)

func assertVec(t *testing.T, name string, got, want Vec2, tol float64) {
	t.Helper()
	if math.Abs(got.X-want.X) > tol || math.Abs(got.Y-want.Y) > tol {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestSweepFor(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		clockwise  bool
		want       float64
	}{
		{"quarter ccw", 0, math.Pi / 2, false, math.Pi / 2},
		{"quarter cw", 0, math.Pi / 2, true, -3 * math.Pi / 2},
		{"wraps negative delta", 3 * math.Pi / 2, 0, false, math.Pi / 2},
		{"same angle", 1, 1, false, 0},
		{"same angle cw", 1, 1, true, 0},
		{"full turn", 0, 2 * math.Pi, false, 2 * math.Pi},
		{"full turn cw", 0, 2 * math.Pi, true, -2 * math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sweepFor(tt.start, tt.end, tt.clockwise)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("sweepFor(%v, %v, %v) = %v, want %v", tt.start, tt.end, tt.clockwise, got, tt.want)
			}
		})
	}
}

func TestPathEmpty(t *testing.T) {
	p := NewPath(3, 4)
	if p.Length() != 0 {
		t.Errorf("Length = %v, want 0", p.Length())
	}
	assertVec(t, "PointAt", p.PointAt(0.5), Vec2{3, 4}, 0)
	assertVec(t, "TangentAt", p.TangentAt(0.5), Vec2{}, 0)
	assertVec(t, "EndPoint", p.EndPoint(), Vec2{3, 4}, 0)
	if !p.Closed(0) {
		t.Error("empty path should be closed")
	}
}

func TestPathLines(t *testing.T) {
	p := NewPath(0, 0).LineTo(100, 0).LineTo(100, 100)
	if p.NumSegments() != 2 {
		t.Fatalf("NumSegments = %d, want 2", p.NumSegments())
	}
	assertNear(t, "Length", p.Length(), 200)

	tests := []struct {
		t    float64
		want Vec2
	}{
		{-1, Vec2{0, 0}},
		{0, Vec2{0, 0}},
		{0.25, Vec2{50, 0}},
		{0.5, Vec2{100, 0}},
		{0.75, Vec2{100, 50}},
		{1, Vec2{100, 100}},
		{2, Vec2{100, 100}},
	}
	for _, tt := range tests {
		assertVec(t, "PointAt", p.PointAt(tt.t), tt.want, 1e-9)
	}
	assertVec(t, "TangentAt(0.25)", p.TangentAt(0.25), Vec2{1, 0}, 1e-9)
	assertVec(t, "TangentAt(0.75)", p.TangentAt(0.75), Vec2{0, 1}, 1e-9)
	if p.Closed(1) {
		t.Error("open path reported closed")
	}
}

func TestPathEllipseToContinuity(t *testing.T) {
	p := NewPath(5, 5).EllipseTo(10, 10, 0, 180, false, 0)

	assertVec(t, "start", p.PointAt(0), Vec2{5, 5}, 1e-9)
	assertVec(t, "end", p.EndPoint(), Vec2{-15, 5}, 1e-9)
	// A half circle of radius 10 sampled as chords.
	if got := p.Length(); math.Abs(got-10*math.Pi) > 0.01 {
		t.Errorf("Length = %v, want ~%v", got, 10*math.Pi)
	}
	// Halfway round the arc is the bottom of the circle (y grows down).
	assertVec(t, "mid", p.PointAt(0.5), Vec2{-5, 15}, 0.05)
}

func TestPathEllipseRotation(t *testing.T) {
	p := NewPath(0, 0).EllipseTo(20, 10, 0, 180, false, 90)
	// Rotating the ellipse a quarter turn swaps which axis the diameter runs on.
	assertVec(t, "end", p.EndPoint(), Vec2{0, -40}, 1e-9)
}

func TestRoundedRectPath(t *testing.T) {
	const (
		x, y   = 100.0, 50.0
		w, h   = 200.0, 120.0
		radius = 10.0
	)
	p := NewRoundedRectPath(x, y, w, h, radius)

	if p.NumSegments() != 8 {
		t.Fatalf("NumSegments = %d, want 8", p.NumSegments())
	}
	want := 2*(w-2*radius) + 2*(h-2*radius) + 2*math.Pi*radius
	if got := p.Length(); math.Abs(got-want) > 0.01 {
		t.Errorf("Length = %v, want ~%v", got, want)
	}
	if !p.Closed(1e-9) {
		t.Errorf("path not closed: start %v end %v", p.StartPoint(), p.EndPoint())
	}
	assertVec(t, "start", p.PointAt(0), Vec2{x + radius, y}, 1e-9)

	// Middle of the top edge, travelling right.
	top := (w - 2*radius) / 2
	assertVec(t, "top mid", p.PointAt(top/p.Length()), Vec2{x + w/2, y}, 1e-6)
	assertVec(t, "top tangent", p.TangentAt(top/p.Length()), Vec2{1, 0}, 1e-9)
}

func TestRoundedRectCorners(t *testing.T) {
	p := NewRoundedRectPath(0, 0, 100, 60, 10)
	// Each straight edge ends where the next arc begins, and each arc ends on
	// the following edge.
	wantEnds := []Vec2{
		{90, 0}, {100, 10},
		{100, 50}, {90, 60},
		{10, 60}, {0, 50},
		{0, 10}, {10, 0},
	}
	for i, c := range p.curves {
		assertVec(t, "segment end", c.endPoint(), wantEnds[i], 1e-9)
	}
}

func TestPathPoints(t *testing.T) {
	p := NewRoundedRectPath(0, 0, 100, 60, 10)
	pts := p.Points(4)
	// Start point, one end point per edge, four samples per corner.
	if len(pts) != 1+4+4*4 {
		t.Fatalf("len(Points) = %d, want 21", len(pts))
	}
	assertVec(t, "first", pts[0], Vec2{10, 0}, 1e-9)
	assertVec(t, "last", pts[len(pts)-1], Vec2{10, 0}, 1e-9)

	if got := len(NewPath(0, 0).LineTo(10, 0).Points(0)); got != 2 {
		t.Errorf("line Points(0) len = %d, want 2", got)
	}
}
