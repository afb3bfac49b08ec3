package orbitshot

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"left of", 9, 40, false},
		{"below", 50, 71, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{5, 5, 10, 10}, true},
		{"contained", Rect{2, 2, 2, 2}, true},
		{"shared edge", Rect{10, 0, 5, 5}, true},
		{"apart", Rect{11, 0, 5, 5}, false},
		{"above", Rect{0, -6, 5, 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	c := Rect{X: 10, Y: 20, Width: 30, Height: 40}.Center()
	if c != (Vec2{25, 40}) {
		t.Errorf("Center = %v, want {25 40}", c)
	}
}

func TestLineFromAngle(t *testing.T) {
	tests := []struct {
		name         string
		angle        float64
		wantX, wantY float64
	}{
		{"east", 0, 110, 50},
		{"south", math.Pi / 2, 100, 60},
		{"west", math.Pi, 90, 50},
		{"north", -math.Pi / 2, 100, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := LineFromAngle(100, 50, tt.angle, 10)
			assertNear(t, "X1", l.X1, 100)
			assertNear(t, "Y1", l.Y1, 50)
			assertNear(t, "X2", l.X2, tt.wantX)
			assertNear(t, "Y2", l.Y2, tt.wantY)
			assertNear(t, "Length", l.Length(), 10)
		})
	}
}

func TestLineIntersectsRect(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 10, Height: 10}
	tests := []struct {
		name string
		line Line
		want bool
	}{
		{"crosses through", Line{0, 15, 30, 15}, true},
		{"start inside", Line{15, 15, 100, 100}, true},
		{"end inside", Line{0, 0, 12, 12}, true},
		{"diagonal through corners", Line{0, 0, 30, 30}, true},
		{"touches corner", Line{0, 20, 10, 10}, true},
		{"runs along edge", Line{5, 10, 25, 10}, true},
		{"misses above", Line{0, 5, 30, 5}, false},
		{"stops short", Line{0, 15, 9, 15}, false},
		{"parallel beside", Line{21, 0, 21, 30}, false},
		{"passes corner diagonally", Line{0, 19, 19, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LineIntersectsRect(tt.line, r); got != tt.want {
				t.Errorf("LineIntersectsRect(%v) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}
