package orbitshot

import (
	"image/color"
	"math"
	"testing"
)

func TestRGB(t *testing.T) {
	tests := []struct {
		hex  uint32
		want Color
	}{
		{0xffffff, ColorWhite},
		{0x000000, Color{0, 0, 0, 1}},
		{0xff0000, Color{1, 0, 0, 1}},
		{0x00ff00, Color{0, 1, 0, 1}},
		{0x0000ff, Color{0, 0, 1, 1}},
	}
	for _, tt := range tests {
		if got := RGB(tt.hex); got != tt.want {
			t.Errorf("RGB(%06x) = %v, want %v", tt.hex, got, tt.want)
		}
	}
}

func TestColorToRGBA(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		want color.RGBA
	}{
		{"white", ColorWhite, color.RGBA{255, 255, 255, 255}},
		{"half red", Color{1, 0, 0, 0.5}, color.RGBA{128, 0, 0, 128}},
		{"clamped", Color{2, -1, 0.5, 1}, color.RGBA{255, 0, 128, 255}},
		{"transparent", Color{1, 1, 1, 0}, color.RGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.toRGBA(); got != tt.want {
				t.Errorf("toRGBA = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec2(t *testing.T) {
	a := Vec2{3, 4}
	if a.Len() != 5 {
		t.Errorf("Len = %v, want 5", a.Len())
	}
	if got := a.Add(Vec2{1, 1}); got != (Vec2{4, 5}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(Vec2{1, 1}); got != (Vec2{2, 3}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (Vec2{6, 8}) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Normalize(); math.Abs(got.X-0.6) > epsilon || math.Abs(got.Y-0.8) > epsilon {
		t.Errorf("Normalize = %v", got)
	}
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("zero Normalize = %v", got)
	}
	assertNear(t, "Angle", Vec2{0, 1}.Angle(), math.Pi/2)
}

func TestAngleConversions(t *testing.T) {
	assertNear(t, "DegToRad(180)", DegToRad(180), math.Pi)
	assertNear(t, "RadToDeg(pi/2)", RadToDeg(math.Pi/2), 90)

	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{180, -180},
		{-180, -180},
		{270, -90},
		{360, 0},
		{-450, -90},
		{630, -90},
	}
	for _, tt := range tests {
		if got := WrapDegrees(tt.in); math.Abs(got-tt.want) > epsilon {
			t.Errorf("WrapDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRangeLerp(t *testing.T) {
	r := Range{10, 20}
	assertNear(t, "Lerp(0)", r.Lerp(0), 10)
	assertNear(t, "Lerp(0.5)", r.Lerp(0.5), 15)
	assertNear(t, "Lerp(1)", r.Lerp(1), 20)
}

func TestWhitePixel(t *testing.T) {
	if WhitePixel == nil {
		t.Fatal("WhitePixel not initialised")
	}
	if b := WhitePixel.Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("WhitePixel bounds = %v, want 1x1", b)
	}
}
