package orbitshot

import (
	"strings"
	"testing"
)

func TestRunRejectsBadSize(t *testing.T) {
	tests := []struct {
		name string
		cfg  RunConfig
	}{
		{"zero", RunConfig{}},
		{"no height", RunConfig{Width: 750}},
		{"negative width", RunConfig{Width: -1, Height: 1334}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Run(NewScene(), tt.cfg)
			if err == nil || !strings.Contains(err.Error(), "invalid screen size") {
				t.Errorf("Run = %v, want invalid screen size", err)
			}
		})
	}
}

func TestGameLoopLayout(t *testing.T) {
	g := &gameLoop{scene: NewScene(), width: 750, height: 1334}
	// The logical size ignores the window size.
	if w, h := g.Layout(375, 667); w != 750 || h != 1334 {
		t.Errorf("Layout = %dx%d, want 750x1334", w, h)
	}
}

func TestFPSWidget(t *testing.T) {
	n := NewFPSWidget()
	if n.Type != NodeTypeSprite || n.Image == nil || n.OnUpdate == nil {
		t.Fatalf("widget = %+v", n)
	}
	if b := n.Image.Bounds(); b.Dx() != 100 || b.Dy() != 32 {
		t.Errorf("image = %v, want 100x32", b)
	}
	if n.ZIndex != 1<<20 {
		t.Errorf("ZIndex = %d, want it above everything", n.ZIndex)
	}
}
