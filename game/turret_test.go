package game

import (
	"math"
	"testing"

	"github.com/phanxgames/orbitshot"
)

func newTestTurret() *Turret {
	return newTurret(orbitshot.NewSprite("turret", newTurretImage()), DefaultOptions())
}

func TestTurretPlacement(t *testing.T) {
	tr := newTestTurret()
	n := tr.Node()
	if n.X != 375 || n.Y != 667 {
		t.Errorf("position = (%v, %v), want (375, 667)", n.X, n.Y)
	}
	if n.PivotX != turretSize/2 || n.PivotY != turretBarrelLen+turretSize/2 {
		t.Errorf("pivot = (%v, %v)", n.PivotX, n.PivotY)
	}
	if n.ScaleX != 2 || n.ZIndex != 1 {
		t.Errorf("scale = %v, z = %d", n.ScaleX, n.ZIndex)
	}
	if tr.SpeedMultiplier() != 1 {
		t.Errorf("SpeedMultiplier = %v, want 1", tr.SpeedMultiplier())
	}
}

func TestTurretThrustCaps(t *testing.T) {
	tr := newTestTurret()
	for _, want := range []float64{2, 4, 8, 11, 11} {
		tr.ApplyThrust()
		if got := tr.SpeedMultiplier(); got != want {
			t.Fatalf("after thrust = %v, want %v", got, want)
		}
	}
}

func TestTurretFriction(t *testing.T) {
	tests := []struct {
		name string
		from float64
		want float64
	}{
		{"slows", 11, 9.9},
		{"floors at base speed", 1.05, 1},
		{"base speed", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestTurret()
			tr.Tween().TimeScale = tt.from
			tr.ApplyFriction()
			if got := tr.SpeedMultiplier(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SpeedMultiplier = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTurretSpins(t *testing.T) {
	tr := newTestTurret()
	tr.Tween().Update(1.25)
	if got := tr.AngleDegrees(); math.Abs(got-90) > 1e-3 {
		t.Errorf("angle after a quarter period = %v, want 90", got)
	}
}

func TestTurretRevolutionAppliesFriction(t *testing.T) {
	tr := newTestTurret()
	tr.Tween().TimeScale = 2
	// 2.6s at double speed completes one revolution.
	tr.Tween().Update(2.6)
	if got := tr.SpeedMultiplier(); math.Abs(got-1.8) > 1e-9 {
		t.Errorf("SpeedMultiplier = %v, want 1.8", got)
	}
	if tr.Tween().Repeats() != 1 {
		t.Errorf("Repeats = %d, want 1", tr.Tween().Repeats())
	}
}
