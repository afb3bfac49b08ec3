package game

import (
	"github.com/phanxgames/orbitshot"
)

// Turret is the rotating gun at screen centre. A repeating tween spins it
// from 0 to 360 degrees once per TurretPeriod; the tween's TimeScale is the
// speed multiplier that shots raise and every revolution lowers.
type Turret struct {
	node     *orbitshot.Node
	tween    *orbitshot.Tween
	friction float64
	thrust   float64
	max      float64
}

func newTurret(img *orbitshot.Node, o Options) *Turret {
	c := o.Center()
	img.SetPosition(c.X, c.Y)
	// Spin about the centre of the body at the bottom of the image.
	b := img.Image.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	img.SetPivot(w/2, h-w/2)
	img.SetScale(o.TurretScale, o.TurretScale)
	img.ZIndex = o.TurretDepth

	t := &Turret{node: img, friction: o.Friction, thrust: o.Thrust, max: o.MaxMultiplier}
	t.tween = orbitshot.NewTween(0, 360, o.TurretPeriod, nil, img.SetAngleDegrees)
	t.tween.Repeat = orbitshot.RepeatForever
	t.tween.OnRepeat = t.ApplyFriction
	return t
}

// Node returns the turret sprite.
func (t *Turret) Node() *orbitshot.Node { return t.node }

// Tween returns the rotation tween.
func (t *Turret) Tween() *orbitshot.Tween { return t.tween }

// AngleDegrees returns the turret angle wrapped into [-180, 180).
func (t *Turret) AngleDegrees() float64 { return t.node.AngleDegrees() }

// SpeedMultiplier returns the current rotation speed relative to the base
// period.
func (t *Turret) SpeedMultiplier() float64 { return t.tween.TimeScale }

// ApplyFriction slows the turret after a full revolution, never below the
// base speed.
func (t *Turret) ApplyFriction() {
	t.tween.TimeScale = max(1, t.tween.TimeScale*t.friction)
}

// ApplyThrust speeds the turret up after a shot, never above the cap.
func (t *Turret) ApplyThrust() {
	t.tween.TimeScale = min(t.max, t.tween.TimeScale*t.thrust)
}
