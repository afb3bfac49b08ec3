package game

import (
	"github.com/phanxgames/orbitshot"
)

// Fireline is the beam drawn for a shot. It is only visible for a moment
// after firing, which also gates the next shot.
type Fireline struct {
	node   *orbitshot.Node
	origin orbitshot.Vec2
	length float64
}

func newFireline(img *orbitshot.Node, o Options) *Fireline {
	c := o.Center()
	img.SetPosition(c.X, c.Y)
	img.SetOrigin(0, 0.5)
	img.SetDisplaySize(o.FirelineWidth, o.FirelineHeight)
	img.Visible = false
	return &Fireline{node: img, origin: c, length: o.HitLength()}
}

// Node returns the beam sprite.
func (f *Fireline) Node() *orbitshot.Node { return f.node }

// Visible reports whether the beam is showing.
func (f *Fireline) Visible() bool { return f.node.Visible }

// Show displays the beam pointing at angleDeg.
func (f *Fireline) Show(angleDeg float64) {
	f.node.SetAngleDegrees(angleDeg)
	f.node.Visible = true
}

// Hide removes the beam.
func (f *Fireline) Hide() { f.node.Visible = false }

// AngleDegrees returns the beam angle wrapped into [-180, 180).
func (f *Fireline) AngleDegrees() float64 { return f.node.AngleDegrees() }

// Segment returns the line targets are tested against: from the screen
// centre, half a screen height along the beam.
func (f *Fireline) Segment() orbitshot.Line {
	return orbitshot.LineFromAngle(f.origin.X, f.origin.Y, f.node.Rotation, f.length)
}
