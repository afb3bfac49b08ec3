package game

import "github.com/phanxgames/orbitshot"

// trackDivisions is the number of polyline samples per arc when drawing.
const trackDivisions = 16

// PathOffset returns the top-left corner of the track, centring it on screen.
func (o Options) PathOffset() orbitshot.Vec2 {
	return orbitshot.Vec2{
		X: (o.ScreenWidth - o.PathWidth) / 2,
		Y: (o.ScreenHeight - o.PathHeight) / 2,
	}
}

// BuildTrack returns the rounded-rectangle path the targets orbit.
func BuildTrack(o Options) *orbitshot.Path {
	off := o.PathOffset()
	return orbitshot.NewRoundedRectPath(off.X, off.Y, o.PathWidth, o.PathHeight, o.CurveRadius)
}

// newTrackNode draws path as a closed stroke.
func newTrackNode(path *orbitshot.Path, o Options) *orbitshot.Node {
	pts := path.Points(trackDivisions)
	closed := path.Closed(1e-6)
	if closed && len(pts) > 2 {
		pts = pts[:len(pts)-1] // the stroke joins back to the first point itself
	}
	n := orbitshot.NewStroke("track", pts, o.PathStroke, closed)
	n.Color = o.PathColor
	return n
}
