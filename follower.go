package orbitshot

import (
	"math"
	"time"

	"github.com/tanema/gween/ease"
)

// FollowConfig controls how a PathFollower travels.
type FollowConfig struct {
	// Duration is the time for one full traversal of the path.
	Duration time.Duration
	// Repeat is the number of extra traversals; RepeatForever loops.
	Repeat int
	// StartAt is the initial progress along the path, in [0, 1).
	StartAt float64
	// RotateToPath turns the node to face its direction of travel.
	RotateToPath bool
	// VerticalAdjust flips the node vertically while it travels leftwards so
	// the graphic is never drawn upside down. Only used with RotateToPath.
	VerticalAdjust bool
	// RotationOffset is added to the travel direction, in radians.
	RotationOffset float64
	// Ease shapes progress along the path. Nil means linear.
	Ease ease.TweenFunc
}

// PathFollower moves a node along a Path, driven by a repeating Tween on
// path progress.
type PathFollower struct {
	node   *Node
	path   *Path
	config FollowConfig
	offset Vec2
	tween  *Tween
	placed bool
}

// NewPathFollower binds node to path. The node keeps its offset from the
// path's start point, so a node created on the start point rides the path
// exactly. Use Scene.StartFollow, call Update each frame, or register
// Tween() with a TweenManager to move it.
func NewPathFollower(node *Node, path *Path, cfg FollowConfig) *PathFollower {
	f := &PathFollower{
		node:   node,
		path:   path,
		config: cfg,
		offset: Vec2{node.X, node.Y}.Sub(path.StartPoint()),
	}
	f.tween = NewTween(0, 1, cfg.Duration, cfg.Ease, f.place)
	f.tween.Repeat = cfg.Repeat
	f.tween.Seek(cfg.StartAt)
	return f
}

// StartFollow creates a follower for node and registers it with the scene's
// tween manager.
func (s *Scene) StartFollow(node *Node, path *Path, cfg FollowConfig) *PathFollower {
	f := NewPathFollower(node, path, cfg)
	s.tweens.Add(f.tween)
	return f
}

// place positions the node at progress t and orients it.
func (f *PathFollower) place(t float64) {
	pt := f.path.PointAt(t).Add(f.offset)
	dx, dy := pt.X-f.node.X, pt.Y-f.node.Y
	if !f.placed {
		// First placement jumps to StartAt; face along the path there.
		tan := f.path.TangentAt(t)
		dx, dy = tan.X, tan.Y
		f.placed = true
	}
	f.node.SetPosition(pt.X, pt.Y)
	if !f.config.RotateToPath || (dx == 0 && dy == 0) {
		return
	}
	rot := math.Atan2(dy, dx) + f.config.RotationOffset
	f.node.SetRotation(rot)
	if f.config.VerticalAdjust {
		f.node.FlipY = math.Abs(WrapRadians(rot)) > math.Pi/2
	}
}

// Node returns the node being moved.
func (f *PathFollower) Node() *Node { return f.node }

// Path returns the path being followed.
func (f *PathFollower) Path() *Path { return f.path }

// Tween returns the progress tween.
func (f *PathFollower) Tween() *Tween { return f.tween }

// Progress returns the current fraction of the path covered.
func (f *PathFollower) Progress() float64 { return f.tween.Progress() }

// Update advances the follower by dt seconds. Not needed when the follower
// was started through Scene.StartFollow.
func (f *PathFollower) Update(dt float64) { f.tween.Update(dt) }

// Pause stops the node where it is.
func (f *PathFollower) Pause() { f.tween.Pause() }

// Resume continues after Pause.
func (f *PathFollower) Resume() { f.tween.Resume() }

// Stop ends following permanently.
func (f *PathFollower) Stop() { f.tween.Stop() }

// WrapRadians wraps an angle into [-pi, pi).
func WrapRadians(rad float64) float64 {
	r := math.Mod(rad+math.Pi, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return r - math.Pi
}
