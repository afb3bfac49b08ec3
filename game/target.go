package game

import (
	"fmt"
	"time"

	"github.com/phanxgames/orbitshot"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// TargetData is the component carried by every target entity.
type TargetData struct {
	Node     *orbitshot.Node
	Follower *orbitshot.PathFollower
	// Width is the drawn length of the target along the path.
	Width float64
	// Duration is the time for one lap of the track.
	Duration time.Duration
	// Hits counts how often this target has been shot.
	Hits int
}

// Target is the component type for target entities.
var Target = donburi.NewComponentType[TargetData]()

var targetQuery = donburi.NewQuery(filter.Contains(Target))

// spawnTargets creates opts.Targets followers on the track. Each draws its
// width, lap time and starting point from the game's random source in that
// order.
func (g *Game) spawnTargets(parent *orbitshot.Node) {
	o := g.opts
	start := g.path.StartPoint()
	for i := 0; i < o.Targets; i++ {
		width := g.intBetween(o.TargetWidth.Min, o.TargetWidth.Max)
		ms := g.intBetween(int(o.TargetDuration.Min.Milliseconds()), int(o.TargetDuration.Max.Milliseconds()))
		duration := time.Duration(ms) * time.Millisecond
		startAt := g.rng.Float64()

		n := orbitshot.NewSprite(fmt.Sprintf("target-%d", i), g.tex.tile)
		n.SetOrigin(0.5, 0.5)
		n.SetPosition(start.X, start.Y)
		n.SetAlpha(o.TargetAlpha)
		n.SetDisplaySize(float64(width), o.TargetThickness)
		parent.AddChild(n)

		f := g.scene.StartFollow(n, g.path, orbitshot.FollowConfig{
			Duration:       duration,
			Repeat:         orbitshot.RepeatForever,
			StartAt:        startAt,
			RotateToPath:   true,
			VerticalAdjust: true,
		})

		entry := g.world.Entry(g.world.Create(Target))
		*Target.Get(entry) = TargetData{
			Node:     n,
			Follower: f,
			Width:    float64(width),
			Duration: duration,
		}
	}
}

// intBetween returns a uniform integer in [lo, hi].
func (g *Game) intBetween(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

// EachTarget calls fn for every target entity in creation order.
func (g *Game) EachTarget(fn func(entry *donburi.Entry, t *TargetData)) {
	targetQuery.Each(g.world, func(entry *donburi.Entry) {
		fn(entry, Target.Get(entry))
	})
}

// NumTargets returns the number of target entities.
func (g *Game) NumTargets() int {
	return targetQuery.Count(g.world)
}
