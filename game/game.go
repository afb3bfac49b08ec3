// Package game is the orbit-and-shoot scene: a spinning turret at screen
// centre fires a beam on every press, and targets circle a rounded track
// around it.
package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/phanxgames/orbitshot"
	"github.com/phanxgames/orbitshot/ecs"

	"github.com/yohamta/donburi"
)

// Game owns the scene contents and the rules that connect them.
type Game struct {
	scene *orbitshot.Scene
	opts  Options
	world donburi.World
	rng   *rand.Rand
	tex   textures

	path     *orbitshot.Path
	track    *orbitshot.Node
	turret   *Turret
	fireline *Fireline
	hud      *HUD
}

// New validates opts and builds the game into scene. It takes over the
// scene's update func and entity store.
func New(scene *orbitshot.Scene, opts Options) (*Game, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	tex := newTextures(opts)
	if opts.AssetDir != "" {
		var err error
		if tex, err = loadTextures(opts.AssetDir); err != nil {
			return nil, err
		}
	}

	g := &Game{
		scene: scene,
		opts:  opts,
		world: donburi.NewWorld(),
		rng:   rand.New(rand.NewPCG(seed, seed>>32|1)),
		tex:   tex,
		path:  BuildTrack(opts),
	}
	scene.ClearColor = opts.Background
	root := scene.Root()

	g.track = newTrackNode(g.path, opts)
	root.AddChild(g.track)

	g.spawnTargets(root)

	g.turret = newTurret(orbitshot.NewSprite("turret", g.tex.turret), opts)
	root.AddChild(g.turret.Node())
	scene.Tweens().Add(g.turret.Tween())

	g.fireline = newFireline(orbitshot.NewSprite("fireline", g.tex.fireline), opts)
	root.AddChild(g.fireline.Node())

	g.hud = newHUD(root, scene.Tweens())
	g.hud.subscribe(g.world)

	scene.SetEntityStore(ecs.NewDonburiStore(g.world))
	ecs.InteractionEventType.Subscribe(g.world, g.onInteraction)
	scene.SetUpdateFunc(g.update)
	return g, nil
}

// SetSoundBank registers the shot and hit sounds with b and plays them from
// then on. A nil bank silences the game.
func (g *Game) SetSoundBank(b *orbitshot.SoundBank) {
	if b != nil {
		b.Register(soundShot, orbitshot.ShotSound(b.SampleRate()))
		b.Register(soundHit, orbitshot.HitSound(b.SampleRate()))
	}
	g.hud.sounds = b
}

func (g *Game) onInteraction(_ donburi.World, e orbitshot.InteractionEvent) {
	if e.Type == orbitshot.EventPointerDown {
		g.Fire()
	}
}

// update runs at the end of every scene frame. Events are drained in a fixed
// order so hits raised by this frame's shots are handled this frame.
func (g *Game) update() error {
	ecs.InteractionEventType.ProcessEvents(g.world)
	ShotEventType.ProcessEvents(g.world)
	HitEventType.ProcessEvents(g.world)
	g.hud.setSpeed(g.turret.SpeedMultiplier())
	return nil
}

// Fire shoots the beam from the turret's current heading. It does nothing and
// returns false while the previous beam is still showing. Otherwise it speeds
// up the turret, takes down every visible target the beam touches, and
// returns true with the number of targets hit.
func (g *Game) Fire() (fired bool, hits int) {
	if g.fireline.Visible() {
		return false, 0
	}
	angle := g.turret.AngleDegrees() + 270
	g.fireline.Show(angle)
	g.turret.ApplyThrust()

	clock := g.scene.Clock()
	clock.AddEvent(g.opts.FirelineDuration, g.fireline.Hide)

	shot := g.fireline.Segment()
	g.EachTarget(func(entry *donburi.Entry, t *TargetData) {
		n := t.Node
		if !n.Visible {
			return
		}
		bounds := n.Bounds()
		if !orbitshot.LineIntersectsRect(shot, bounds) {
			return
		}
		n.Visible = false
		t.Hits++
		hits++
		c := bounds.Center()
		HitEventType.Publish(g.world, HitEvent{Entity: entry.Entity(), X: c.X, Y: c.Y})
		clock.AddEvent(g.opts.RespawnDelay, func() { n.Visible = true })
	})

	ShotEventType.Publish(g.world, ShotEvent{
		AngleDegrees: g.fireline.AngleDegrees(),
		Hits:         hits,
		Multiplier:   g.turret.SpeedMultiplier(),
	})
	return true, hits
}

// Options returns the options the game was built with.
func (g *Game) Options() Options { return g.opts }

// World returns the ECS world holding the targets.
func (g *Game) World() donburi.World { return g.world }

// Path returns the track.
func (g *Game) Path() *orbitshot.Path { return g.path }

// Turret returns the turret.
func (g *Game) Turret() *Turret { return g.turret }

// Fireline returns the beam.
func (g *Game) Fireline() *Fireline { return g.fireline }

// HUD returns the score display.
func (g *Game) HUD() *HUD { return g.hud }

// Score returns the number of accepted shots and total hits so far.
func (g *Game) Score() (shots, hits int) { return g.hud.shots, g.hud.hits }

// String summarizes the score.
func (g *Game) String() string {
	shots, hits := g.Score()
	return fmt.Sprintf("shots=%d hits=%d speed=x%.2f", shots, hits, g.turret.SpeedMultiplier())
}
