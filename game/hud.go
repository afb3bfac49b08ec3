package game

import (
	"fmt"
	"math"

	"github.com/phanxgames/orbitshot"

	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

const (
	hudMargin    = 24
	hudScale     = 2
	hudPulse     = 1.3
	hudPulseTime = 0.25
	burstCount   = 24
	soundShot    = "shot"
	soundHit     = "hit"
)

// HUD shows the score line and plays the feedback for shots and hits.
type HUD struct {
	text   *orbitshot.Node
	burst  *orbitshot.Node
	tweens *orbitshot.TweenManager
	sounds *orbitshot.SoundBank
	pulse  *orbitshot.TweenGroup

	shots int
	hits  int
	speed float64
}

func newHUD(parent *orbitshot.Node, tweens *orbitshot.TweenManager) *HUD {
	h := &HUD{tweens: tweens, speed: 1}

	h.text = orbitshot.NewText("hud", "", nil)
	h.text.SetPosition(hudMargin, hudMargin)
	h.text.SetScale(hudScale, hudScale)
	h.text.ZIndex = 10
	parent.AddChild(h.text)

	h.burst = orbitshot.NewParticleEmitter("hit-burst", orbitshot.EmitterConfig{
		MaxParticles: 256,
		Lifetime:     orbitshot.Range{Min: 0.3, Max: 0.6},
		Speed:        orbitshot.Range{Min: 120, Max: 320},
		Angle:        orbitshot.Range{Min: 0, Max: 2 * math.Pi},
		StartScale:   orbitshot.Range{Min: 1.5, Max: 2.5},
		EndScale:     orbitshot.Range{Min: 0.2, Max: 0.4},
		StartAlpha:   orbitshot.Range{Min: 1, Max: 1},
		EndAlpha:     orbitshot.Range{Min: 0, Max: 0},
		Gravity:      orbitshot.Vec2{Y: 400},
		StartColor:   orbitshot.RGB(0xffff66),
		EndColor:     orbitshot.RGB(0xff5020),
		Size:         4,
	})
	h.burst.ZIndex = 5
	parent.AddChild(h.burst)

	h.refresh()
	return h
}

// subscribe wires the HUD to the game's events.
func (h *HUD) subscribe(world donburi.World) {
	ShotEventType.Subscribe(world, h.onShot)
	HitEventType.Subscribe(world, h.onHit)
}

func (h *HUD) onShot(_ donburi.World, e ShotEvent) {
	h.shots++
	h.speed = e.Multiplier
	h.sounds.Play(soundShot)
	h.refresh()
}

func (h *HUD) onHit(_ donburi.World, e HitEvent) {
	h.hits++
	h.burst.Emitter.Burst(burstCount, e.X, e.Y)
	h.sounds.Play(soundHit)
	if h.pulse != nil {
		h.pulse.Done = true
	}
	h.text.SetScale(hudScale*hudPulse, hudScale*hudPulse)
	h.pulse = h.tweens.AddGroup(orbitshot.TweenScale(h.text, hudScale, hudScale, hudPulseTime, ease.OutQuad))
	h.refresh()
}

// setSpeed updates the displayed multiplier.
func (h *HUD) setSpeed(m float64) {
	if m == h.speed {
		return
	}
	h.speed = m
	h.refresh()
}

func (h *HUD) refresh() {
	h.text.SetText(fmt.Sprintf("SHOTS %d   HITS %d   SPEED x%.2f", h.shots, h.hits, h.speed))
}

// Text returns the score line node.
func (h *HUD) Text() *orbitshot.Node { return h.text }

// Burst returns the hit particle emitter node.
func (h *HUD) Burst() *orbitshot.Node { return h.burst }
