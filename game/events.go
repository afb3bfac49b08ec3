package game

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ShotEvent is published once per accepted shot.
type ShotEvent struct {
	// AngleDegrees is the beam direction, wrapped into [-180, 180).
	AngleDegrees float64
	// Hits is how many targets the shot took down.
	Hits int
	// Multiplier is the turret speed multiplier after thrust.
	Multiplier float64
}

// HitEvent is published for every target a shot takes down.
type HitEvent struct {
	Entity donburi.Entity
	// X, Y is the centre of the target's bounds when hit.
	X, Y float64
}

var (
	// ShotEventType carries ShotEvent.
	ShotEventType = events.NewEventType[ShotEvent]()
	// HitEventType carries HitEvent.
	HitEventType = events.NewEventType[HitEvent]()
)
