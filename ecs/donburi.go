package ecs

import (
	"github.com/phanxgames/orbitshot"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// InteractionEventType is the Donburi event type for orbitshot pointer events.
// Subscribe to this in your ECS systems to receive presses and releases.
var InteractionEventType = events.NewEventType[orbitshot.InteractionEvent]()

// PointerState is the latest pointer seen by a store. Mouse and touches
// share it.
type PointerState struct {
	X, Y    float64
	Down    bool
	Presses int
}

// Pointer is the component carried by the store's pointer entity.
var Pointer = donburi.NewComponentType[PointerState]()

var pointerQuery = donburi.NewQuery(filter.Contains(Pointer))

type donburiStore struct {
	world   donburi.World
	pointer *donburi.Entry
}

// NewDonburiStore creates an EntityStore backed by a Donburi world. It adds
// one entity holding PointerState, updated before each event is published.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) orbitshot.EntityStore {
	entry := world.Entry(world.Create(Pointer))
	return &donburiStore{world: world, pointer: entry}
}

func (s *donburiStore) EmitEvent(event orbitshot.InteractionEvent) {
	p := Pointer.Get(s.pointer)
	p.X, p.Y = event.GlobalX, event.GlobalY
	switch event.Type {
	case orbitshot.EventPointerDown:
		p.Down = true
		p.Presses++
	case orbitshot.EventPointerUp:
		p.Down = false
	}
	InteractionEventType.Publish(s.world, event)
}

// PointerOf returns the pointer state kept in world, or nil if no store was
// created for it.
func PointerOf(world donburi.World) *PointerState {
	var p *PointerState
	pointerQuery.Each(world, func(entry *donburi.Entry) {
		if p == nil {
			p = Pointer.Get(entry)
		}
	})
	return p
}
