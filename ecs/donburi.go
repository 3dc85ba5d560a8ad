package ecs

import (
	"github.com/phanxgames/vitrine"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for vitrine interaction
// events. Subscribe to it in your ECS systems to receive pointer, hover and
// click events.
var InteractionEventType = events.NewEventType[vitrine.InteractionEvent]()

// InteractionData is the per-object interaction state the store keeps in the
// world.
type InteractionData struct {
	ObjectID string
	Hovered  bool
	Clicks   int
}

// Interaction is the component holding InteractionData. The store creates
// one entity with it for every object that has been hovered or clicked.
var Interaction = donburi.NewComponentType[InteractionData]()

// DonburiStore publishes interaction events into a Donburi world and mirrors
// per-object hover and click state into Interaction components.
type DonburiStore struct {
	world    donburi.World
	entities map[string]donburi.Entity
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) *DonburiStore {
	return &DonburiStore{
		world:    world,
		entities: make(map[string]donburi.Entity),
	}
}

// EmitEvent implements vitrine.EntityStore.
func (s *DonburiStore) EmitEvent(event vitrine.InteractionEvent) {
	if event.ObjectID != "" {
		s.record(event)
	}
	InteractionEventType.Publish(s.world, event)
}

func (s *DonburiStore) record(event vitrine.InteractionEvent) {
	entry := s.entry(event.ObjectID)
	data := Interaction.Get(entry)
	switch event.Type {
	case vitrine.EventHover:
		data.Hovered = event.Over
	case vitrine.EventClick:
		data.Clicks++
	}
}

func (s *DonburiStore) entry(id string) *donburi.Entry {
	e, ok := s.entities[id]
	if !ok {
		e = s.world.Create(Interaction)
		s.entities[id] = e
		Interaction.SetValue(s.world.Entry(e), InteractionData{ObjectID: id})
	}
	return s.world.Entry(e)
}

// Lookup returns the interaction state recorded for the object with the given
// ID. ok is false if the object has never been hovered or clicked.
func (s *DonburiStore) Lookup(id string) (data InteractionData, ok bool) {
	e, ok := s.entities[id]
	if !ok {
		return InteractionData{}, false
	}
	return *Interaction.Get(s.world.Entry(e)), true
}
