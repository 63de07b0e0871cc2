package ecs

import (
	"github.com/phanxgames/coverflow"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CarouselEventType is the Donburi event type for carousel events.
var CarouselEventType = events.NewEventType[coverflow.Event]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventSink backed by a Donburi world. Events are
// queued on CarouselEventType until the world processes them.
func NewDonburiStore(world donburi.World) coverflow.EventSink {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event coverflow.Event) {
	CarouselEventType.Publish(s.world, event)
}
