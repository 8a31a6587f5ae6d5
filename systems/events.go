package systems

import (
	"github.com/automoto/nightfall/components"
	"github.com/yohamta/donburi/ecs"
)

// Emit appends ev to the session event queue.
func Emit(ecs *ecs.ECS, ev components.Event) {
	q := components.Events.Get(components.Events.MustFirst(ecs.World))
	q.Pending = append(q.Pending, ev)
}

// DrainEvents returns the queued events and empties the queue.
func DrainEvents(ecs *ecs.ECS) []components.Event {
	q := components.Events.Get(components.Events.MustFirst(ecs.World))
	out := q.Pending
	q.Pending = nil
	return out
}

func balloon(ecs *ecs.ECS, owner *components.IdentityData, text string) {
	Emit(ecs, components.Event{Kind: components.EventBalloon, ID: owner.ID, Text: text})
}
