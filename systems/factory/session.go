package factory

import (
	"io"

	"github.com/automoto/nightfall/archetypes"
	"github.com/automoto/nightfall/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the singleton holding the clock, input, event queue
// and the pause and game-over flags.
func CreateSession(ecs *ecs.ECS, rng components.Roller, ids io.Reader) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Clock.SetValue(session, components.ClockData{
		Rand: rng,
		IDs:  ids,
	})
	return session
}

// Clock returns the session clock.
func Clock(ecs *ecs.ECS) *components.ClockData {
	return components.Clock.Get(components.Clock.MustFirst(ecs.World))
}
