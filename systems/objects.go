package systems

import (
	"github.com/automoto/nightfall/components"
	"github.com/automoto/nightfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetPlayer returns the player entry, or nil when no level is loaded.
func GetPlayer(ecs *ecs.ECS) *donburi.Entry {
	e, ok := tags.Player.First(ecs.World)
	if !ok {
		return nil
	}
	return e
}

// GetLevel returns the active level, or nil when no level is loaded.
func GetLevel(ecs *ecs.ECS) *components.LevelData {
	e, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Level.Get(e)
}

// snapshot collects the entries of c so callers can remove entities while
// walking the result.
func snapshot[T any](world donburi.World, c *donburi.ComponentType[T]) []*donburi.Entry {
	var out []*donburi.Entry
	c.Each(world, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

func removeAll(ecs *ecs.ECS, entries []*donburi.Entry) {
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Valid() {
			ecs.World.Remove(entries[i].Entity())
		}
	}
}
