package archetypes

import (
	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Identity,
		components.Player,
		components.Body,
		components.Physics,
		components.Health,
		components.State,
		components.Visual,
	)
	Zombie = newArchetype(
		tags.Zombie,
		components.Identity,
		components.Zombie,
		components.Body,
		components.Health,
		components.State,
	)
	Werewolf = newArchetype(
		tags.Werewolf,
		components.Identity,
		components.Werewolf,
		components.Body,
		components.Health,
		components.State,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Identity,
		components.Projectile,
		components.Body,
		components.Physics,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
		components.Body,
		components.Physics,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Obstacle,
		components.Object,
	)
	Pit = newArchetype(
		tags.Pit,
		components.Pit,
		components.Object,
	)
	Dirt = newArchetype(
		tags.Dirt,
		components.Dirt,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Session = newArchetype(
		components.Clock,
		components.Input,
		components.Events,
		components.Pause,
		components.GameOver,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
