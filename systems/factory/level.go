package factory

import (
	"github.com/automoto/nightfall/archetypes"
	"github.com/automoto/nightfall/components"
	"github.com/automoto/nightfall/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds a populated level into the world: the level singleton,
// the broadphase space, all static hazards, the enemies and the player.
func CreateLevel(ecs *ecs.ECS, lvl *leveldata.Level) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Index:  lvl.Index,
		Name:   lvl.Name,
		Width:  lvl.Width,
		Top:    lvl.BandTop,
		Bottom: lvl.BandBottom,
		Source: lvl,
	})

	_, space := CreateSpace(ecs, lvl)

	for _, r := range lvl.Obstacles {
		CreateObstacle(ecs, space, r)
	}
	for _, r := range lvl.Pits {
		CreatePit(ecs, space, r)
	}
	for _, s := range lvl.Dirt {
		CreateDirt(ecs, space, s)
	}
	for _, s := range lvl.ZombieSpawns {
		CreateZombie(ecs, s)
	}
	for _, s := range lvl.WerewolfSpawns {
		CreateWerewolf(ecs, s)
	}
	CreatePlayer(ecs, lvl.PlayerSpawn)

	return level
}
