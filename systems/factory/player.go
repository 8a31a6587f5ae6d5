package factory

import (
	"github.com/automoto/nightfall/archetypes"
	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreatePlayer(ecs *ecs.ECS, spawn leveldata.Spawn) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Identity.SetValue(player, components.IdentityData{ID: Clock(ecs).NewID()})
	components.Player.SetValue(player, components.PlayerData{
		Weapon:      cfg.Fists,
		GunAmmo:     cfg.Weapons.Gun.StartAmmo,
		ShotgunAmmo: cfg.Weapons.Shotgun.StartAmmo,
	})
	components.Body.SetValue(player, components.BodyData{
		Position: math.Vec2{X: spawn.X, Y: spawn.Y},
		Width:    cfg.Player.Width,
		Height:   cfg.Player.Height,
		Facing:   cfg.DirectionRight,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.MaxHealth,
		Max:     cfg.Player.MaxHealth,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Normal,
		PreviousState: cfg.StateNone,
	})

	body := components.Body.Get(player)
	body.Depth = body.FootY()

	return player
}
