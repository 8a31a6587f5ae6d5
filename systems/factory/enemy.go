package factory

import (
	"time"

	"github.com/automoto/nightfall/archetypes"
	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateZombie(ecs *ecs.ECS, spawn leveldata.Spawn) *donburi.Entry {
	zombie := archetypes.Zombie.Spawn(ecs)

	components.Identity.SetValue(zombie, components.IdentityData{ID: Clock(ecs).NewID()})
	components.Body.SetValue(zombie, actorBody(spawn, cfg.Zombie.Width, cfg.Zombie.Height))
	components.Health.SetValue(zombie, components.HealthData{
		Current: cfg.Zombie.MaxHealth,
		Max:     cfg.Zombie.MaxHealth,
	})
	components.State.SetValue(zombie, components.StateData{
		CurrentState:  cfg.Seek,
		PreviousState: cfg.StateNone,
	})

	return zombie
}

func CreateWerewolf(ecs *ecs.ECS, spawn leveldata.Spawn) *donburi.Entry {
	werewolf := archetypes.Werewolf.Spawn(ecs)
	clock := Clock(ecs)

	components.Identity.SetValue(werewolf, components.IdentityData{ID: clock.NewID()})
	components.Body.SetValue(werewolf, actorBody(spawn, cfg.Werewolf.Width, cfg.Werewolf.Height))
	components.Health.SetValue(werewolf, components.HealthData{
		Current: cfg.Werewolf.MaxHealth,
		Max:     cfg.Werewolf.MaxHealth,
	})
	components.State.SetValue(werewolf, components.StateData{
		CurrentState:  cfg.Approach,
		PreviousState: cfg.StateNone,
	})
	cooldown := RollDuration(clock, cfg.Werewolf.InitialJumpCooldownBase, cfg.Werewolf.InitialJumpCooldownSpread)
	components.Werewolf.SetValue(werewolf, components.WerewolfData{
		JumpStartX:   spawn.X,
		JumpTargetX:  spawn.X,
		BaseY:        spawn.Y,
		JumpCooldown: cooldown,
	})

	return werewolf
}

// RollDuration returns base + roll·spread.
func RollDuration(clock *components.ClockData, base, spread time.Duration) time.Duration {
	return base + time.Duration(clock.Roll()*float64(spread))
}

func actorBody(spawn leveldata.Spawn, w, h float64) components.BodyData {
	facing := cfg.DirectionLeft
	if spawn.FacingRight {
		facing = cfg.DirectionRight
	}
	body := components.BodyData{
		Position: math.Vec2{X: spawn.X, Y: spawn.Y},
		Width:    w,
		Height:   h,
		Facing:   facing,
	}
	body.Depth = body.FootY()
	return body
}
