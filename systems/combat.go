package systems

import (
	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/gamemath"
	"github.com/automoto/nightfall/systems/factory"
	"github.com/automoto/nightfall/tags"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// ApplyDamage resolves one hit on target. Health is clamped at zero; a
// target that reaches zero dies, otherwise the source decides its reaction.
// Hits on dead or removed targets are ignored.
func ApplyDamage(ecs *ecs.ECS, target *donburi.Entry, dmg components.DamageEventData) {
	if target == nil || !target.Valid() {
		return
	}
	hp := components.Health.Get(target)
	if !hp.Alive() {
		return
	}
	hp.Current = max(hp.Current-dmg.Amount, 0)

	id := components.Identity.Get(target).ID
	if dmg.AttackerID != uuid.Nil {
		Emit(ecs, components.Event{Kind: components.EventAttackLanded, ID: dmg.AttackerID, TargetID: id})
	}
	Emit(ecs, components.Event{
		Kind:      components.EventEntityDamaged,
		ID:        id,
		Amount:    dmg.Amount,
		NewHealth: hp.Current,
	})

	switch {
	case target.HasComponent(tags.Player):
		damagePlayer(ecs, target, dmg)
	case target.HasComponent(tags.Zombie):
		damageZombie(ecs, target, dmg)
	case target.HasComponent(tags.Werewolf):
		damageWerewolf(ecs, target, dmg)
	}
}

func damagePlayer(ecs *ecs.ECS, e *donburi.Entry, dmg components.DamageEventData) {
	if !components.Health.Get(e).Alive() {
		KillPlayer(ecs, e)
		return
	}
	if dmg.Source == components.SourcePounce {
		FallPlayer(ecs, e)
		return
	}
	balloon(ecs, components.Identity.Get(e), components.BalloonOuch)
}

func damageZombie(ecs *ecs.ECS, e *donburi.Entry, dmg components.DamageEventData) {
	if !components.Health.Get(e).Alive() {
		killEnemy(ecs, e)
		return
	}

	zombie := components.Zombie.Get(e)
	state := components.State.Get(e)
	state.Set(cfg.Stunned)
	state.StateTimer = 0
	zombie.WindupElapsed = 0

	if dmg.Source.Ranged() {
		zombie.StunTimer = cfg.Zombie.RangedStun
		zombie.ClearKnockback = false
		balloon(ecs, components.Identity.Get(e), components.BalloonHuh)
		return
	}
	zombie.StunTimer = cfg.Zombie.MeleeStun
	zombie.Knockback = dmg.Knockback
	zombie.ClearKnockback = true
}

func damageWerewolf(ecs *ecs.ECS, e *donburi.Entry, dmg components.DamageEventData) {
	if !components.Health.Get(e).Alive() {
		killEnemy(ecs, e)
		return
	}
	if dmg.Source != components.SourcePellet {
		return
	}
	werewolf := components.Werewolf.Get(e)
	startRetreat(e, cfg.Werewolf.PelletRetreatSpacings*cfg.Werewolf.Spacing)
	werewolf.JumpCooldown = factory.RollDuration(factory.Clock(ecs),
		cfg.Werewolf.PelletJumpCooldownBase, cfg.Werewolf.PelletJumpCooldownSpread)
}

func killEnemy(ecs *ecs.ECS, e *donburi.Entry) {
	Emit(ecs, components.Event{Kind: components.EventEntityDied, ID: components.Identity.Get(e).ID})
	ecs.World.Remove(e.Entity())
}

// knockbackFrom returns the melee knockback pushing target away from the
// attacker. Vertical push is attenuated.
func knockbackFrom(attacker, target *components.BodyData) math.Vec2 {
	ux, uy, _ := gamemath.Direction(attacker.Position.X, attacker.Position.Y, target.Position.X, target.Position.Y)
	speed := cfg.Weapons.KnockbackSpeed
	return math.Vec2{
		X: ux * speed,
		Y: uy * speed * cfg.Weapons.KnockbackVertical,
	}
}
