package systems

import (
	"math"

	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/systems/factory"
	"github.com/automoto/nightfall/tags"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateActions drains the discrete actions queued since the last tick.
func UpdateActions(ecs *ecs.ECS) {
	input := GetInput(ecs)
	queued := input.Queued
	input.Queued = nil

	for _, action := range queued {
		switch action {
		case cfg.ActionFire:
			Fire(ecs)
		case cfg.ActionProneDown:
			StartProne(ecs)
		case cfg.ActionProneUp:
			StopProne(ecs)
		case cfg.ActionSelectFists:
			SelectWeapon(ecs, cfg.Fists)
		case cfg.ActionSelectGun:
			SelectWeapon(ecs, cfg.Gun)
		case cfg.ActionSelectShotgun:
			SelectWeapon(ecs, cfg.Shotgun)
		}
	}
}

// Fire attacks with the current weapon. It is a silent no-op while the
// attack cooldown runs, while fallen or dead, and during prone transitions.
func Fire(ecs *ecs.ECS) {
	e := GetPlayer(ecs)
	if e == nil || !GameplayActive(ecs) {
		return
	}
	player := components.Player.Get(e)
	state := components.State.Get(e)
	if player.AttackCooldown > 0 || state.Is(cfg.Fallen, cfg.Dead, cfg.ProneEntering, cfg.ProneExiting) {
		return
	}
	prone := state.Is(cfg.Prone)

	if player.Weapon == cfg.Fists {
		if prone {
			return
		}
		player.AttackCooldown = cfg.Player.PunchCooldown
		punch(ecs, e)
		if OnHazard(ecs, components.Body.Get(e)) && factory.Clock(ecs).Roll() < cfg.Hazard.PunchFallOdds {
			FallPlayer(ecs, e)
		}
		return
	}

	if player.Ammo(player.Weapon) <= 0 {
		Emit(ecs, components.Event{Kind: components.EventOutOfAmmo, Weapon: player.Weapon})
		balloon(ecs, components.Identity.Get(e), components.BalloonClick)
		return
	}
	player.SpendAmmo(player.Weapon)
	player.AttackCooldown = cfg.Player.RangedCooldown
	shoot(ecs, e, prone)

	if player.Weapon == cfg.Shotgun && !prone && OnHazard(ecs, components.Body.Get(e)) &&
		factory.Clock(ecs).Roll() < cfg.Hazard.ShotgunFallOdds {
		FallPlayer(ecs, e)
	}
}

// shoot spawns the projectiles of the current weapon. Standing shots leave
// from the leading edge of the body; prone shots go straight up from its
// top edge.
func shoot(ecs *ecs.ECS, e *donburi.Entry, prone bool) {
	player := components.Player.Get(e)
	body := components.Body.Get(e)
	owner := components.Identity.Get(e).ID
	weapon := player.Weapon.Weapon()

	kind := cfg.Bullet
	if player.Weapon == cfg.Shotgun {
		kind = cfg.Pellet
	}

	x, y := body.Position.X, body.Position.Y
	velocity := dmath.Vec2{X: body.Facing * cfg.Weapons.ProjectileSpeed}
	if prone {
		y = body.Top()
		velocity = dmath.Vec2{Y: -cfg.Weapons.ProjectileSpeed}
	} else {
		x += body.Facing * body.Width / 2
	}

	if weapon.Projectiles <= 1 {
		factory.CreateProjectile(ecs, kind, x, y, velocity, owner)
		return
	}

	// Pellets fan out perpendicular to travel.
	for i := 0; i < weapon.Projectiles; i++ {
		offset := float64(i-weapon.Projectiles/2) * weapon.Spread
		if prone {
			offset = float64(i-weapon.Projectiles/2) * weapon.ProneSpread
			factory.CreateProjectile(ecs, kind, x+offset, y, velocity, owner)
			continue
		}
		factory.CreateProjectile(ecs, kind, x, y+offset, velocity, owner)
	}
}

// punch hits every zombie inside the melee probe in front of the player.
func punch(ecs *ecs.ECS, e *donburi.Entry) {
	body := components.Body.Get(e)
	attackerID := components.Identity.Get(e).ID
	ax := body.Position.X + body.Facing*body.Width/2
	ay := body.Position.Y
	reach := cfg.Weapons.PunchRange / 2

	zombies := snapshot(ecs.World, tags.Zombie)
	for i := len(zombies) - 1; i >= 0; i-- {
		z := zombies[i]
		if !z.Valid() {
			continue
		}
		zb := components.Body.Get(z)
		if !(ax+reach > zb.Left() && ax-reach < zb.Right()) {
			continue
		}
		if !(ay > zb.Top() && ay < zb.Bottom()) {
			continue
		}
		if math.Abs(body.FootY()-zb.FootY()) >= cfg.Weapons.PunchDepthTolerance {
			continue
		}
		ApplyDamage(ecs, z, components.DamageEventData{
			Amount:     cfg.Weapons.Fists.Damage,
			Source:     components.SourcePunch,
			Knockback:  knockbackFrom(body, zb),
			AttackerID: attackerID,
		})
	}
}

// StartProne drops the player to the ground. Only a standing player can go
// prone.
func StartProne(ecs *ecs.ECS) {
	e := GetPlayer(ecs)
	if e == nil || !GameplayActive(ecs) {
		return
	}
	state := components.State.Get(e)
	if !state.Is(cfg.Normal, cfg.Running) {
		return
	}
	state.Set(cfg.ProneEntering)
	components.Player.Get(e).PhaseTimer = cfg.Player.ProneEnterDuration
	tweenVisual(components.Visual.Get(e), cfg.Player.ProneOffsetY, cfg.Player.ProneEnterDuration, ease.OutSine)
}

// StopProne starts getting up from prone.
func StopProne(ecs *ecs.ECS) {
	e := GetPlayer(ecs)
	if e == nil || !GameplayActive(ecs) {
		return
	}
	state := components.State.Get(e)
	if !state.Is(cfg.ProneEntering, cfg.Prone) {
		return
	}
	state.Set(cfg.ProneExiting)
	components.Player.Get(e).PhaseTimer = cfg.Player.ProneExitDuration
	tweenVisual(components.Visual.Get(e), 0, cfg.Player.ProneExitDuration, ease.InSine)
}

// SelectWeapon switches the current weapon. Switching to an empty weapon is
// allowed; firing it reports out of ammo.
func SelectWeapon(ecs *ecs.ECS, w cfg.WeaponID) {
	e := GetPlayer(ecs)
	if e == nil || components.State.Get(e).Is(cfg.Dead) {
		return
	}
	player := components.Player.Get(e)
	if player.Weapon == w {
		return
	}
	player.Weapon = w
	Emit(ecs, components.Event{Kind: components.EventWeaponChanged, Weapon: w})
}
