package systems

import (
	"math"

	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/gamemath"
	"github.com/automoto/nightfall/systems/factory"
	"github.com/automoto/nightfall/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateZombies runs the seek/windup/stunned machine for every zombie, then
// keeps zombies out of the player and apart from each other.
func UpdateZombies(ecs *ecs.ECS) {
	player := GetPlayer(ecs)
	if player == nil {
		return
	}
	playerBody := components.Body.Get(player)
	level := GetLevel(ecs)
	clock := factory.Clock(ecs)
	dt := clock.Seconds()

	minDist := cfg.Player.CollisionRadius + cfg.Zombie.CollisionRadius
	attackRange := minDist + cfg.Zombie.AttackMargin
	minSpacing := cfg.Zombie.CollisionRadius * 2

	zombies := snapshot(ecs.World, tags.Zombie)
	for i, e := range zombies {
		if !e.Valid() {
			continue
		}
		zombie := components.Zombie.Get(e)
		state := components.State.Get(e)
		body := components.Body.Get(e)
		state.StateTimer += clock.Delta

		next := body.Position
		if state.Is(cfg.Stunned) {
			next.X += zombie.Knockback.X * dt
			next.Y += zombie.Knockback.Y * dt
			zombie.Knockback.X *= cfg.Zombie.KnockbackDecay
			zombie.Knockback.Y *= cfg.Zombie.KnockbackDecay

			zombie.StunTimer -= clock.Delta
			if zombie.StunTimer <= 0 {
				zombie.StunTimer = 0
				if zombie.ClearKnockback {
					zombie.Knockback.X, zombie.Knockback.Y = 0, 0
					zombie.ClearKnockback = false
				}
				state.Set(cfg.Seek)
			}
		} else {
			dx := playerBody.Position.X - body.Position.X
			_, _, dist := gamemath.Direction(body.Position.X, body.Position.Y, playerBody.Position.X, playerBody.Position.Y)

			if dist <= attackRange {
				if !state.Is(cfg.Windup) {
					state.Set(cfg.Windup)
					zombie.WindupElapsed = 0
				}
				zombie.WindupElapsed += clock.Delta
				if zombie.WindupElapsed >= cfg.Zombie.WindupDuration {
					zombie.WindupElapsed = 0
					state.Set(cfg.Seek)
					if components.Health.Get(player).Alive() {
						ApplyDamage(ecs, player, components.DamageEventData{
							Amount:     cfg.Zombie.Damage,
							Source:     components.SourceZombieClaw,
							AttackerID: components.Identity.Get(e).ID,
						})
					}
				}
			} else {
				if state.Is(cfg.Windup) {
					state.Set(cfg.Seek)
					zombie.WindupElapsed = 0
				}
				vx, vy := gamemath.Toward(body.Position.X, body.Position.Y,
					playerBody.Position.X, playerBody.Position.Y, cfg.Zombie.Speed)
				next.X += vx * dt
				next.Y += vy * dt
			}

			body.Facing = cfg.DirectionLeft
			if dx > 0 {
				body.Facing = cfg.DirectionRight
			}
		}

		// Never overlap the player.
		dxp := next.X - playerBody.Position.X
		dyp := next.Y - playerBody.Position.Y
		if d := math.Hypot(dxp, dyp); d > 0 && d < minDist {
			next.X = playerBody.Position.X + dxp/d*minDist
			next.Y = playerBody.Position.Y + dyp/d*minDist
		}

		for j, other := range zombies {
			if j == i || !other.Valid() {
				continue
			}
			op := components.Body.Get(other).Position
			dxo, dyo := next.X-op.X, next.Y-op.Y
			if d := math.Hypot(dxo, dyo); d > 0 && d < minSpacing {
				push := (minSpacing - d) * cfg.Zombie.SeparationPush
				next.X += dxo / d * push
				next.Y += dyo / d * push
			}
		}

		body.Position = next
		clampToLevel(level, body)
		body.Depth = body.FootY()
	}
}
