package systems

import (
	"math"

	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/gamemath"
	"github.com/automoto/nightfall/systems/factory"
	"github.com/automoto/nightfall/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWerewolves runs the approach/crouch/jump/bite/retreat machine for
// every werewolf.
func UpdateWerewolves(ecs *ecs.ECS) {
	player := GetPlayer(ecs)
	if player == nil {
		return
	}
	playerBody := components.Body.Get(player)
	level := GetLevel(ecs)
	clock := factory.Clock(ecs)
	dt := clock.Seconds()
	speed := cfg.Werewolf.Speed

	for _, e := range snapshot(ecs.World, tags.Werewolf) {
		if !e.Valid() {
			continue
		}
		werewolf := components.Werewolf.Get(e)
		state := components.State.Get(e)
		body := components.Body.Get(e)
		state.StateTimer += clock.Delta

		werewolf.BiteCooldown = max(werewolf.BiteCooldown-clock.Delta, 0)
		werewolf.JumpCooldown = max(werewolf.JumpCooldown-clock.Delta, 0)

		x, y := body.Position.X, body.Position.Y
		px, py := playerBody.Position.X, playerBody.Position.Y
		_, _, dist := gamemath.Direction(x, y, px, py)
		vx, vy := gamemath.Toward(x, y, px, py, speed)

		switch state.CurrentState {
		case cfg.Approach:
			switch {
			case dist <= cfg.Werewolf.BiteRange && werewolf.BiteCooldown <= 0:
				bite(ecs, e, player)
			case dist <= cfg.Werewolf.Spacing && werewolf.JumpCooldown <= 0 && clock.Roll() < cfg.Werewolf.CrouchChance:
				state.Set(cfg.Crouch)
				werewolf.CrouchTimer = cfg.Werewolf.CrouchDuration
			default:
				body.Position.X += vx * dt
				body.Position.Y += vy * dt
			}

		case cfg.Crouch:
			werewolf.CrouchTimer -= clock.Delta
			if werewolf.CrouchTimer <= 0 {
				werewolf.CrouchTimer = 0
				werewolf.JumpCooldown = factory.RollDuration(clock,
					cfg.Werewolf.JumpCooldownBase, cfg.Werewolf.JumpCooldownSpread)
				startJump(e, playerBody.Position.X)
			}

		case cfg.Jump:
			updateJump(ecs, e, player, dt)

		case cfg.Retreat:
			if dist >= werewolf.RetreatDistance {
				state.Set(cfg.Approach)
			} else {
				body.Position.X -= vx * dt
				body.Position.Y -= vy * dt
			}
		}

		faceX := playerBody.Position.X
		if state.Is(cfg.Jump) {
			faceX = werewolf.JumpTargetX
		}
		if faceX > body.Position.X {
			body.Facing = cfg.DirectionRight
		} else {
			body.Facing = cfg.DirectionLeft
		}

		clampToLevel(level, body)
		body.Depth = body.FootY()
	}
}

// bite deals bite damage and sends the werewolf into retreat. A dead player
// cannot be bitten.
func bite(ecs *ecs.ECS, e, player *donburi.Entry) {
	if !components.Health.Get(player).Alive() {
		return
	}
	werewolf := components.Werewolf.Get(e)
	components.State.Get(e).Set(cfg.Bite)
	werewolf.BiteCooldown = cfg.Werewolf.BiteCooldown

	ApplyDamage(ecs, player, components.DamageEventData{
		Amount:     cfg.Werewolf.BiteDamage,
		Source:     components.SourceBite,
		AttackerID: components.Identity.Get(e).ID,
	})
	startRetreat(e, cfg.Werewolf.RetreatSpacings*cfg.Werewolf.Spacing)
}

// startJump launches a leap that lands on the far side of the player.
func startJump(e *donburi.Entry, playerX float64) {
	werewolf := components.Werewolf.Get(e)
	body := components.Body.Get(e)
	components.State.Get(e).Set(cfg.Jump)

	werewolf.JumpHitDone = false
	werewolf.JumpStartX = body.Position.X
	werewolf.BaseY = body.Position.Y
	if body.Position.X < playerX {
		werewolf.JumpTargetX = playerX + cfg.Werewolf.Spacing
	} else {
		werewolf.JumpTargetX = playerX - cfg.Werewolf.Spacing
	}
	werewolf.Leap = gween.New(0, 1, float32(cfg.Werewolf.JumpDuration.Seconds()), ease.Linear)
}

func updateJump(ecs *ecs.ECS, e, player *donburi.Entry, dt float64) {
	werewolf := components.Werewolf.Get(e)
	body := components.Body.Get(e)

	p, done := 1.0, true
	if werewolf.Leap != nil {
		v, finished := werewolf.Leap.Update(float32(dt))
		p, done = float64(v), finished
	}
	if done {
		p = 1
	}

	body.Position.X = gamemath.Lerp(werewolf.JumpStartX, werewolf.JumpTargetX, p)
	body.Position.Y = werewolf.BaseY - gamemath.Arc(p, cfg.Werewolf.JumpArcHeight)

	if !werewolf.JumpHitDone && p >= cfg.Werewolf.JumpHitAt {
		werewolf.JumpHitDone = true
		playerBody := components.Body.Get(player)
		if math.Abs(body.Position.X-playerBody.Position.X) <= cfg.Werewolf.Spacing && Vulnerable(player) {
			ApplyDamage(ecs, player, components.DamageEventData{
				Amount:     cfg.Werewolf.JumpDamage,
				Source:     components.SourcePounce,
				AttackerID: components.Identity.Get(e).ID,
			})
		}
	}

	if done {
		body.Position.Y = werewolf.BaseY
		startRetreat(e, cfg.Werewolf.RetreatSpacings*cfg.Werewolf.Spacing)
	}
}

// startRetreat backs the werewolf off until it is distance away from the
// player. Any crouch or leap in progress is abandoned.
func startRetreat(e *donburi.Entry, distance float64) {
	werewolf := components.Werewolf.Get(e)
	components.State.Get(e).Set(cfg.Retreat)

	werewolf.RetreatDistance = distance
	werewolf.BiteCooldown = cfg.Werewolf.RetreatBiteCooldown
	werewolf.CrouchTimer = 0
	werewolf.JumpHitDone = false
	werewolf.Leap = nil
}
