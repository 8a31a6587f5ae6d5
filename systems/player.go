package systems

import (
	"time"

	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/systems/factory"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdatePlayer advances the player's timers and phases, then moves the
// player when the current state allows it.
func UpdatePlayer(ecs *ecs.ECS) {
	e := GetPlayer(ecs)
	if e == nil {
		return
	}
	clock := factory.Clock(ecs)
	player := components.Player.Get(e)
	state := components.State.Get(e)

	state.StateTimer += clock.Delta
	player.AttackCooldown = max(player.AttackCooldown-clock.Delta, 0)
	updateVisual(components.Visual.Get(e), clock.Seconds())

	switch state.CurrentState {
	case cfg.ProneEntering:
		if tickPhase(player, clock.Delta) {
			state.Set(cfg.Prone)
		}
	case cfg.ProneExiting:
		if tickPhase(player, clock.Delta) {
			state.Set(cfg.Normal)
		}
	case cfg.Fallen:
		updateFall(e, clock.Delta)
	case cfg.Dead:
		updateDeath(ecs, e, clock.Delta)
	}

	physics := components.Physics.Get(e)
	if state.Is(cfg.Normal, cfg.Running) {
		movePlayer(ecs, e)
	} else {
		physics.Velocity = math.Vec2{}
		physics.Speed = 0
	}

	checkLevelExit(ecs, e)
}

// movePlayer applies the movement intent. A blocked move slides along the
// free axis, horizontal first.
func movePlayer(ecs *ecs.ECS, e *donburi.Entry) {
	clock := factory.Clock(ecs)
	level := GetLevel(ecs)
	player := components.Player.Get(e)
	state := components.State.Get(e)
	body := components.Body.Get(e)
	physics := components.Physics.Get(e)

	dx, dy := GetInput(ecs).Intent.Axis()
	if level != nil {
		foot := body.FootY()
		if dy < 0 && foot <= level.Top {
			dy = 0
		}
		if dy > 0 && foot >= level.Bottom {
			dy = 0
		}
	}

	speed := cfg.Player.Speed
	if pit := PitAt(ecs, body.Position.X, body.Position.Y, body.Width, body.Height); pit != nil {
		speed *= cfg.Hazard.SpeedMultiplier
		player.DirtTimer -= clock.Delta
		if player.DirtTimer <= 0 {
			spawnDirtParticle(ecs, components.Pit.Get(pit))
			player.DirtTimer = cfg.Particles.SpawnInterval
		}
	} else if OnDirtStream(ecs, body.Position.X, body.FootY()) {
		speed *= cfg.Hazard.SpeedMultiplier
	}

	if dx == 0 && dy == 0 {
		physics.Velocity = math.Vec2{}
		physics.Speed = 0
		state.Set(cfg.Normal)
		return
	}

	dt := clock.Seconds()
	vx, vy := dx*speed, dy*speed
	x, y := body.Position.X, body.Position.Y
	nx, ny := x+vx*dt, y+vy*dt

	switch {
	case BlockingObstacleAt(ecs, nx, ny, body.Width, body.Height) == nil:
		x, y = nx, ny
	case BlockingObstacleAt(ecs, nx, y, body.Width, body.Height) == nil:
		x = nx
	case BlockingObstacleAt(ecs, x, ny, body.Width, body.Height) == nil:
		y = ny
	}
	body.Position.X, body.Position.Y = x, y

	if dx < 0 {
		body.Facing = cfg.DirectionLeft
	} else if dx > 0 {
		body.Facing = cfg.DirectionRight
	}

	clampToLevel(level, body)
	physics.Velocity = math.Vec2{X: vx, Y: vy}
	physics.Speed = speed
	state.Set(cfg.Running)
}

// Vulnerable reports whether a leap can hit the player: not prone in any
// phase, not fallen and not dead.
func Vulnerable(e *donburi.Entry) bool {
	return !components.State.Get(e).Is(cfg.ProneEntering, cfg.Prone, cfg.ProneExiting, cfg.Fallen, cfg.Dead)
}

// FallPlayer knocks the player down. It is a no-op while already fallen or
// dead.
func FallPlayer(ecs *ecs.ECS, e *donburi.Entry) {
	state := components.State.Get(e)
	if state.Is(cfg.Fallen, cfg.Dead) {
		return
	}
	player := components.Player.Get(e)
	state.Set(cfg.Fallen)
	player.FallPhase = cfg.FallDropping
	player.PhaseTimer = cfg.Player.FallDropDuration
	tweenVisual(components.Visual.Get(e), cfg.Player.FallOffsetY, cfg.Player.FallDropDuration, ease.InSine)

	Emit(ecs, components.Event{Kind: components.EventPlayerFell, ID: components.Identity.Get(e).ID})
}

// KillPlayer starts the death sequence. Dead is terminal.
func KillPlayer(ecs *ecs.ECS, e *donburi.Entry) {
	state := components.State.Get(e)
	if state.Is(cfg.Dead) {
		return
	}
	player := components.Player.Get(e)
	state.Set(cfg.Dead)
	player.DeathPhase = cfg.DeathDying
	player.PhaseTimer = cfg.Player.DyingDuration
	components.Visual.Get(e).Tween = nil

	identity := components.Identity.Get(e)
	Emit(ecs, components.Event{Kind: components.EventPlayerDied, ID: identity.ID})
	balloon(ecs, identity, components.BalloonOhNo)
}

func updateFall(e *donburi.Entry, delta time.Duration) {
	player := components.Player.Get(e)
	if !tickPhase(player, delta) {
		return
	}
	visual := components.Visual.Get(e)
	getUp := cfg.Player.GetUpPhases

	switch player.FallPhase {
	case cfg.FallDropping:
		player.FallPhase = cfg.FallDown
		player.PhaseTimer = cfg.Player.FallenDuration - cfg.Player.FallDropDuration
	case cfg.FallDown:
		player.FallPhase = cfg.FallGetUp1
		player.PhaseTimer = getUp[0]
		tweenVisual(visual, cfg.Player.FallOffsetY/2, getUp[0], ease.OutSine)
	case cfg.FallGetUp1:
		player.FallPhase = cfg.FallGetUp2
		player.PhaseTimer = getUp[1]
		tweenVisual(visual, cfg.Player.FallOffsetY/6, getUp[1], ease.OutSine)
	case cfg.FallGetUp2:
		player.FallPhase = cfg.FallGetUp3
		player.PhaseTimer = getUp[2]
		tweenVisual(visual, 0, getUp[2], ease.OutSine)
	case cfg.FallGetUp3:
		visual.OffsetY, visual.Tween = 0, nil
		components.State.Get(e).Set(cfg.Normal)
	}
}

func updateDeath(ecs *ecs.ECS, e *donburi.Entry, delta time.Duration) {
	player := components.Player.Get(e)
	if player.DeathPhase == cfg.DeathOver || !tickPhase(player, delta) {
		return
	}

	switch player.DeathPhase {
	case cfg.DeathDying:
		player.DeathPhase = cfg.DeathCollapsed
		player.PhaseTimer = cfg.Player.CollapsedDuration
		components.Visual.Get(e).OffsetY = cfg.Player.FallOffsetY
	case cfg.DeathCollapsed:
		player.DeathPhase = cfg.DeathOver
		GetGameOver(ecs).IsOver = true
		Emit(ecs, components.Event{Kind: components.EventGameOver})
	}
}

// tickPhase counts the phase timer down and reports whether it ran out.
func tickPhase(player *components.PlayerData, delta time.Duration) bool {
	player.PhaseTimer -= delta
	if player.PhaseTimer > 0 {
		return false
	}
	player.PhaseTimer = 0
	return true
}

// tweenVisual eases the visual offset from its current value to target.
func tweenVisual(visual *components.VisualData, target float64, d time.Duration, fn ease.TweenFunc) {
	visual.Tween = gween.New(float32(visual.OffsetY), float32(target), float32(d.Seconds()), fn)
}

func updateVisual(visual *components.VisualData, dt float64) {
	if visual.Tween == nil {
		return
	}
	v, done := visual.Tween.Update(float32(dt))
	visual.OffsetY = float64(v)
	if done {
		visual.Tween = nil
	}
}

// checkLevelExit freezes the level once the player reaches its exit.
func checkLevelExit(ecs *ecs.ECS, e *donburi.Entry) {
	level := GetLevel(ecs)
	if level == nil || level.Exited || level.Source == nil || !level.Source.HasExit {
		return
	}
	if components.Body.Get(e).Position.X < level.Width-cfg.World.ExitMargin {
		return
	}
	level.Exited = true
	GetPause(ecs).Transitioning = true
	Emit(ecs, components.Event{Kind: components.EventLevelExit, Level: level.Index})
}
