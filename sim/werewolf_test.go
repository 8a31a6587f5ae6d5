package sim_test

import (
	"testing"
	"time"

	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJumpHitKnocksPlayerDown(t *testing.T) {
	roll := &stubRoll{v: 0}
	s := newSim(t, roll, arena())
	w := placeWerewolf(s, 435, 451)

	s.Tick(frame)
	require.True(t, components.State.Get(w).Is(cfg.Crouch))

	ww := components.Werewolf.Get(w)
	body := components.Body.Get(w)
	playerX := components.Body.Get(playerEntry(s)).Position.X

	sawTelegraph, sawJump, passedPlayer := false, false, false
	tickUntil(t, s, 200, func() bool {
		state := components.State.Get(w)
		if ww.Telegraphing(state.CurrentState) {
			sawTelegraph = true
		}
		if state.Is(cfg.Jump) {
			if !sawJump {
				sawJump = true
				assert.GreaterOrEqual(t, ww.JumpCooldown, cfg.Werewolf.JumpCooldownBase)
			}
			// The target lies past the player, so the facing must not flip
			// once the werewolf crosses over.
			assert.Equal(t, cfg.DirectionLeft, body.Facing)
			if body.Position.X < playerX {
				passedPlayer = true
			}
		}
		return state.Is(cfg.Retreat)
	})
	assert.True(t, sawTelegraph)
	assert.True(t, sawJump)
	assert.True(t, passedPlayer)
	assert.Equal(t, 6, playerHealth(s))
	assert.True(t, components.State.Get(playerEntry(s)).Is(cfg.Fallen))
	assert.Len(t, ofKind(s.DrainEvents(), components.EventPlayerFell), 1)

	// The leap lands on the far side of the player, then retreats.
	assert.Greater(t, ww.JumpCooldown, time.Duration(0))
	assert.Equal(t, 400-cfg.Werewolf.Spacing, ww.JumpTargetX)
	assert.Equal(t, cfg.Werewolf.RetreatSpacings*cfg.Werewolf.Spacing, ww.RetreatDistance)
	assert.Equal(t, cfg.Werewolf.RetreatBiteCooldown, ww.BiteCooldown)
}

func TestJumpHitKillsWeakPlayer(t *testing.T) {
	s := newSim(t, &stubRoll{v: 0}, arena())
	components.Health.Get(playerEntry(s)).Current = 4
	placeWerewolf(s, 435, 451)

	tickUntil(t, s, 200, func() bool { return playerHealth(s) < 4 })
	assert.Zero(t, playerHealth(s))
	assert.True(t, components.State.Get(playerEntry(s)).Is(cfg.Dead))

	events := s.DrainEvents()
	assert.Len(t, ofKind(events, components.EventPlayerDied), 1)
	assert.Empty(t, ofKind(events, components.EventPlayerFell))
}

func TestProneDodgesTheLeap(t *testing.T) {
	s := newSim(t, &stubRoll{v: 0}, arena())
	s.Queue(cfg.ActionProneDown)
	w := placeWerewolf(s, 435, 451)

	tickUntil(t, s, 200, func() bool { return components.State.Get(w).Is(cfg.Retreat) })
	assert.Equal(t, cfg.Player.MaxHealth, playerHealth(s))
	assert.Empty(t, ofKind(s.DrainEvents(), components.EventPlayerFell))
}

func TestBiteThenRetreat(t *testing.T) {
	s := newSim(t, &stubRoll{v: 0.99}, arena())
	w := placeWerewolf(s, 420, 451)
	components.Werewolf.Get(w).BiteCooldown = 0

	s.Tick(frame)
	assert.Equal(t, 8, playerHealth(s))
	state := components.State.Get(w)
	assert.True(t, state.Is(cfg.Retreat))
	assert.Equal(t, cfg.Bite, state.PreviousState)

	tickUntil(t, s, 100, func() bool { return state.Is(cfg.Approach) })
	d := components.Body.Get(w).Position.X - components.Body.Get(playerEntry(s)).Position.X
	assert.GreaterOrEqual(t, abs(d)+2, cfg.Werewolf.RetreatSpacings*cfg.Werewolf.Spacing)
}

func TestPelletForcesRetreatButBulletDoesNot(t *testing.T) {
	tests := []struct {
		name    string
		weapon  cfg.ActionID
		retreat bool
	}{
		{"pellet", cfg.ActionSelectShotgun, true},
		{"bullet", cfg.ActionSelectGun, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSim(t, &stubRoll{v: 0.99}, arena())
			w := placeWerewolf(s, 500, 451)
			// Keep it crouched while the shot travels and alive through a
			// full volley.
			components.State.Get(w).Set(cfg.Crouch)
			components.Werewolf.Get(w).CrouchTimer = 10000 * frame
			components.Health.Get(w).Current = 20
			components.Health.Get(w).Max = 20

			s.Queue(tt.weapon)
			s.Queue(cfg.ActionFire)
			tickUntil(t, s, 100, func() bool {
				return components.Health.Get(w).Current < 20
			})

			assert.Equal(t, tt.retreat, components.State.Get(w).Is(cfg.Retreat))
			if tt.retreat {
				ww := components.Werewolf.Get(w)
				assert.Equal(t, cfg.Werewolf.PelletRetreatSpacings*cfg.Werewolf.Spacing, ww.RetreatDistance)
				assert.GreaterOrEqual(t, ww.JumpCooldown, cfg.Werewolf.PelletJumpCooldownBase)
			}
		})
	}
}

func TestHealthSequenceToDeath(t *testing.T) {
	roll := &stubRoll{v: 0.99}
	s := newSim(t, roll, arena(withZombie(440, 452)))
	e := playerEntry(s)

	// Zombie claw: 10 -> 9.
	tickUntil(t, s, 200, func() bool { return playerHealth(s) < 10 })
	require.Equal(t, 9, playerHealth(s))
	s.ECS().World.Remove(firstZombie(t, s).Entity())

	// Bite: 9 -> 7.
	w := placeWerewolf(s, 420, 451)
	components.Werewolf.Get(w).BiteCooldown = 0
	s.Tick(frame)
	require.Equal(t, 7, playerHealth(s))
	s.ECS().World.Remove(w.Entity())

	// Leap: 7 -> 3 and fallen.
	roll.v = 0
	w = placeWerewolf(s, 435, 451)
	tickUntil(t, s, 200, func() bool { return playerHealth(s) < 7 })
	require.Equal(t, 3, playerHealth(s))
	require.True(t, components.State.Get(e).Is(cfg.Fallen))
	s.ECS().World.Remove(w.Entity())

	tickUntil(t, s, 300, func() bool { return components.State.Get(e).Is(cfg.Normal) })

	// Second leap kills.
	placeWerewolf(s, 435, 451)
	tickUntil(t, s, 200, func() bool { return playerHealth(s) < 3 })
	assert.Zero(t, playerHealth(s))
	assert.True(t, components.State.Get(e).Is(cfg.Dead))

	events := s.DrainEvents()
	assert.Len(t, ofKind(events, components.EventPlayerDied), 1)
	ohNo := ofKind(events, components.EventBalloon)
	require.NotEmpty(t, ohNo)
	assert.Equal(t, components.BalloonOhNo, ohNo[len(ohNo)-1].Text)

	var health []int
	for _, ev := range ofKind(events, components.EventEntityDamaged) {
		if ev.ID == components.Identity.Get(e).ID {
			health = append(health, ev.NewHealth)
		}
	}
	assert.Equal(t, []int{9, 7, 3, 0}, health)

	// Dead is terminal: no pause, no attacks, then game over.
	assert.False(t, s.TogglePause())
	s.Queue(cfg.ActionFire)
	tickUntil(t, s, 200, func() bool { return s.Snapshot().GameOver })
	gameOver := ofKind(s.DrainEvents(), components.EventGameOver)
	assert.Len(t, gameOver, 1)
	assert.True(t, components.State.Get(e).Is(cfg.Dead))
}
