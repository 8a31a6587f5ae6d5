package systems

import (
	"math"
	"testing"

	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/leveldata"
	"github.com/automoto/nightfall/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestKnockbackDecaysWhileStunned(t *testing.T) {
	e := newTestECS(t, testLevel(), 0)
	z := factory.CreateZombie(e, leveldata.Spawn{X: 800, Y: 450})
	ApplyDamage(e, z, components.DamageEventData{
		Amount:    1,
		Source:    components.SourcePunch,
		Knockback: dmath.Vec2{X: 150},
	})

	UpdateZombies(e)
	zombie := components.Zombie.Get(z)
	assert.InDelta(t, 800+150*frame.Seconds(), components.Body.Get(z).Position.X, 1e-9)
	assert.InDelta(t, 150*cfg.Zombie.KnockbackDecay, zombie.Knockback.X, 1e-9)

	for components.State.Get(z).Is(cfg.Stunned) {
		UpdateZombies(e)
	}
	assert.Zero(t, zombie.Knockback.X)
	assert.False(t, zombie.ClearKnockback)
	assert.True(t, components.State.Get(z).Is(cfg.Seek))
}

func TestRangedStunKeepsKnockback(t *testing.T) {
	e := newTestECS(t, testLevel(), 0)
	z := factory.CreateZombie(e, leveldata.Spawn{X: 800, Y: 450})
	zombie := components.Zombie.Get(z)
	zombie.Knockback = dmath.Vec2{X: 40}
	ApplyDamage(e, z, components.DamageEventData{Amount: 1, Source: components.SourceBullet})

	for components.State.Get(z).Is(cfg.Stunned) {
		UpdateZombies(e)
	}
	assert.NotZero(t, zombie.Knockback.X)
}

func TestZombiesKeepApart(t *testing.T) {
	e := newTestECS(t, testLevel(), 0)
	a := factory.CreateZombie(e, leveldata.Spawn{X: 1000, Y: 450})
	b := factory.CreateZombie(e, leveldata.Spawn{X: 1010, Y: 450})

	for i := 0; i < 30; i++ {
		UpdateZombies(e)
	}
	pa, pb := components.Body.Get(a).Position, components.Body.Get(b).Position
	assert.Greater(t, math.Hypot(pa.X-pb.X, pa.Y-pb.Y), 20.0)
}

func TestZombiesNeverOverlapThePlayer(t *testing.T) {
	e := newTestECS(t, testLevel(), 0)
	z := factory.CreateZombie(e, leveldata.Spawn{X: 110, Y: 450})

	UpdateZombies(e)
	p := components.Body.Get(GetPlayer(e)).Position
	q := components.Body.Get(z).Position
	minDist := cfg.Player.CollisionRadius + cfg.Zombie.CollisionRadius
	assert.GreaterOrEqual(t, math.Hypot(q.X-p.X, q.Y-p.Y), minDist-1e-9)
	assert.True(t, components.State.Get(z).Is(cfg.Windup))
}

func TestWindupCancelledWhenPlayerLeaves(t *testing.T) {
	e := newTestECS(t, testLevel(), 0)
	z := factory.CreateZombie(e, leveldata.Spawn{X: 130, Y: 450})
	UpdateZombies(e)
	require.True(t, components.State.Get(z).Is(cfg.Windup))

	components.Body.Get(GetPlayer(e)).Position.X = 400
	UpdateZombies(e)
	assert.True(t, components.State.Get(z).Is(cfg.Seek))
	assert.Zero(t, components.Zombie.Get(z).WindupElapsed)
	assert.True(t, components.Body.Get(z).FacingRight())
}
