package systems

import (
	"time"

	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/systems/factory"
	"github.com/automoto/nightfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateParticles moves dirt particles under gravity and removes them when
// their life runs out.
func UpdateParticles(ecs *ecs.ECS) {
	clock := factory.Clock(ecs)
	dt := clock.Seconds()

	var dead []*donburi.Entry
	tags.Particle.Each(ecs.World, func(e *donburi.Entry) {
		particle := components.Particle.Get(e)
		body := components.Body.Get(e)
		physics := components.Physics.Get(e)

		body.Position.X += physics.Velocity.X * dt
		body.Position.Y += physics.Velocity.Y * dt
		physics.Velocity.Y += cfg.Particles.Gravity * dt

		particle.Life -= clock.Delta
		if particle.Life <= 0 {
			dead = append(dead, e)
		}
	})
	removeAll(ecs, dead)
}

// spawnDirtParticle throws a particle up from a random point in the pit.
func spawnDirtParticle(ecs *ecs.ECS, pit *components.PitData) {
	clock := factory.Clock(ecs)
	cx, cy := pit.X+pit.W/2, pit.Y+pit.H/2

	x := cx + (clock.Roll()-0.5)*pit.W*0.8
	y := cy + (clock.Roll()-0.5)*pit.H*0.5
	velocity := math.Vec2{
		Y: -cfg.Particles.RiseBase - clock.Roll()*cfg.Particles.RiseSpread,
	}
	velocity.X = (clock.Roll() - 0.5) * cfg.Particles.DriftSpread
	life := cfg.Particles.LifeBase + time.Duration(clock.Roll()*float64(cfg.Particles.LifeSpread))

	factory.CreateParticle(ecs, x, y, velocity, life)
}
