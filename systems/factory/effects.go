package factory

import (
	"time"

	"github.com/automoto/nightfall/archetypes"
	"github.com/automoto/nightfall/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateParticle spawns a dirt particle. Particles are drawn above actors.
func CreateParticle(ecs *ecs.ECS, x, y float64, velocity math.Vec2, life time.Duration) *donburi.Entry {
	p := archetypes.Particle.Spawn(ecs)
	components.Particle.SetValue(p, components.ParticleData{Life: life})
	components.Body.SetValue(p, components.BodyData{
		Position: math.Vec2{X: x, Y: y},
		Width:    6,
		Height:   6,
		Depth:    1000,
	})
	components.Physics.SetValue(p, components.PhysicsData{Velocity: velocity})
	return p
}
