package factory

import (
	"github.com/automoto/nightfall/archetypes"
	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateProjectile spawns a bullet or pellet centered on (x, y).
func CreateProjectile(ecs *ecs.ECS, kind cfg.ProjectileKind, x, y float64, velocity math.Vec2, owner uuid.UUID) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	w, h := cfg.Weapons.BulletWidth, cfg.Weapons.BulletHeight
	damage := cfg.Weapons.Gun.Damage
	if kind == cfg.Pellet {
		w, h = cfg.Weapons.PelletWidth, cfg.Weapons.PelletHeight
		damage = cfg.Weapons.Shotgun.Damage
	}
	// Vertical shots are drawn rotated.
	if velocity.X == 0 && velocity.Y != 0 {
		w, h = h, w
	}

	facing := cfg.DirectionRight
	if velocity.X < 0 {
		facing = cfg.DirectionLeft
	}

	components.Identity.SetValue(p, components.IdentityData{ID: Clock(ecs).NewID()})
	components.Projectile.SetValue(p, components.ProjectileData{
		Kind:    kind,
		Damage:  damage,
		OwnerID: owner,
	})
	components.Body.SetValue(p, components.BodyData{
		Position: math.Vec2{X: x, Y: y},
		Width:    w,
		Height:   h,
		Facing:   facing,
		Depth:    y,
	})
	components.Physics.SetValue(p, components.PhysicsData{
		Velocity: velocity,
		Speed:    cfg.Weapons.ProjectileSpeed,
	})

	return p
}
