package systems

import (
	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/gamemath"
	"github.com/automoto/nightfall/systems/factory"
	"github.com/automoto/nightfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves bullets and pellets and removes those that left
// the level bounds.
func UpdateProjectiles(ecs *ecs.ECS) {
	dt := factory.Clock(ecs).Seconds()
	level := GetLevel(ecs)

	var expired []*donburi.Entry
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		physics := components.Physics.Get(e)
		body.Position.X += physics.Velocity.X * dt
		body.Position.Y += physics.Velocity.Y * dt
		if outOfBounds(level, body) {
			expired = append(expired, e)
		}
	})
	removeAll(ecs, expired)
}

func outOfBounds(level *components.LevelData, body *components.BodyData) bool {
	margin := cfg.Weapons.BoundsMargin
	width := cfg.World.LevelWidth
	if level != nil {
		width = level.Width
	}
	x, y := body.Position.X, body.Position.Y
	return x > width+margin || x < -margin || y < -margin || y > float64(cfg.C.Height)+margin
}

// UpdateProjectileHits tests every live projectile against zombies, then
// werewolves. The first target found consumes the projectile.
func UpdateProjectileHits(ecs *ecs.ECS) {
	projectiles := snapshot(ecs.World, tags.Projectile)
	zombies := snapshot(ecs.World, tags.Zombie)
	werewolves := snapshot(ecs.World, tags.Werewolf)

	for i := len(projectiles) - 1; i >= 0; i-- {
		p := projectiles[i]
		if !p.Valid() {
			continue
		}
		data := components.Projectile.Get(p)
		if data.Spent {
			continue
		}

		body := components.Body.Get(p)
		target := firstHit(body, zombies)
		if target == nil {
			target = firstHit(body, werewolves)
		}
		if target == nil {
			continue
		}

		data.Spent = true
		hit := components.DamageEventData{
			Amount:     data.Damage,
			Source:     components.SourceBullet,
			AttackerID: data.OwnerID,
		}
		if data.Kind == cfg.Pellet {
			hit.Source = components.SourcePellet
		}
		ecs.World.Remove(p.Entity())
		ApplyDamage(ecs, target, hit)
	}
}

// firstHit walks targets backward and returns the first whose box overlaps
// the projectile horizontally and whose vertical span contains its center.
func firstHit(projectile *components.BodyData, targets []*donburi.Entry) *donburi.Entry {
	for j := len(targets) - 1; j >= 0; j-- {
		t := targets[j]
		if !t.Valid() {
			continue
		}
		body := components.Body.Get(t)
		if !gamemath.SpanOverlap(projectile.Left(), projectile.Right(), body.Left(), body.Right()) {
			continue
		}
		y := projectile.Position.Y
		if y > body.Top() && y < body.Bottom() {
			return t
		}
	}
	return nil
}
