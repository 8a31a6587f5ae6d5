package systems

import (
	"github.com/automoto/nightfall/components"
	"github.com/automoto/nightfall/gamemath"
	"github.com/automoto/nightfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDepths sets the draw order of every actor to its foot line.
// Projectiles sort by their center; particles keep their fixed depth.
func UpdateDepths(ecs *ecs.ECS) {
	byFoot := func(e *donburi.Entry) {
		body := components.Body.Get(e)
		body.Depth = body.FootY()
	}
	tags.Player.Each(ecs.World, byFoot)
	tags.Zombie.Each(ecs.World, byFoot)
	tags.Werewolf.Each(ecs.World, byFoot)
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		body.Depth = body.Position.Y
	})
}

// clampToLevel keeps the foot line inside the walkable band and the body
// inside the level.
func clampToLevel(level *components.LevelData, body *components.BodyData) {
	if level == nil {
		return
	}
	foot := gamemath.Clamp(body.FootY(), level.Top, level.Bottom)
	body.Position.Y = foot - body.Height/2
	body.Position.X = gamemath.Clamp(body.Position.X, body.Width/2, level.Width-body.Width/2)
}
