package factory

import (
	"github.com/automoto/nightfall/archetypes"
	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/leveldata"
	"github.com/automoto/nightfall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateObstacle adds an impassable footprint. Its broadphase object covers
// the depth band around the foot line rather than the drawn box.
func CreateObstacle(ecs *ecs.ECS, space *resolv.Space, r leveldata.Rect) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(ecs)
	data := components.ObstacleData{X: r.X, Y: r.Y, W: r.W, H: r.H}
	components.Obstacle.SetValue(obstacle, data)

	tol := cfg.Hazard.DepthTolerance
	obj := resolv.NewObject(r.X, data.FootY()-tol, r.W, tol*2, tags.ResolvObstacle)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, tol*2))
	obj.Data = obstacle
	components.Object.SetValue(obstacle, components.ObjectData{Object: obj})
	space.Add(obj)

	return obstacle
}

// CreatePit adds a slowing rectangle, padded by the bottom grace.
func CreatePit(ecs *ecs.ECS, space *resolv.Space, r leveldata.Rect) *donburi.Entry {
	pit := archetypes.Pit.Spawn(ecs)
	components.Pit.SetValue(pit, components.PitData{X: r.X, Y: r.Y, W: r.W, H: r.H})

	h := r.H + cfg.Hazard.PitBottomGrace
	obj := resolv.NewObject(r.X, r.Y, r.W, h, tags.ResolvPit)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, h))
	obj.Data = pit
	components.Object.SetValue(pit, components.ObjectData{Object: obj})
	space.Add(obj)

	return pit
}

// CreateDirt adds a dirt stream segment. Collidable segments also get a
// broadphase box covering the foot tolerance around the circle.
func CreateDirt(ecs *ecs.ECS, space *resolv.Space, s leveldata.Segment) *donburi.Entry {
	dirt := archetypes.Dirt.Spawn(ecs)
	components.Dirt.SetValue(dirt, components.DirtData{
		Center:     math.Vec2{X: s.X, Y: s.Y},
		Radius:     s.Radius,
		Collidable: s.Collidable,
	})

	if s.Collidable {
		reach := s.Radius + cfg.Hazard.DirtFootRadius
		obj := resolv.NewObject(s.X-reach, s.Y-reach, reach*2, reach*2, tags.ResolvDirt)
		obj.SetShape(resolv.NewRectangle(0, 0, reach*2, reach*2))
		obj.Data = dirt
		donburi.Add(dirt, components.Object, &components.ObjectData{Object: obj})
		space.Add(obj)
	}

	return dirt
}
