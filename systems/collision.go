package systems

import (
	"math"

	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/gamemath"
	"github.com/automoto/nightfall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BlockingObstacleAt returns the obstacle blocking a w×h footprint centered
// on (x, y), or nil. An obstacle blocks when its span strictly overlaps the
// footprint and the two foot lines are within the depth tolerance.
func BlockingObstacleAt(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	footY := y + h/2
	left, right := x-w/2, x+w/2
	for _, e := range probe(ecs, left, footY, w, 1, tags.ResolvObstacle) {
		o := components.Obstacle.Get(e)
		if !gamemath.SpanOverlap(left, right, o.X, o.X+o.W) {
			continue
		}
		if math.Abs(footY-o.FootY()) < cfg.Hazard.DepthTolerance {
			return e
		}
	}
	return nil
}

// PitAt returns the pit under a w×h footprint centered on (x, y), or nil.
// The foot line must lie inside the pit, allowing a small grace below it.
func PitAt(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	footY := y + h/2
	left, right := x-w/2, x+w/2
	for _, e := range probe(ecs, left, footY, w, 1, tags.ResolvPit) {
		p := components.Pit.Get(e)
		if !gamemath.SpanOverlap(left, right, p.X, p.X+p.W) {
			continue
		}
		if footY > p.Y && footY < p.Y+p.H+cfg.Hazard.PitBottomGrace {
			return e
		}
	}
	return nil
}

// OnDirtStream reports whether the foot point (x, footY) touches a
// collidable dirt stream segment.
func OnDirtStream(ecs *ecs.ECS, x, footY float64) bool {
	for _, e := range probe(ecs, x, footY, 1, 1, tags.ResolvDirt) {
		d := components.Dirt.Get(e)
		if math.Hypot(x-d.Center.X, footY-d.Center.Y) < d.Radius+cfg.Hazard.DirtFootRadius {
			return true
		}
	}
	return false
}

// OnHazard reports whether body stands on a pit or a dirt stream. Hazards
// never stack.
func OnHazard(ecs *ecs.ECS, body *components.BodyData) bool {
	if PitAt(ecs, body.Position.X, body.Position.Y, body.Width, body.Height) != nil {
		return true
	}
	return OnDirtStream(ecs, body.Position.X, body.FootY())
}

// HazardMultiplier is the speed factor for body this tick.
func HazardMultiplier(ecs *ecs.ECS, body *components.BodyData) float64 {
	if OnHazard(ecs, body) {
		return cfg.Hazard.SpeedMultiplier
	}
	return 1
}

// probe returns the static geometry entries sharing a broadphase cell with
// the given box. Callers apply the exact test.
func probe(ecs *ecs.ECS, x, y, w, h float64, tag string) []*donburi.Entry {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry)

	tempObj := resolv.NewObject(x, y, w, h, tags.ResolvProbe)
	space.Add(tempObj)
	defer space.Remove(tempObj)

	check := tempObj.Check(0, 0, tag)
	if check == nil {
		return nil
	}

	var out []*donburi.Entry
	for _, obj := range check.ObjectsByTags(tag) {
		if e, ok := obj.Data.(*donburi.Entry); ok && e.Valid() {
			out = append(out, e)
		}
	}
	return out
}
