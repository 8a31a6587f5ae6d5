package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ObstacleData is an impassable footprint. X, Y is the top-left corner.
type ObstacleData struct {
	X, Y, W, H float64
}

var Obstacle = donburi.NewComponentType[ObstacleData]()

func (o *ObstacleData) FootY() float64 { return o.Y + o.H }

// PitData is a slowing rectangle. X, Y is the top-left corner.
type PitData struct {
	X, Y, W, H float64
}

var Pit = donburi.NewComponentType[PitData]()

// DirtData is one segment of a dirt stream. Only collidable segments are
// added to the Space; the rest are drawn.
type DirtData struct {
	Center     math.Vec2
	Radius     float64
	Collidable bool
}

var Dirt = donburi.NewComponentType[DirtData]()
