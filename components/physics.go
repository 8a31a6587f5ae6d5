package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PhysicsData holds the velocity applied on the last tick, in px/s.
// Speed is the scalar speed the mover was allowed this tick (after hazard
// penalties), zero when standing still.
type PhysicsData struct {
	Velocity math.Vec2
	Speed    float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
