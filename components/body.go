package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BodyData is the axis-aligned footprint of a dynamic entity. Position is
// the center of the box.
type BodyData struct {
	Position math.Vec2
	Width    float64
	Height   float64
	Facing   float64 // config.DirectionLeft or config.DirectionRight
	Depth    float64 // draw order, equal to FootY after each tick
}

var Body = donburi.NewComponentType[BodyData]()

// FootY is the canonical depth key: the bottom edge of the box.
func (b *BodyData) FootY() float64 { return b.Position.Y + b.Height/2 }

func (b *BodyData) Left() float64   { return b.Position.X - b.Width/2 }
func (b *BodyData) Right() float64  { return b.Position.X + b.Width/2 }
func (b *BodyData) Top() float64    { return b.Position.Y - b.Height/2 }
func (b *BodyData) Bottom() float64 { return b.Position.Y + b.Height/2 }

// FacingRight reports whether the body faces towards increasing x.
func (b *BodyData) FacingRight() bool { return b.Facing >= 0 }
