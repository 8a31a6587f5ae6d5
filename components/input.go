package components

import (
	cfg "github.com/automoto/nightfall/config"
	"github.com/yohamta/donburi"
)

// IntentData is the movement intent for the current tick. When opposite
// directions are held, left and up win.
type IntentData struct {
	Left, Right, Up, Down bool
}

// InputData stores the intent and the discrete actions queued since the
// last tick. Hosts fill it; the action system drains Queued.
type InputData struct {
	Intent IntentData
	Queued []cfg.ActionID
}

var Input = donburi.NewComponentType[InputData]()

// Axis returns the intent as -1, 0 or 1 per axis.
func (i IntentData) Axis() (dx, dy float64) {
	switch {
	case i.Left:
		dx = -1
	case i.Right:
		dx = 1
	}
	switch {
	case i.Up:
		dy = -1
	case i.Down:
		dy = 1
	}
	return dx, dy
}
