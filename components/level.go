package components

import (
	"github.com/automoto/nightfall/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Index int
	Name  string
	Width float64
	// Top and Bottom bound the foot Y of every actor.
	Top, Bottom float64
	// Exited is set when the player reaches the exit; the tick is frozen
	// until the host changes level.
	Exited bool
	Source *leveldata.Level
}

var Level = donburi.NewComponentType[LevelData]()
