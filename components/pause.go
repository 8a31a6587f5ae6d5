package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state of the session
type PauseData struct {
	IsPaused      bool
	Transitioning bool // a level change is in progress
}

var Pause = donburi.NewComponentType[PauseData]()
