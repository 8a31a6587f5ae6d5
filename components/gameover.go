package components

import "github.com/yohamta/donburi"

// GameOverData is set once the player's death sequence has finished.
type GameOverData struct {
	IsOver bool
}

// GameOver is the component type for the end-of-run state
var GameOver = donburi.NewComponentType[GameOverData]()
