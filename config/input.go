package config

import "github.com/yohamta/donburi/ecs"

// Default is the only render layer.
const (
	Default ecs.LayerID = iota
)

// ActionID represents a discrete player action delivered to the simulation.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionFire
	ActionProneDown
	ActionProneUp
	ActionSelectFists
	ActionSelectGun
	ActionSelectShotgun
	ActionPause
	ActionLevelPrev
	ActionLevelNext
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:          "none",
	ActionFire:          "fire",
	ActionProneDown:     "prone-down",
	ActionProneUp:       "prone-up",
	ActionSelectFists:   "select-fists",
	ActionSelectGun:     "select-gun",
	ActionSelectShotgun: "select-shotgun",
	ActionPause:         "pause",
	ActionLevelPrev:     "level-prev",
	ActionLevelNext:     "level-next",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}
