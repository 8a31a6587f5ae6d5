package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// NextLevelIndex returns the level a shift by delta leads to, and whether
// the shift is allowed. Shifts stay inside [0, count). They are refused
// while paused and during a transition, except for the forward shift that
// completes a reached exit.
func NextLevelIndex(ecs *ecs.ECS, delta, count int) (int, bool) {
	level := GetLevel(ecs)
	if level == nil {
		return 0, false
	}
	pause := GetPause(ecs)
	if pause.IsPaused {
		return level.Index, false
	}
	if pause.Transitioning && !(level.Exited && delta > 0) {
		return level.Index, false
	}

	next := level.Index + delta
	if next < 0 || next >= count || next == level.Index {
		return level.Index, false
	}
	return next, true
}
