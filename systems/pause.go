package systems

import (
	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/yohamta/donburi/ecs"
)

// GetPause returns the session pause state.
func GetPause(ecs *ecs.ECS) *components.PauseData {
	return components.Pause.Get(components.Pause.MustFirst(ecs.World))
}

// GetGameOver returns the session game-over flag.
func GetGameOver(ecs *ecs.ECS) *components.GameOverData {
	return components.GameOver.Get(components.GameOver.MustFirst(ecs.World))
}

// GameplayActive reports whether the world advances this tick. A pause,
// a level transition or a reached exit freezes it.
func GameplayActive(ecs *ecs.ECS) bool {
	pause := GetPause(ecs)
	if pause.IsPaused || pause.Transitioning {
		return false
	}
	if level := GetLevel(ecs); level != nil && level.Exited {
		return false
	}
	return true
}

// WithGameplayChecks wraps a system to skip execution while gameplay is
// frozen.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(ecs *ecs.ECS) {
		if !GameplayActive(ecs) {
			return
		}
		system(ecs)
	}
}

// TogglePause flips the pause flag. It is refused during a level transition
// and once the player is dead.
func TogglePause(ecs *ecs.ECS) bool {
	pause := GetPause(ecs)
	if pause.Transitioning || playerDead(ecs) {
		return false
	}
	pause.IsPaused = !pause.IsPaused
	return true
}

func playerDead(ecs *ecs.ECS) bool {
	e := GetPlayer(ecs)
	if e == nil {
		return false
	}
	return components.State.Get(e).Is(cfg.Dead)
}
