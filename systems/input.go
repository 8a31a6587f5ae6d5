package systems

import (
	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/yohamta/donburi/ecs"
)

// GetInput returns the session input.
func GetInput(ecs *ecs.ECS) *components.InputData {
	return components.Input.Get(components.Input.MustFirst(ecs.World))
}

// SetIntent replaces the movement intent used by the next tick.
func SetIntent(ecs *ecs.ECS, intent components.IntentData) {
	GetInput(ecs).Intent = intent
}

// QueueAction stores a discrete action for the next tick.
func QueueAction(ecs *ecs.ECS, action cfg.ActionID) {
	input := GetInput(ecs)
	input.Queued = append(input.Queued, action)
}

// ClearQueuedActions drops actions issued while the world was frozen.
func ClearQueuedActions(ecs *ecs.ECS) {
	GetInput(ecs).Queued = nil
}
