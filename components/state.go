package components

import (
	"time"

	"github.com/automoto/nightfall/config"
	"github.com/yohamta/donburi"
)

// StateData is the single active state of an actor. StateTimer counts the
// time spent in CurrentState.
type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    time.Duration
}

var State = donburi.NewComponentType[StateData]()

// Set switches to s and restarts the state timer. Setting the current state
// again is a no-op.
func (s *StateData) Set(next config.StateID) {
	if s.CurrentState == next {
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = next
	s.StateTimer = 0
}

// Is reports whether any of states is active.
func (s *StateData) Is(states ...config.StateID) bool {
	for _, st := range states {
		if s.CurrentState == st {
			return true
		}
	}
	return false
}
