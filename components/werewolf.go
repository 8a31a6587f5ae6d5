package components

import (
	"time"

	"github.com/automoto/nightfall/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type WerewolfData struct {
	CrouchTimer time.Duration

	JumpStartX  float64
	JumpTargetX float64
	BaseY       float64
	JumpHitDone bool
	// Leap drives jump progress from 0 to 1 over the jump duration.
	Leap *gween.Tween

	BiteCooldown time.Duration
	JumpCooldown time.Duration

	RetreatDistance float64
}

var Werewolf = donburi.NewComponentType[WerewolfData]()

// Telegraphing reports whether a crouching werewolf is about to leap.
func (w *WerewolfData) Telegraphing(state config.StateID) bool {
	return state == config.Crouch && w.CrouchTimer <= config.Werewolf.TelegraphWindow
}
