package components

import (
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type ZombieData struct {
	// WindupElapsed counts up while the attack is telegraphed.
	WindupElapsed time.Duration
	// StunTimer is the time left in the stunned state.
	StunTimer time.Duration
	// Knockback velocity in px/s, decayed every stunned tick.
	Knockback math.Vec2
	// ClearKnockback zeroes Knockback when the stun ends (melee stuns).
	ClearKnockback bool
}

var Zombie = donburi.NewComponentType[ZombieData]()
