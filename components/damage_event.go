package components

import (
	"github.com/google/uuid"
	"github.com/yohamta/donburi/features/math"
)

// DamageSource is what delivered a hit. It decides the side effects on a
// surviving target.
type DamageSource int

const (
	SourcePunch DamageSource = iota
	SourceBullet
	SourcePellet
	SourceZombieClaw
	SourceBite
	SourcePounce
)

// DamageEventData describes one hit handed to the damage resolver.
type DamageEventData struct {
	Amount     int
	Source     DamageSource
	Knockback  math.Vec2 // px/s, melee only
	AttackerID uuid.UUID
}

// Ranged reports whether the hit came from a projectile.
func (s DamageSource) Ranged() bool { return s == SourceBullet || s == SourcePellet }
