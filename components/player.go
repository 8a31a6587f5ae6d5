package components

import (
	"time"

	"github.com/automoto/nightfall/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Weapon      config.WeaponID
	GunAmmo     int
	ShotgunAmmo int

	// AttackCooldown is the time left before the next attack may be issued.
	AttackCooldown time.Duration

	// PhaseTimer is the time left in the current prone, fall or death phase.
	PhaseTimer time.Duration
	FallPhase  config.FallPhase
	DeathPhase config.DeathPhase

	// DirtTimer counts down to the next dirt particle while over a pit.
	DirtTimer time.Duration
}

var Player = donburi.NewComponentType[PlayerData]()

// Ammo returns the rounds left for w. Fists report -1 (unlimited).
func (p *PlayerData) Ammo(w config.WeaponID) int {
	switch w {
	case config.Gun:
		return p.GunAmmo
	case config.Shotgun:
		return p.ShotgunAmmo
	default:
		return -1
	}
}

// SpendAmmo removes one round for w, never going below zero.
func (p *PlayerData) SpendAmmo(w config.WeaponID) {
	switch w {
	case config.Gun:
		p.GunAmmo = max(p.GunAmmo-1, 0)
	case config.Shotgun:
		p.ShotgunAmmo = max(p.ShotgunAmmo-1, 0)
	}
}
