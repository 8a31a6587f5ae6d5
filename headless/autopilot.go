// Package headless drives a simulation without a window: a scripted
// autopilot plays, a fixed-rate loop ticks and the outcome is written as
// YAML.
package headless

import (
	"math"

	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/sim"
)

const (
	engageRange = 250.0 // enemies closer than this ahead get shot at
	laneSlack   = 12.0  // vertical misalignment tolerated before steering
)

// Autopilot walks right and shoots whatever is ahead in its lane. It picks
// the gun while it has ammo, then the shotgun, then fists.
type Autopilot struct{}

// Decide returns the intent and actions for the next tick.
func (Autopilot) Decide(snap sim.Snapshot) (components.IntentData, []cfg.ActionID) {
	if snap.Exited {
		return components.IntentData{}, []cfg.ActionID{cfg.ActionLevelNext}
	}
	player, ok := snap.Player()
	if !ok || snap.Paused || snap.GameOver || player.State == cfg.Dead.String() {
		return components.IntentData{}, nil
	}

	intent := components.IntentData{Right: true}
	var actions []cfg.ActionID

	want := weaponFor(snap.HUD)
	if want.String() != snap.HUD.Weapon {
		actions = append(actions, selectAction(want))
	}

	target, ok := nearestAhead(snap, player)
	if !ok {
		return intent, actions
	}
	dy := target.Y - player.Y
	switch {
	case dy < -laneSlack:
		intent.Up = true
	case dy > laneSlack:
		intent.Down = true
	}

	dx := target.X - player.X
	reach := engageRange
	if want == cfg.Fists {
		reach = cfg.Weapons.PunchRange
		// Stand and punch instead of walking into it.
		if dx <= reach {
			intent.Right = false
		}
	}
	if dx <= reach && math.Abs(dy) <= laneSlack*2 {
		actions = append(actions, cfg.ActionFire)
	}
	return intent, actions
}

func weaponFor(hud sim.HUD) cfg.WeaponID {
	switch {
	case hud.GunAmmo > 0:
		return cfg.Gun
	case hud.ShotgunAmmo > 0:
		return cfg.Shotgun
	}
	return cfg.Fists
}

func selectAction(w cfg.WeaponID) cfg.ActionID {
	switch w {
	case cfg.Gun:
		return cfg.ActionSelectGun
	case cfg.Shotgun:
		return cfg.ActionSelectShotgun
	}
	return cfg.ActionSelectFists
}

// nearestAhead returns the closest zombie or werewolf to the right of the
// player.
func nearestAhead(snap sim.Snapshot, player sim.EntityView) (sim.EntityView, bool) {
	var best sim.EntityView
	found := false
	for _, v := range snap.Entities {
		if v.Kind != sim.KindZombie && v.Kind != sim.KindWerewolf {
			continue
		}
		if v.X < player.X {
			continue
		}
		if !found || v.X-player.X < best.X-player.X {
			best, found = v, true
		}
	}
	return best, found
}
