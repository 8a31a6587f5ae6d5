package render

import (
	"testing"

	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/sim"
	"github.com/stretchr/testify/assert"
)

func TestBandColor(t *testing.T) {
	tests := []struct {
		fraction float64
		want     any
	}{
		{1, cfg.UI.HealthGreen},
		{0.7, cfg.UI.HealthGreen},
		{0.6, cfg.UI.HealthYellow},
		{0.4, cfg.UI.HealthYellow},
		{0.3, cfg.UI.HealthRed},
		{0, cfg.UI.HealthRed},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BandColor(tt.fraction), "fraction %v", tt.fraction)
	}
}

func TestWeaponLine(t *testing.T) {
	hud := sim.HUD{GunAmmo: 7, ShotgunAmmo: 2}

	hud.Weapon = cfg.Fists.String()
	assert.Equal(t, "fists", WeaponLine(hud))
	hud.Weapon = cfg.Gun.String()
	assert.Equal(t, "gun 7", WeaponLine(hud))
	hud.Weapon = cfg.Shotgun.String()
	assert.Equal(t, "shotgun 2", WeaponLine(hud))
}

func TestLyingPose(t *testing.T) {
	assert.False(t, lying(sim.EntityView{State: cfg.Fallen.String(), OffsetY: 1}))
	assert.True(t, lying(sim.EntityView{State: cfg.Fallen.String(), OffsetY: cfg.Player.FallOffsetY}))
	assert.True(t, lying(sim.EntityView{State: cfg.Dead.String(), OffsetY: cfg.Player.FallOffsetY}))
	assert.False(t, lying(sim.EntityView{State: cfg.Prone.String(), OffsetY: cfg.Player.ProneOffsetY}))
}
