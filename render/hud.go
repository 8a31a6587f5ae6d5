package render

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/fonts"
	"github.com/automoto/nightfall/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based text until the fonts package moves to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
	hudMargin    = 10
)

// BandColor maps a health fraction to the bar colour.
func BandColor(fraction float64) color.RGBA {
	switch {
	case fraction > cfg.UI.HealthGreenAbove:
		return cfg.UI.HealthGreen
	case fraction > cfg.UI.HealthYellowAbove:
		return cfg.UI.HealthYellow
	default:
		return cfg.UI.HealthRed
	}
}

// DrawHUD renders the player's health bar, weapon and ammo in the top-left
// corner and the level name in the top-right one.
func DrawHUD(screen *ebiten.Image, snap sim.Snapshot) {
	hud := snap.HUD

	vector.FillRect(screen,
		hudMargin, hudMargin,
		hudBarWidth, hudBarHeight,
		color.RGBA{40, 40, 40, 255}, false)
	vector.FillRect(screen,
		hudMargin, hudMargin,
		hudBarWidth*float32(hud.Fraction), hudBarHeight,
		BandColor(hud.Fraction), false)

	face := fonts.Regular.Get()
	text.Draw(screen, WeaponLine(hud), face, hudMargin, hudMargin+hudBarHeight+18, cfg.White)

	name := fmt.Sprintf("%d: %s", snap.Level+1, snap.LevelName)
	bounds := text.BoundString(face, name)
	text.Draw(screen, name, face, cfg.C.Width-hudMargin-bounds.Dx(), hudMargin+14, cfg.White)
}

// WeaponLine is the HUD weapon label, e.g. "shotgun 3".
func WeaponLine(hud sim.HUD) string {
	switch hud.Weapon {
	case cfg.Gun.String():
		return fmt.Sprintf("%s %d", hud.Weapon, hud.GunAmmo)
	case cfg.Shotgun.String():
		return fmt.Sprintf("%s %d", hud.Weapon, hud.ShotgunAmmo)
	}
	return hud.Weapon
}

// DrawOverlay dims the screen for the pause and level-clear states.
func DrawOverlay(screen *ebiten.Image, snap sim.Snapshot) {
	var title, hint string
	switch {
	case snap.Paused:
		title, hint = "PAUSED", "P to resume"
	case snap.Exited:
		title, hint = "LEVEL CLEAR", "N for the next level"
	default:
		return
	}

	vector.FillRect(screen, 0, 0, float32(cfg.C.Width), float32(cfg.C.Height), cfg.BlackOverlay, false)
	drawCentered(screen, title, fonts.Title, cfg.C.Height/2-20, cfg.White)
	drawCentered(screen, hint, fonts.Regular, cfg.C.Height/2+20, cfg.White)
}

func drawCentered(screen *ebiten.Image, msg string, name fonts.FontName, y int, clr color.Color) {
	face := name.Get()
	bounds := text.BoundString(face, msg)
	text.Draw(screen, msg, face, (cfg.C.Width-bounds.Dx())/2, y, clr)
}
