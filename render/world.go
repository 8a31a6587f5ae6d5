// Package render draws simulation snapshots with ebiten. It reads state
// only; nothing here feeds back into the simulation.
package render

import (
	"image/color"
	"sort"

	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/fonts"
	"github.com/automoto/nightfall/leveldata"
	"github.com/automoto/nightfall/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based text until the fonts package moves to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	skyColor      = color.RGBA{12, 14, 30, 255}
	groundColor   = color.RGBA{38, 36, 40, 255}
	bandColor     = color.RGBA{52, 50, 52, 255}
	carColor      = color.RGBA{90, 96, 110, 255}
	carRoofColor  = color.RGBA{60, 64, 76, 255}
	pitColor      = color.RGBA{58, 40, 24, 255}
	dirtColor     = color.RGBA{92, 66, 40, 255}
	playerColor   = color.RGBA{70, 120, 220, 255}
	zombieColor   = color.RGBA{80, 150, 80, 255}
	windupColor   = color.RGBA{150, 210, 110, 255}
	stunnedColor  = color.RGBA{110, 120, 110, 255}
	werewolfColor = color.RGBA{130, 90, 60, 255}
	bulletColor   = color.RGBA{250, 220, 90, 255}
	particleColor = color.RGBA{120, 90, 56, 255}
	balloonColor  = color.RGBA{250, 250, 240, 230}
	balloonText   = color.RGBA{20, 20, 20, 255}
	debugColor    = color.RGBA{255, 0, 255, 200}
)

const (
	enemyBarWidth  = 30
	enemyBarHeight = 4
)

// DrawWorld draws the level geometry and every entity of snap, back to
// front, as seen through cam.
func DrawWorld(screen *ebiten.Image, lvl *leveldata.Level, snap sim.Snapshot, cam *Camera, balloons *Balloons) {
	screen.Fill(skyColor)
	if lvl == nil {
		return
	}
	w := float32(cfg.C.Width)
	vector.FillRect(screen, 0, float32(lvl.BandTop-40), w, float32(cfg.C.Height), groundColor, false)
	vector.FillRect(screen, 0, float32(lvl.BandTop), w, float32(lvl.BandBottom-lvl.BandTop), bandColor, false)

	for _, s := range lvl.Dirt {
		if cam.Visible(s.X-s.Radius, s.X+s.Radius) {
			vector.DrawFilledCircle(screen, float32(s.X-cam.X), float32(s.Y), float32(s.Radius), dirtColor, true)
		}
	}
	for _, p := range lvl.Pits {
		if cam.Visible(p.X, p.X+p.W) {
			vector.FillRect(screen, float32(p.X-cam.X), float32(p.Y), float32(p.W), float32(p.H), pitColor, false)
		}
	}

	// Cars and actors share one depth order.
	cars := append([]leveldata.Rect(nil), lvl.Obstacles...)
	sort.Slice(cars, func(i, j int) bool { return cars[i].Y+cars[i].H < cars[j].Y+cars[j].H })
	next := 0
	for _, v := range snap.Entities {
		for next < len(cars) && cars[next].Y+cars[next].H <= v.Depth {
			drawCar(screen, cars[next], cam)
			next++
		}
		drawEntity(screen, v, cam, balloons)
	}
	for ; next < len(cars); next++ {
		drawCar(screen, cars[next], cam)
	}

	if cfg.Debug.DrawHazards {
		drawHazards(screen, lvl, cam)
	}
}

func drawCar(screen *ebiten.Image, r leveldata.Rect, cam *Camera) {
	if !cam.Visible(r.X, r.X+r.W) {
		return
	}
	x := float32(r.X - cam.X)
	vector.FillRect(screen, x, float32(r.Y), float32(r.W), float32(r.H), carColor, false)
	vector.FillRect(screen, x+10, float32(r.Y)+4, float32(r.W)-20, float32(r.H)/3, carRoofColor, false)
}

func drawEntity(screen *ebiten.Image, v sim.EntityView, cam *Camera, balloons *Balloons) {
	left, right := v.X-v.Width/2, v.X+v.Width/2
	if !cam.Visible(left, right) {
		return
	}
	x := float32(left - cam.X)
	y := float32(v.Y - v.Height/2 + v.OffsetY)
	w, h := float32(v.Width), float32(v.Height)

	switch v.Kind {
	case sim.KindPlayer:
		if lying(v) {
			// Lie along the foot line.
			foot := float32(v.Y + v.Height/2)
			vector.FillRect(screen, float32(v.X-cam.X)-h/2, foot-w/2, h, w/2, playerColor, false)
		} else {
			vector.FillRect(screen, x, y, w, h-float32(v.OffsetY), playerColor, false)
		}
	case sim.KindZombie:
		vector.FillRect(screen, x, y, w, h, zombieTint(v.State), false)
		drawEnemyBar(screen, v, cam)
	case sim.KindWerewolf:
		clr := werewolfColor
		if v.Telegraphing {
			clr = cfg.LightRed
		}
		vector.FillRect(screen, x, y, w, h, clr, false)
		drawEnemyBar(screen, v, cam)
	case sim.KindProjectile:
		vector.FillRect(screen, x, y, w, h, bulletColor, false)
	case sim.KindParticle:
		vector.FillRect(screen, float32(v.X-cam.X)-1.5, float32(v.Y)-1.5, 3, 3, particleColor, false)
	}

	if balloons == nil {
		return
	}
	if msg, ok := balloons.Text(v.ID); ok {
		drawBalloon(screen, msg, float32(v.X-cam.X), y)
	}
}

func lying(v sim.EntityView) bool {
	switch v.State {
	case cfg.Fallen.String(), cfg.Dead.String():
		return v.OffsetY >= cfg.Player.FallOffsetY/2
	}
	return false
}

func zombieTint(state string) color.RGBA {
	switch state {
	case cfg.Windup.String():
		return windupColor
	case cfg.Stunned.String():
		return stunnedColor
	}
	return zombieColor
}

func drawEnemyBar(screen *ebiten.Image, v sim.EntityView, cam *Camera) {
	x := float32(v.X-cam.X) - enemyBarWidth/2
	y := float32(v.Y-v.Height/2) - 8
	vector.FillRect(screen, x, y, enemyBarWidth, enemyBarHeight, color.RGBA{40, 40, 40, 255}, false)
	vector.FillRect(screen, x, y, enemyBarWidth*float32(v.Health), enemyBarHeight, BandColor(v.Health), false)
}

func drawBalloon(screen *ebiten.Image, msg string, cx, top float32) {
	face := fonts.Small.Get()
	bounds := text.BoundString(face, msg)
	w := float32(bounds.Dx()) + 10
	h := float32(bounds.Dy()) + 8
	x, y := cx-w/2, top-h-12

	vector.FillRect(screen, x, y, w, h, balloonColor, false)
	text.Draw(screen, msg, face, int(x)+5, int(y+h)-5, balloonText)
}

func drawHazards(screen *ebiten.Image, lvl *leveldata.Level, cam *Camera) {
	for _, p := range lvl.Pits {
		vector.StrokeRect(screen, float32(p.X-cam.X), float32(p.Y), float32(p.W), float32(p.H+cfg.Hazard.PitBottomGrace), 1, debugColor, false)
	}
	for _, s := range lvl.Dirt {
		if !s.Collidable || !cam.Visible(s.X-s.Radius, s.X+s.Radius) {
			continue
		}
		vector.StrokeCircle(screen, float32(s.X-cam.X), float32(s.Y), float32(s.Radius+cfg.Hazard.DirtFootRadius), 1, debugColor, true)
	}
	tol := cfg.Hazard.DepthTolerance
	for _, r := range lvl.Obstacles {
		vector.StrokeRect(screen, float32(r.X-cam.X), float32(r.Y+r.H-tol), float32(r.W), float32(tol*2), 1, debugColor, false)
	}
}
