package render

import (
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/gamemath"
	"github.com/automoto/nightfall/sim"
)

// Camera scrolls horizontally only. The play band always fits the screen.
type Camera struct {
	X float64
}

// Follow centers the camera on the player, clamped to the level.
func (c *Camera) Follow(snap sim.Snapshot, levelWidth float64) {
	player, ok := snap.Player()
	if !ok {
		return
	}
	screenW := float64(cfg.C.Width)
	c.X = gamemath.Clamp(player.X-screenW/2, 0, max(levelWidth-screenW, 0))
}

// Visible reports whether a span [left, right] intersects the screen.
func (c *Camera) Visible(left, right float64) bool {
	return right >= c.X && left <= c.X+float64(cfg.C.Width)
}
