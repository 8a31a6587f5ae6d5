package factory

import (
	"github.com/automoto/nightfall/archetypes"
	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace adds the broadphase grid covering lvl. The grid reaches below
// the band so pits padded by the bottom grace still land in a cell.
func CreateSpace(ecs *ecs.ECS, lvl *leveldata.Level) (*donburi.Entry, *resolv.Space) {
	cell := cfg.World.SpaceCell
	height := max(lvl.Height, lvl.BandBottom+cfg.Hazard.PitBottomGrace+float64(cell))

	entry := archetypes.Space.Spawn(ecs)
	space := resolv.NewSpace(int(lvl.Width), int(height), cell, cell)
	components.Space.Set(entry, space)
	return entry, space
}
