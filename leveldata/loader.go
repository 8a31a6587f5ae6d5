package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/nightfall/config"
	"github.com/lafriks/go-tiled"
)

// Object group names read from the .tmx files.
const (
	GroupPlayerSpawn    = "PlayerSpawn"
	GroupObstacles      = "Obstacles"
	GroupPits           = "Pits"
	GroupDirtStreams    = "DirtStreams"
	GroupZombieSpawns   = "ZombieSpawns"
	GroupWerewolfSpawns = "WerewolfSpawns"
)

type propertySource interface {
	Get(name string) []string
}

// Load parses one TMX file into a level template. Authored objects are kept
// as they are; the Layout counts drive Populate. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	props := levelMap.Properties
	lvl := &Level{
		Name:       strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Index:      intProp(props, "index", 0),
		Width:      float64(levelMap.Width * levelMap.TileWidth),
		Height:     float64(config.C.Height),
		BandTop:    float64(intProp(props, "bandTop", int(config.World.PlayAreaTop))),
		BandBottom: float64(intProp(props, "bandBottom", int(config.World.PlayAreaBot))),
		HasExit:    boolProp(props, "exit", false),
		PlayerSpawn: Spawn{
			X:           config.Player.StartX,
			Y:           (config.World.PlayAreaTop + config.World.PlayAreaBot) / 2,
			FacingRight: true,
		},
		Layout: Layout{
			Cars:       intProp(props, "cars", 0),
			Pits:       intProp(props, "pits", 0),
			Streams:    intProp(props, "streams", 0),
			Zombies:    intProp(props, "zombies", 0),
			Werewolves: intProp(props, "werewolves", 0),
		},
	}
	if lvl.Width <= 0 {
		return nil, fmt.Errorf("level %s has no width", tmxPath)
	}
	if lvl.BandBottom <= lvl.BandTop {
		return nil, fmt.Errorf("level %s: band bottom %.0f must be below top %.0f", tmxPath, lvl.BandBottom, lvl.BandTop)
	}

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			switch og.Name {
			case GroupPlayerSpawn:
				lvl.PlayerSpawn = Spawn{X: o.X, Y: o.Y, FacingRight: true}
			case GroupObstacles:
				lvl.Obstacles = append(lvl.Obstacles, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			case GroupPits:
				lvl.Pits = append(lvl.Pits, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			case GroupDirtStreams:
				// Ellipse objects: the bounding box width is the diameter.
				lvl.Dirt = append(lvl.Dirt, Segment{
					X:          o.X + o.Width/2,
					Y:          o.Y + o.Height/2,
					Radius:     o.Width / 2,
					Collidable: true,
				})
			case GroupZombieSpawns:
				lvl.ZombieSpawns = append(lvl.ZombieSpawns, Spawn{X: o.X, Y: o.Y})
			case GroupWerewolfSpawns:
				lvl.WerewolfSpawns = append(lvl.WerewolfSpawns, Spawn{X: o.X, Y: o.Y})
			}
		}
	}

	return lvl, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys and returns them
// ordered by their index property.
func LoadAll(fsys fs.FS, levelsDir string) ([]*Level, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make([]*Level, 0, len(matches))
	seen := make(map[int]string, len(matches))
	for _, path := range matches {
		lvl, err := Load(fsys, path)
		if err != nil {
			return nil, err
		}
		if other, dup := seen[lvl.Index]; dup {
			return nil, fmt.Errorf("levels %s and %s share index %d", other, path, lvl.Index)
		}
		seen[lvl.Index] = path
		levels = append(levels, lvl)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].Index < levels[j].Index
	})
	return levels, nil
}

func intProp(p propertySource, name string, def int) int {
	vals := p.Get(name)
	if len(vals) == 0 {
		return def
	}
	v, err := strconv.Atoi(vals[0])
	if err != nil {
		return def
	}
	return v
}

func boolProp(p propertySource, name string, def bool) bool {
	vals := p.Get(name)
	if len(vals) == 0 {
		return def
	}
	v, err := strconv.ParseBool(vals[0])
	if err != nil {
		return def
	}
	return v
}
