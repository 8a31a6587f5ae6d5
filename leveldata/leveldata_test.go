package leveldata

import (
	"fmt"
	"math/rand"
	"testing"
	"testing/fstest"

	"github.com/automoto/nightfall/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="%d" height="19" tilewidth="32" tileheight="32" infinite="0">
 <properties>
  <property name="index" type="int" value="%d"/>
  <property name="bandTop" type="int" value="%d"/>
  <property name="bandBottom" type="int" value="550"/>
  <property name="exit" type="bool" value="true"/>
  <property name="cars" type="int" value="4"/>
  <property name="pits" type="int" value="3"/>
  <property name="streams" type="int" value="2"/>
  <property name="zombies" type="int" value="5"/>
 </properties>
 <objectgroup id="1" name="PlayerSpawn">
  <object id="1" x="70" y="440"/>
 </objectgroup>
 <objectgroup id="2" name="Obstacles">
  <object id="2" x="300" y="400" width="80" height="55"/>
 </objectgroup>
 <objectgroup id="3" name="Pits">
  <object id="3" x="110" y="450" width="60" height="40"/>
 </objectgroup>
 <objectgroup id="4" name="DirtStreams">
  <object id="4" x="500" y="400" width="24" height="24"><ellipse/></object>
 </objectgroup>
 <objectgroup id="5" name="WerewolfSpawns">
  <object id="5" x="2000" y="450"/>
 </objectgroup>
</map>`

func tmx(width, index, bandTop int) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(fmt.Sprintf(testTMX, width, index, bandTop))}
}

func TestLoadParsesPropertiesAndObjects(t *testing.T) {
	fsys := fstest.MapFS{"levels/road.tmx": tmx(100, 0, 350)}

	lvl, err := Load(fsys, "levels/road.tmx")
	require.NoError(t, err)

	assert.Equal(t, "road", lvl.Name)
	assert.Equal(t, 0, lvl.Index)
	assert.Equal(t, 3200.0, lvl.Width)
	assert.Equal(t, 350.0, lvl.BandTop)
	assert.Equal(t, 550.0, lvl.BandBottom)
	assert.True(t, lvl.HasExit)
	assert.Equal(t, Spawn{X: 70, Y: 440, FacingRight: true}, lvl.PlayerSpawn)
	assert.Equal(t, []Rect{{X: 300, Y: 400, W: 80, H: 55}}, lvl.Obstacles)
	assert.Equal(t, []Rect{{X: 110, Y: 450, W: 60, H: 40}}, lvl.Pits)
	require.Len(t, lvl.Dirt, 1)
	assert.Equal(t, Segment{X: 512, Y: 412, Radius: 12, Collidable: true}, lvl.Dirt[0])
	assert.Len(t, lvl.WerewolfSpawns, 1)
	assert.Equal(t, Layout{Cars: 4, Pits: 3, Streams: 2, Zombies: 5}, lvl.Layout)
}

func TestLoadRejectsInvertedBand(t *testing.T) {
	fsys := fstest.MapFS{"levels/bad.tmx": tmx(100, 0, 600)}

	_, err := Load(fsys, "levels/bad.tmx")
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "levels/none.tmx")
	assert.Error(t, err)
}

func TestLoadAllOrdersByIndex(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/a.tmx": tmx(100, 1, 350),
		"levels/b.tmx": tmx(100, 0, 350),
	}

	levels, err := LoadAll(fsys, "levels")
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Equal(t, "b", levels[0].Name)
	assert.Equal(t, "a", levels[1].Name)
}

func TestLoadAllErrors(t *testing.T) {
	_, err := LoadAll(fstest.MapFS{}, "levels")
	assert.Error(t, err, "empty directory")

	dup := fstest.MapFS{
		"levels/a.tmx": tmx(100, 0, 350),
		"levels/b.tmx": tmx(100, 0, 350),
	}
	_, err = LoadAll(dup, "levels")
	assert.Error(t, err, "duplicate index")
}

func template() *Level {
	return &Level{
		Width:      config.World.LevelWidth,
		Height:     float64(config.C.Height),
		BandTop:    config.World.PlayAreaTop,
		BandBottom: config.World.PlayAreaBot,
		Pits:       []Rect{{X: 110, Y: 450, W: 60, H: 40}},
		Layout: Layout{
			Cars:    config.World.CarCount,
			Pits:    config.World.PitCount,
			Streams: config.World.StreamCount,
			Zombies: config.Zombie.SpawnCount,
		},
	}
}

func TestPopulateCountsAndBounds(t *testing.T) {
	tpl := template()
	lvl := tpl.Populate(rand.New(rand.NewSource(1)))

	assert.Len(t, lvl.Obstacles, 25)
	assert.Len(t, lvl.Pits, 21, "authored start pit plus 20")
	assert.Len(t, lvl.ZombieSpawns, 30)
	assert.Empty(t, lvl.WerewolfSpawns)
	assert.Len(t, tpl.Pits, 1, "template is not modified")

	for _, o := range lvl.Obstacles {
		cx, cy := o.X+o.W/2, o.Y+o.H/2
		assert.GreaterOrEqual(t, cx, 800.0)
		assert.LessOrEqual(t, cx, tpl.Width-200)
		assert.GreaterOrEqual(t, cy, tpl.BandTop+30)
		assert.LessOrEqual(t, cy, tpl.BandBottom-30)
	}
	for _, z := range lvl.ZombieSpawns {
		assert.GreaterOrEqual(t, z.X, 1000.0)
		assert.LessOrEqual(t, z.X, tpl.Width-200)
		assert.GreaterOrEqual(t, z.Y, tpl.BandTop+20)
		assert.LessOrEqual(t, z.Y, tpl.BandBottom-20)
	}

	collidable := 0
	for _, d := range lvl.Dirt {
		assert.GreaterOrEqual(t, d.Radius, 12*0.8)
		assert.LessOrEqual(t, d.Radius, 12*1.4)
		if d.Collidable {
			collidable++
		}
	}
	// 180 px of stream at 10 px per segment, every third collidable
	assert.Len(t, lvl.Dirt, 15*18)
	assert.Equal(t, 15*6, collidable)
}

func TestPopulateIsDeterministic(t *testing.T) {
	a := template().Populate(rand.New(rand.NewSource(42)))
	b := template().Populate(rand.New(rand.NewSource(42)))
	c := template().Populate(rand.New(rand.NewSource(43)))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a.Obstacles, c.Obstacles)
}
