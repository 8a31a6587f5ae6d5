package systems

import (
	"testing"
	"time"

	"github.com/automoto/nightfall/leveldata"
	"github.com/automoto/nightfall/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const frame = 16 * time.Millisecond

type fixedRoll float64

func (r fixedRoll) Float64() float64 { return float64(r) }

// testLevel is a 2000 px band with the player parked at (100, 450).
func testLevel() *leveldata.Level {
	return &leveldata.Level{
		Name:        "test",
		Width:       2000,
		Height:      608,
		BandTop:     350,
		BandBottom:  550,
		PlayerSpawn: leveldata.Spawn{X: 100, Y: 450, FacingRight: true},
	}
}

// newTestECS builds a session and lvl into a fresh world with the clock set
// to one frame.
func newTestECS(t *testing.T, lvl *leveldata.Level, roll fixedRoll) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSession(e, roll, nil)
	factory.CreateLevel(e, lvl)
	factory.Clock(e).Delta = frame
	require.NotNil(t, GetPlayer(e))
	return e
}
