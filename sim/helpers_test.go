package sim_test

import (
	"testing"
	"time"

	"github.com/automoto/nightfall/components"
	"github.com/automoto/nightfall/leveldata"
	"github.com/automoto/nightfall/sim"
	"github.com/automoto/nightfall/systems"
	"github.com/automoto/nightfall/systems/factory"
	"github.com/automoto/nightfall/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const frame = 16 * time.Millisecond

// stubRoll returns v for every roll. Tests change v between phases.
type stubRoll struct {
	v float64
}

func (r *stubRoll) Float64() float64 { return r.v }

type levelOption func(*leveldata.Level)

// arena is an empty 2000 px level with the player standing at (400, 450).
func arena(opts ...levelOption) *leveldata.Level {
	lvl := &leveldata.Level{
		Name:        "arena",
		Width:       2000,
		Height:      608,
		BandTop:     350,
		BandBottom:  550,
		PlayerSpawn: leveldata.Spawn{X: 400, Y: 450, FacingRight: true},
	}
	for _, opt := range opts {
		opt(lvl)
	}
	return lvl
}

func withZombie(x, y float64) levelOption {
	return func(l *leveldata.Level) {
		l.ZombieSpawns = append(l.ZombieSpawns, leveldata.Spawn{X: x, Y: y})
	}
}

func withPit(r leveldata.Rect) levelOption {
	return func(l *leveldata.Level) {
		l.Pits = append(l.Pits, r)
	}
}

func withExit() levelOption {
	return func(l *leveldata.Level) {
		l.HasExit = true
	}
}

func newSim(t *testing.T, roll *stubRoll, levels ...*leveldata.Level) *sim.Simulation {
	t.Helper()
	for i, l := range levels {
		l.Index = i
	}
	s, err := sim.New(
		sim.WithLevels(levels),
		sim.WithSeed(1),
		sim.WithRoller(roll),
	)
	require.NoError(t, err)
	return s
}

func playerEntry(s *sim.Simulation) *donburi.Entry {
	return systems.GetPlayer(s.ECS())
}

func playerHealth(s *sim.Simulation) int {
	return components.Health.Get(playerEntry(s)).Current
}

func firstZombie(t *testing.T, s *sim.Simulation) *donburi.Entry {
	t.Helper()
	e, ok := tags.Zombie.First(s.ECS().World)
	require.True(t, ok, "no zombie left")
	return e
}

// placeWerewolf spawns a werewolf ready to leap: no jump cooldown and a
// bite cooldown long enough to keep it from biting.
func placeWerewolf(s *sim.Simulation, x, y float64) *donburi.Entry {
	e := factory.CreateWerewolf(s.ECS(), leveldata.Spawn{X: x, Y: y})
	w := components.Werewolf.Get(e)
	w.JumpCooldown = 0
	w.BiteCooldown = 10 * time.Second
	return e
}

// tickUntil ticks until cond holds, failing after max ticks.
func tickUntil(t *testing.T, s *sim.Simulation, max int, cond func() bool) {
	t.Helper()
	for i := 0; i < max; i++ {
		if cond() {
			return
		}
		s.Tick(frame)
	}
	require.True(t, cond(), "condition not reached after %d ticks", max)
}

func ticks(s *sim.Simulation, n int) {
	for i := 0; i < n; i++ {
		s.Tick(frame)
	}
}

func ofKind(events []components.Event, kind components.EventKind) []components.Event {
	var out []components.Event
	for _, ev := range events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}
