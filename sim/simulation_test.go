package sim_test

import (
	"testing"

	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/leveldata"
	"github.com/automoto/nightfall/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestPauseFreezesTheWorld(t *testing.T) {
	s := newSim(t, &stubRoll{v: 0.99}, arena(withZombie(700, 452)))
	ticks(s, 3)
	before := s.Snapshot()

	require.True(t, s.TogglePause())
	s.SetIntent(components.IntentData{Right: true})
	s.Queue(cfg.ActionSelectGun)
	s.Queue(cfg.ActionFire)
	ticks(s, 30)

	after := s.Snapshot()
	assert.True(t, after.Paused)
	assert.Equal(t, before.Tick, after.Tick)
	assert.Equal(t, before.Entities, after.Entities)

	// Actions queued while paused are dropped.
	require.True(t, s.TogglePause())
	s.SetIntent(components.IntentData{})
	s.Tick(frame)
	snap := s.Snapshot()
	assert.Equal(t, cfg.Fists.String(), snap.HUD.Weapon)
	assert.Zero(t, snap.Count(sim.KindProjectile))
	assert.Equal(t, before.Tick+1, snap.Tick)
}

func TestPauseActionTogglesImmediately(t *testing.T) {
	s := newSim(t, &stubRoll{}, arena())
	s.Queue(cfg.ActionPause)
	assert.True(t, s.Snapshot().Paused)
	s.Queue(cfg.ActionPause)
	assert.False(t, s.Snapshot().Paused)
}

func TestLevelExitFreezesAndAdvances(t *testing.T) {
	s := newSim(t, &stubRoll{v: 0.99}, arena(withExit()), arena())
	components.Body.Get(playerEntry(s)).Position.X = 1950
	s.SetIntent(components.IntentData{Right: true})

	tickUntil(t, s, 20, func() bool { return s.Snapshot().Exited })
	events := s.DrainEvents()
	require.Len(t, ofKind(events, components.EventLevelExit), 1)

	tick := s.Snapshot().Tick
	ticks(s, 10)
	assert.Equal(t, tick, s.Snapshot().Tick)
	assert.False(t, s.TogglePause())
	assert.False(t, s.ChangeLevel(-1))

	require.True(t, s.ChangeLevel(1))
	snap := s.Snapshot()
	assert.Equal(t, 1, snap.Level)
	assert.False(t, snap.Exited)
	player, ok := snap.Player()
	require.True(t, ok)
	assert.Equal(t, 400.0, player.X)

	changed := ofKind(s.DrainEvents(), components.EventLevelChanged)
	require.Len(t, changed, 1)
	assert.Equal(t, 1, changed[0].Level)
}

func TestLevelWithoutExitNeverExits(t *testing.T) {
	s := newSim(t, &stubRoll{v: 0.99}, arena())
	components.Body.Get(playerEntry(s)).Position.X = 1950
	s.SetIntent(components.IntentData{Right: true})
	ticks(s, 30)

	snap := s.Snapshot()
	assert.False(t, snap.Exited)
	player, ok := snap.Player()
	require.True(t, ok)
	assert.Equal(t, 2000-cfg.Player.Width/2, player.X)
}

func TestChangeLevelBounds(t *testing.T) {
	s := newSim(t, &stubRoll{}, arena(), arena())

	assert.False(t, s.ChangeLevel(-1))
	assert.False(t, s.ChangeLevel(0))
	assert.True(t, s.ChangeLevel(1))
	assert.False(t, s.ChangeLevel(1))

	require.True(t, s.TogglePause())
	assert.False(t, s.ChangeLevel(-1))
	require.True(t, s.TogglePause())
	assert.True(t, s.ChangeLevel(-1))
	assert.Equal(t, 0, s.Snapshot().Level)
}

func TestEmbeddedLevels(t *testing.T) {
	s, err := sim.New(sim.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, 2, s.LevelCount())

	snap := s.Snapshot()
	assert.Equal(t, "road", snap.LevelName)
	assert.Equal(t, cfg.Zombie.SpawnCount, snap.Count(sim.KindZombie))
	assert.Zero(t, snap.Count(sim.KindWerewolf))
	assert.Equal(t, cfg.Player.MaxHealth, snap.HUD.Health)
	assert.Equal(t, components.BandGreen, snap.HUD.Band)

	require.True(t, s.ChangeLevel(1))
	snap = s.Snapshot()
	assert.Equal(t, "forest", snap.LevelName)
	assert.Equal(t, cfg.Werewolf.SpawnCount, snap.Count(sim.KindWerewolf))
	assert.Zero(t, snap.Count(sim.KindZombie))
	assert.False(t, s.ChangeLevel(1))
}

func TestNewRejectsBadStartLevel(t *testing.T) {
	_, err := sim.New(sim.WithLevels([]*leveldata.Level{arena()}), sim.WithStartLevel(3))
	assert.Error(t, err)

	_, err = sim.New(sim.WithLevels([]*leveldata.Level{}))
	assert.Error(t, err)
}

func TestSnapshotIsDepthSorted(t *testing.T) {
	s := newSim(t, &stubRoll{v: 0.99}, arena(withZombie(900, 520), withZombie(1200, 380)))
	s.Tick(frame)

	entities := s.Snapshot().Entities
	require.Len(t, entities, 3)
	for i := 1; i < len(entities); i++ {
		assert.LessOrEqual(t, entities[i-1].Depth, entities[i].Depth)
	}
}

// A scripted run replayed with the same seed yields the same world and the
// same events.
func TestSameSeedSameRun(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Int64Range(1, 1<<40).Draw(rt, "seed")
		script := rapid.SliceOfN(rapid.IntRange(0, 7), 10, 30).Draw(rt, "script")

		run := func() (sim.Snapshot, []components.Event) {
			s, err := sim.New(sim.WithSeed(seed))
			if err != nil {
				rt.Fatalf("new: %v", err)
			}
			var events []components.Event
			for _, step := range script {
				drive(s, step)
				for i := 0; i < 5; i++ {
					s.Tick(frame)
				}
				events = append(events, s.DrainEvents()...)
			}
			return s.Snapshot(), events
		}

		snapA, eventsA := run()
		snapB, eventsB := run()
		assert.Equal(rt, snapA, snapB)
		assert.Equal(rt, eventsA, eventsB)
	})
}

func drive(s *sim.Simulation, step int) {
	switch step {
	case 0:
		s.SetIntent(components.IntentData{Right: true})
	case 1:
		s.SetIntent(components.IntentData{Right: true, Up: true})
	case 2:
		s.SetIntent(components.IntentData{Down: true})
	case 3:
		s.SetIntent(components.IntentData{})
	case 4:
		s.Queue(cfg.ActionFire)
	case 5:
		s.Queue(cfg.ActionSelectShotgun)
	case 6:
		s.Queue(cfg.ActionProneDown)
	case 7:
		s.Queue(cfg.ActionProneUp)
	}
}
