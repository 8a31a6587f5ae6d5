// Package sim owns one running encounter: the donburi world, the ordered
// system list and the level currently loaded. Hosts drive it with Tick and
// read it back through Snapshot and DrainEvents.
package sim

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/automoto/nightfall/assets"
	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/leveldata"
	"github.com/automoto/nightfall/observability"
	"github.com/automoto/nightfall/systems"
	"github.com/automoto/nightfall/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Simulation is a single-threaded encounter. It is not safe for concurrent
// use.
type Simulation struct {
	ecs    *ecs.ECS
	logger *zap.Logger

	seed   int64
	rng    *rand.Rand
	roller components.Roller
	ids    io.Reader

	levels []*leveldata.Level
	start  int
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Simulation) {
		s.logger = logger
	}
}

// WithSeed fixes the seed of level generation, rolls and entity ids. Zero
// picks a time-based seed.
func WithSeed(seed int64) Option {
	return func(s *Simulation) {
		s.seed = seed
	}
}

// WithRoller replaces the source of probabilistic rolls. Level generation
// keeps using the seeded generator.
func WithRoller(r components.Roller) Option {
	return func(s *Simulation) {
		s.roller = r
	}
}

// WithLevels uses the given level templates instead of the embedded ones.
func WithLevels(levels []*leveldata.Level) Option {
	return func(s *Simulation) {
		s.levels = levels
	}
}

// WithStartLevel selects the level the run begins on.
func WithStartLevel(index int) Option {
	return func(s *Simulation) {
		s.start = index
	}
}

// New builds a simulation and loads its start level.
func New(opts ...Option) (*Simulation, error) {
	s := &Simulation{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	if s.levels == nil {
		levels, err := assets.NewLevelLoader("").LoadLevels()
		if err != nil {
			return nil, fmt.Errorf("building simulation: %w", err)
		}
		s.levels = levels
	}
	if len(s.levels) == 0 {
		return nil, errors.New("building simulation: no levels")
	}
	if s.start < 0 || s.start >= len(s.levels) {
		return nil, fmt.Errorf("building simulation: start level %d out of range [0, %d)", s.start, len(s.levels))
	}

	if s.seed == 0 {
		s.seed = time.Now().UnixNano()
	}
	s.rng = rand.New(rand.NewSource(s.seed))
	s.ids = rand.New(rand.NewSource(s.seed + 1))
	if s.roller == nil {
		s.roller = s.rng
	}
	s.logger = observability.SimLogger(s.logger, s.seed)

	s.load(s.start)
	return s, nil
}

// load replaces the world with a freshly populated copy of level index.
func (s *Simulation) load(index int) {
	e := ecs.NewECS(donburi.NewWorld())

	// Fixed tick order.
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateActions))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateProjectiles))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateParticles))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateZombies))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateProjectileHits))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateWerewolves))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.UpdateDepths)

	factory.CreateSession(e, s.roller, s.ids)
	lvl := s.levels[index].Populate(s.rng)
	factory.CreateLevel(e, lvl)
	s.ecs = e

	s.logger.Debug("level built",
		zap.Int("index", lvl.Index),
		zap.String("name", lvl.Name),
		zap.Int("obstacles", len(lvl.Obstacles)),
		zap.Int("pits", len(lvl.Pits)),
		zap.Int("dirt", len(lvl.Dirt)),
		zap.Int("zombies", len(lvl.ZombieSpawns)),
		zap.Int("werewolves", len(lvl.WerewolfSpawns)),
	)
}

// Tick advances the world by delta. A paused or transitioning world does
// not advance and drops the actions queued meanwhile.
func (s *Simulation) Tick(delta time.Duration) {
	clock := factory.Clock(s.ecs)
	clock.Delta = delta
	if !systems.GameplayActive(s.ecs) {
		systems.ClearQueuedActions(s.ecs)
		return
	}
	clock.Tick++
	clock.Elapsed += delta

	queue := components.Events.Get(components.Events.MustFirst(s.ecs.World))
	seen := len(queue.Pending)
	s.ecs.Update()
	s.logEvents(queue.Pending[seen:])
}

func (s *Simulation) logEvents(events []components.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case components.EventPlayerDied:
			s.logger.Debug("player died", zap.Uint64("tick", factory.Clock(s.ecs).Tick))
		case components.EventGameOver:
			s.logger.Debug("game over", zap.Uint64("tick", factory.Clock(s.ecs).Tick))
		case components.EventLevelExit:
			s.logger.Debug("level exit reached", zap.Int("level", ev.Level))
		}
	}
}

// SetIntent sets the movement intent for the following ticks.
func (s *Simulation) SetIntent(intent components.IntentData) {
	systems.SetIntent(s.ecs, intent)
}

// Queue delivers a discrete action. Pause and level shifts apply at once;
// the rest run at the start of the next tick.
func (s *Simulation) Queue(action cfg.ActionID) {
	switch action {
	case cfg.ActionPause:
		s.TogglePause()
	case cfg.ActionLevelPrev:
		s.ChangeLevel(-1)
	case cfg.ActionLevelNext:
		s.ChangeLevel(1)
	case cfg.ActionNone:
	default:
		systems.QueueAction(s.ecs, action)
	}
}

// TogglePause flips the pause state and reports whether it changed.
func (s *Simulation) TogglePause() bool {
	return systems.TogglePause(s.ecs)
}

// ChangeLevel shifts to the level delta away and reports whether it did.
// Pending events carry over into the new world.
func (s *Simulation) ChangeLevel(delta int) bool {
	next, ok := systems.NextLevelIndex(s.ecs, delta, len(s.levels))
	if !ok {
		return false
	}

	pending := systems.DrainEvents(s.ecs)
	s.load(next)
	for _, ev := range pending {
		systems.Emit(s.ecs, ev)
	}
	systems.Emit(s.ecs, components.Event{Kind: components.EventLevelChanged, Level: next})
	s.logger.Debug("level changed", zap.Int("level", next))
	return true
}

// DrainEvents returns the events emitted since the last call.
func (s *Simulation) DrainEvents() []components.Event {
	return systems.DrainEvents(s.ecs)
}

// ECS exposes the world to renderers and tests.
func (s *Simulation) ECS() *ecs.ECS {
	return s.ecs
}

// Seed is the seed the run was built with.
func (s *Simulation) Seed() int64 {
	return s.seed
}

// LevelCount is the number of levels available.
func (s *Simulation) LevelCount() int {
	return len(s.levels)
}

// Level is the populated layout of the current level, for drawing static
// geometry.
func (s *Simulation) Level() *leveldata.Level {
	if level := systems.GetLevel(s.ecs); level != nil {
		return level.Source
	}
	return nil
}
