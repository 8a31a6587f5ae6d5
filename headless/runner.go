package headless

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/automoto/nightfall/components"
	"github.com/automoto/nightfall/sim"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// EventRecord is one event in the YAML report.
type EventRecord struct {
	Tick      uint64 `yaml:"tick"`
	Kind      string `yaml:"kind"`
	ID        string `yaml:"id,omitempty"`
	Target    string `yaml:"target,omitempty"`
	Amount    int    `yaml:"amount,omitempty"`
	NewHealth *int   `yaml:"new_health,omitempty"`
	Weapon    string `yaml:"weapon,omitempty"`
	Text      string `yaml:"text,omitempty"`
	Level     *int   `yaml:"level,omitempty"`
}

// Report is what a headless run leaves behind.
type Report struct {
	Seed     int64         `yaml:"seed"`
	Ticks    int           `yaml:"ticks"`
	Events   []EventRecord `yaml:"events"`
	Snapshot sim.Snapshot  `yaml:"snapshot"`
}

// Runner ticks a simulation under the autopilot.
type Runner struct {
	sim      *sim.Simulation
	logger   *zap.Logger
	pilot    Autopilot
	tickRate int
	realtime bool
}

func NewRunner(s *sim.Simulation, logger *zap.Logger, tickRate int, realtime bool) *Runner {
	return &Runner{
		sim:      s,
		logger:   logger,
		tickRate: tickRate,
		realtime: realtime,
	}
}

// Run plays up to ticks ticks, stopping early at game over or when ctx is
// done. In realtime mode ticks are paced by a ticker at the tick rate.
func (r *Runner) Run(ctx context.Context, ticks int) (Report, error) {
	delta := time.Second / time.Duration(r.tickRate)
	report := Report{Seed: r.sim.Seed()}

	var tickC <-chan time.Time
	if r.realtime {
		ticker := time.NewTicker(delta)
		defer ticker.Stop()
		tickC = ticker.C
	}

	r.logger.Info("headless run started",
		zap.Int64("seed", r.sim.Seed()),
		zap.Int("ticks", ticks),
		zap.Int("tick_rate", r.tickRate),
		zap.Bool("realtime", r.realtime),
	)

	snap := r.sim.Snapshot()
	for report.Ticks < ticks && !snap.GameOver {
		if tickC != nil {
			select {
			case <-ctx.Done():
				return r.finish(report), ctx.Err()
			case <-tickC:
			}
		} else if err := ctx.Err(); err != nil {
			return r.finish(report), err
		}

		intent, actions := r.pilot.Decide(snap)
		r.sim.SetIntent(intent)
		for _, a := range actions {
			r.sim.Queue(a)
		}
		r.sim.Tick(delta)
		report.Ticks++

		snap = r.sim.Snapshot()
		for _, ev := range r.sim.DrainEvents() {
			report.Events = append(report.Events, record(snap.Tick, ev))
			r.logEvent(ev)
		}
	}
	return r.finish(report), nil
}

func (r *Runner) finish(report Report) Report {
	report.Snapshot = r.sim.Snapshot()
	r.logger.Info("headless run finished",
		zap.Int("ticks", report.Ticks),
		zap.Int("events", len(report.Events)),
		zap.Int("level", report.Snapshot.Level),
		zap.Int("health", report.Snapshot.HUD.Health),
		zap.Bool("game_over", report.Snapshot.GameOver),
	)
	return report
}

func (r *Runner) logEvent(ev components.Event) {
	switch ev.Kind {
	case components.EventEntityDied, components.EventPlayerFell, components.EventPlayerDied,
		components.EventLevelExit, components.EventLevelChanged, components.EventGameOver:
		r.logger.Info("event", zap.Stringer("event", ev))
	default:
		r.logger.Debug("event", zap.Stringer("event", ev))
	}
}

func record(tick uint64, ev components.Event) EventRecord {
	rec := EventRecord{Tick: tick, Kind: ev.Kind.String()}
	switch ev.Kind {
	case components.EventEntityDamaged:
		health := ev.NewHealth
		rec.ID, rec.Amount, rec.NewHealth = ev.ID.String(), ev.Amount, &health
	case components.EventAttackLanded:
		rec.ID, rec.Target = ev.ID.String(), ev.TargetID.String()
	case components.EventEntityDied, components.EventPlayerFell, components.EventPlayerDied:
		rec.ID = ev.ID.String()
	case components.EventBalloon:
		rec.ID, rec.Text = ev.ID.String(), ev.Text
	case components.EventOutOfAmmo, components.EventWeaponChanged:
		rec.Weapon = ev.Weapon.String()
	case components.EventLevelExit, components.EventLevelChanged:
		level := ev.Level
		rec.Level = &level
	}
	return rec
}

// WriteReport encodes report as YAML.
func WriteReport(w io.Writer, report Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
