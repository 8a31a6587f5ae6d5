// Command nightfall-headless plays a run without a window under a scripted
// autopilot and writes the final snapshot plus the event log as YAML.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/automoto/nightfall/assets"
	"github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/headless"
	"github.com/automoto/nightfall/observability"
	"github.com/automoto/nightfall/sim"
)

func main() {
	configPath := flag.String("config", "", "path to a settings file (yaml, json or toml)")
	ticks := flag.Int("ticks", -1, "ticks to run; overrides headless.ticks")
	seed := flag.Int64("seed", 0, "seed; overrides sim.seed when non-zero")
	out := flag.String("out", "", "snapshot path; overrides headless.snapshot, \"-\" for stdout")
	realtime := flag.Bool("realtime", false, "pace ticks at sim.tick_rate instead of running flat out")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *ticks >= 0 {
		settings.Headless.Ticks = *ticks
	}
	if *seed != 0 {
		settings.Sim.Seed = *seed
	}
	if *out != "" {
		settings.Headless.Snapshot = *out
	}

	logger, err := observability.NewLogger(settings.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, settings, *realtime, logger); err != nil {
		logger.Fatal("headless run failed", zap.Error(err))
	}
}

func run(ctx context.Context, settings config.Settings, realtime bool, logger *zap.Logger) error {
	levels, err := assets.NewLevelLoader(settings.Sim.LevelDir).LoadLevels()
	if err != nil {
		return err
	}
	s, err := sim.New(
		sim.WithLogger(logger),
		sim.WithSeed(settings.Sim.Seed),
		sim.WithLevels(levels),
		sim.WithStartLevel(settings.Sim.StartLevel),
	)
	if err != nil {
		return err
	}

	report, err := headless.NewRunner(s, logger, settings.Sim.TickRate, realtime).Run(ctx, settings.Headless.Ticks)
	if err != nil && ctx.Err() == nil {
		return err
	}
	if settings.Headless.Snapshot == "" {
		return nil
	}
	return writeReport(settings.Headless.Snapshot, report)
}

func writeReport(path string, report headless.Report) (err error) {
	var w io.Writer = os.Stdout
	if path != "-" {
		f, cerr := os.Create(path)
		if cerr != nil {
			return fmt.Errorf("creating snapshot file: %w", cerr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		w = f
	}
	return headless.WriteReport(w, report)
}
