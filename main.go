package main

import (
	"errors"
	"flag"
	"log"

	"github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/fonts"
	"github.com/automoto/nightfall/observability"
	"github.com/automoto/nightfall/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

var errQuit = errors.New("quit")

type Game struct {
	scene scenes.Scene
	quit  bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

// Quit ends the game loop after the current frame.
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(settings config.Settings, logger *zap.Logger) *Game {
	g := &Game{}
	g.scene = scenes.NewWorldScene(g, settings, logger)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return errQuit
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "path to a settings file (yaml, json or toml)")
	drawHazards := flag.Bool("debug-hazards", false, "outline pits, dirt streams and car depth bands")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	logger, err := observability.NewLogger(settings.Logging)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	config.Debug.DrawHazards = *drawHazards
	if err := fonts.LoadDefaults(); err != nil {
		logger.Fatal("loading fonts", zap.Error(err))
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Nightfall")
	ebiten.SetTPS(settings.Sim.TickRate)

	logger.Info("starting",
		zap.String("log_level", settings.Logging.Level),
		zap.Int64("seed", settings.Sim.Seed),
		zap.Int("tick_rate", settings.Sim.TickRate),
		zap.Int("start_level", settings.Sim.StartLevel),
	)

	if err := ebiten.RunGame(NewGame(settings, logger)); err != nil && !errors.Is(err, errQuit) {
		logger.Fatal("game loop", zap.Error(err))
	}
}
