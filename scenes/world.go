package scenes

import (
	"sync"
	"time"

	"github.com/automoto/nightfall/assets"
	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/render"
	"github.com/automoto/nightfall/sim"
	"github.com/automoto/nightfall/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// WorldScene runs one simulation: it feeds keyboard input in, ticks once
// per frame and draws the resulting snapshot.
type WorldScene struct {
	sceneChanger SceneChanger
	settings     cfg.Settings
	logger       *zap.Logger

	sim      *sim.Simulation
	snap     sim.Snapshot
	camera   render.Camera
	balloons *render.Balloons
	gameOver *ui.GameOverUI

	once sync.Once
	err  error
}

func NewWorldScene(sc SceneChanger, settings cfg.Settings, logger *zap.Logger) *WorldScene {
	return &WorldScene{
		sceneChanger: sc,
		settings:     settings,
		logger:       logger,
		balloons:     render.NewBalloons(),
	}
}

func (ws *WorldScene) configure() {
	levels, err := assets.NewLevelLoader(ws.settings.Sim.LevelDir).LoadLevels()
	if err != nil {
		ws.err = err
		return
	}
	ws.sim, ws.err = sim.New(
		sim.WithLogger(ws.logger),
		sim.WithSeed(ws.settings.Sim.Seed),
		sim.WithLevels(levels),
		sim.WithStartLevel(ws.settings.Sim.StartLevel),
	)
	if ws.err != nil {
		return
	}
	ws.logger.Info("run started", zap.Int64("seed", ws.sim.Seed()), zap.Int("levels", ws.sim.LevelCount()))
	ws.snap = ws.sim.Snapshot()
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	if ws.err != nil {
		ws.logger.Error("cannot start the run", zap.Error(ws.err))
		ws.sceneChanger.Quit()
		return
	}

	if ws.gameOver != nil {
		ws.gameOver.Update()
		return
	}

	ws.sim.SetIntent(pollIntent())
	for _, action := range pollActions() {
		ws.sim.Queue(action)
	}

	delta := time.Second / time.Duration(ebiten.TPS())
	ws.sim.Tick(delta)

	events := ws.sim.DrainEvents()
	for _, ev := range events {
		if ev.Kind == components.EventLevelChanged {
			ws.balloons.Clear()
		}
	}
	ws.balloons.Observe(events)
	ws.balloons.Update(delta)

	ws.snap = ws.sim.Snapshot()
	if lvl := ws.sim.Level(); lvl != nil {
		ws.camera.Follow(ws.snap, lvl.Width)
	}

	if ws.snap.GameOver {
		ws.showGameOver()
	}
}

func (ws *WorldScene) showGameOver() {
	g, err := ui.NewGameOverUI(
		func() {
			ws.sceneChanger.ChangeScene(NewWorldScene(ws.sceneChanger, ws.settings, ws.logger))
		},
		ws.sceneChanger.Quit,
	)
	if err != nil {
		ws.logger.Error("building game over panel", zap.Error(err))
		ws.sceneChanger.Quit()
		return
	}
	ws.gameOver = g
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	if ws.sim == nil {
		return
	}
	render.DrawWorld(screen, ws.sim.Level(), ws.snap, &ws.camera, ws.balloons)
	render.DrawHUD(screen, ws.snap)
	render.DrawOverlay(screen, ws.snap)
	if ws.gameOver != nil {
		ws.gameOver.UI.Draw(screen)
	}
}
