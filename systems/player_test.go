package systems

import (
	"math"
	"testing"

	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/leveldata"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestHazardMultiplier(t *testing.T) {
	pit := leveldata.Rect{X: 600, Y: 420, W: 60, H: 40}
	dirt := leveldata.Segment{X: 900, Y: 480, Radius: 14, Collidable: true}
	lvl := testLevel()
	lvl.Pits = []leveldata.Rect{pit}
	lvl.Dirt = []leveldata.Segment{dirt}
	e := newTestECS(t, lvl, 0)

	rapid.Check(t, func(rt *rapid.T) {
		body := &components.BodyData{
			Position: components.Body.Get(GetPlayer(e)).Position,
			Width:    cfg.Player.Width,
			Height:   cfg.Player.Height,
		}
		body.Position.X = rapid.Float64Range(500, 1000).Draw(rt, "x")
		body.Position.Y = rapid.Float64Range(330, 530).Draw(rt, "y")

		foot := body.FootY()
		onPit := body.Left() < pit.X+pit.W && body.Right() > pit.X &&
			foot > pit.Y && foot < pit.Y+pit.H+cfg.Hazard.PitBottomGrace
		onDirt := math.Hypot(body.Position.X-dirt.X, foot-dirt.Y) < dirt.Radius+cfg.Hazard.DirtFootRadius

		want := 1.0
		if onPit || onDirt {
			want = cfg.Hazard.SpeedMultiplier
		}
		if got := HazardMultiplier(e, body); got != want {
			rt.Fatalf("multiplier at (%v, %v) = %v, want %v", body.Position.X, foot, got, want)
		}
	})
}

func TestVulnerable(t *testing.T) {
	e := newTestECS(t, testLevel(), 0)
	p := GetPlayer(e)
	state := components.State.Get(p)

	tests := []struct {
		state      cfg.StateID
		vulnerable bool
	}{
		{cfg.Normal, true},
		{cfg.Running, true},
		{cfg.ProneEntering, false},
		{cfg.Prone, false},
		{cfg.ProneExiting, false},
		{cfg.Fallen, false},
		{cfg.Dead, false},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			state.CurrentState = tt.state
			assert.Equal(t, tt.vulnerable, Vulnerable(p))
		})
	}
}

func TestDeathSequenceEndsTheGame(t *testing.T) {
	e := newTestECS(t, testLevel(), 0)
	p := GetPlayer(e)
	KillPlayer(e, p)
	// Killing twice is harmless.
	KillPlayer(e, p)

	total := cfg.Player.DyingDuration + cfg.Player.CollapsedDuration
	for elapsed := frame; elapsed < total; elapsed += frame {
		UpdatePlayer(e)
		assert.False(t, GetGameOver(e).IsOver, "over after %v", elapsed)
	}
	for i := 0; i < 3 && !GetGameOver(e).IsOver; i++ {
		UpdatePlayer(e)
	}
	assert.True(t, GetGameOver(e).IsOver)

	over := 0
	for _, ev := range DrainEvents(e) {
		if ev.Kind == components.EventGameOver {
			over++
		}
	}
	assert.Equal(t, 1, over)
}
