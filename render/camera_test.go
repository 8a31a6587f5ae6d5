package render

import (
	"testing"

	"github.com/automoto/nightfall/sim"
	"github.com/stretchr/testify/assert"
)

func snapWithPlayerAt(x float64) sim.Snapshot {
	return sim.Snapshot{Entities: []sim.EntityView{{Kind: sim.KindPlayer, X: x}}}
}

func TestCameraFollow(t *testing.T) {
	tests := []struct {
		name    string
		playerX float64
		want    float64
	}{
		{"level start", 60, 0},
		{"mid level", 2000, 1600},
		{"level end", 8790, 8000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Camera
			c.Follow(snapWithPlayerAt(tt.playerX), 8800)
			assert.Equal(t, tt.want, c.X)
		})
	}
}

func TestCameraNarrowLevel(t *testing.T) {
	var c Camera
	c.Follow(snapWithPlayerAt(500), 600)
	assert.Zero(t, c.X)
}

func TestCameraKeepsPositionWithoutPlayer(t *testing.T) {
	c := Camera{X: 300}
	c.Follow(sim.Snapshot{}, 8800)
	assert.Equal(t, 300.0, c.X)
}

func TestCameraVisible(t *testing.T) {
	c := Camera{X: 1000}
	assert.True(t, c.Visible(990, 1010))
	assert.True(t, c.Visible(1790, 1900))
	assert.False(t, c.Visible(900, 990))
	assert.False(t, c.Visible(1801, 1900))
}
