package components

import (
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ParticleData is a short-lived dirt particle.
type ParticleData struct {
	Life time.Duration
}

var Particle = donburi.NewComponentType[ParticleData]()

// VisualData is a presentation offset eased over the current phase.
// It never feeds back into collision.
type VisualData struct {
	OffsetY float64
	Tween   *gween.Tween
}

var Visual = donburi.NewComponentType[VisualData]()
