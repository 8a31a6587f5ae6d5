package components

import (
	cfg "github.com/automoto/nightfall/config"
	"github.com/yohamta/donburi"
)

type HealthData struct {
	Current int
	Max     int
}

var Health = donburi.NewComponentType[HealthData]()

// Fraction returns Current/Max in [0,1].
func (h *HealthData) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	f := float64(h.Current) / float64(h.Max)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Alive reports whether the entity still has health left.
func (h *HealthData) Alive() bool { return h.Current > 0 }

// Health bands used by health bars.
const (
	BandGreen  = "green"
	BandYellow = "yellow"
	BandRed    = "red"
)

// Band classifies the remaining health for display.
func (h *HealthData) Band() string {
	f := h.Fraction()
	switch {
	case f > cfg.UI.HealthGreenAbove:
		return BandGreen
	case f > cfg.UI.HealthYellowAbove:
		return BandYellow
	default:
		return BandRed
	}
}
