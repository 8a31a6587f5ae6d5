package render

import (
	"time"

	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/google/uuid"
)

type balloon struct {
	text string
	left time.Duration
}

// Balloons keeps the speech balloons raised by balloon events until they
// expire. An owner shows one balloon at a time; a newer one replaces it.
type Balloons struct {
	active map[uuid.UUID]*balloon
}

func NewBalloons() *Balloons {
	return &Balloons{active: map[uuid.UUID]*balloon{}}
}

// Observe picks up the balloon events among events.
func (b *Balloons) Observe(events []components.Event) {
	for _, ev := range events {
		if ev.Kind != components.EventBalloon {
			continue
		}
		b.active[ev.ID] = &balloon{text: ev.Text, left: cfg.UI.BalloonDuration}
	}
}

// Update ages every balloon by delta.
func (b *Balloons) Update(delta time.Duration) {
	for id, bl := range b.active {
		bl.left -= delta
		if bl.left <= 0 {
			delete(b.active, id)
		}
	}
}

// Text returns the balloon currently shown over id.
func (b *Balloons) Text(id uuid.UUID) (string, bool) {
	bl, ok := b.active[id]
	if !ok {
		return "", false
	}
	return bl.text, true
}

// Clear drops every balloon, e.g. on a level change.
func (b *Balloons) Clear() {
	clear(b.active)
}
