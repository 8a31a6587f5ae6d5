package components

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// Roller yields uniform values in [0,1). *rand.Rand satisfies it.
type Roller interface {
	Float64() float64
}

// ClockData is the per-tick time step plus the random sources used by every
// probabilistic rule and by entity id allocation.
type ClockData struct {
	Delta   time.Duration
	Elapsed time.Duration
	Tick    uint64
	Rand    Roller
	IDs     io.Reader
}

var Clock = donburi.NewComponentType[ClockData]()

// Seconds returns Delta in seconds.
func (c *ClockData) Seconds() float64 { return c.Delta.Seconds() }

// Roll returns the next value of Rand, or 0 without a source.
func (c *ClockData) Roll() float64 {
	if c.Rand == nil {
		return 0
	}
	return c.Rand.Float64()
}

// NewID allocates an entity id. With a seeded IDs reader the sequence is
// reproducible.
func (c *ClockData) NewID() uuid.UUID {
	if c.IDs != nil {
		if id, err := uuid.NewRandomFromReader(c.IDs); err == nil {
			return id
		}
	}
	return uuid.New()
}
