package leveldata

import (
	"math"
	"math/rand"

	"github.com/automoto/nightfall/config"
)

// Populate returns a copy of the template with its Layout filled in: cars,
// pits, dirt streams and enemy spawns scattered past the first screen. The
// same seed always yields the same level.
func (l *Level) Populate(rng *rand.Rand) *Level {
	out := l.Clone()
	band := l.BandBottom - l.BandTop

	startX := float64(config.C.Width)
	endX := l.Width - config.World.ObstacleGap
	for i := 0; i < l.Layout.Cars; i++ {
		x := between(rng, startX, endX)
		y := l.BandTop + 30 + rng.Float64()*(band-60)
		out.Obstacles = append(out.Obstacles, CenterRect(x, y, config.Hazard.ObstacleW, config.Hazard.ObstacleH))
	}
	for i := 0; i < l.Layout.Pits; i++ {
		x := between(rng, startX, endX)
		y := l.BandTop + 20 + rng.Float64()*(band-40)
		out.Pits = append(out.Pits, CenterRect(x, y, config.Hazard.PitW, config.Hazard.PitH))
	}

	for i := 0; i < l.Layout.Streams; i++ {
		out.Dirt = append(out.Dirt, stream(rng, l)...)
	}

	spawnStart := config.World.SpawnStartX
	spawnEnd := l.Width - config.World.SpawnEndGap
	for i := 0; i < l.Layout.Zombies; i++ {
		out.ZombieSpawns = append(out.ZombieSpawns, spawn(rng, l, spawnStart, spawnEnd))
	}
	for i := 0; i < l.Layout.Werewolves; i++ {
		out.WerewolfSpawns = append(out.WerewolfSpawns, spawn(rng, l, spawnStart, spawnEnd))
	}

	return out
}

// stream lays a sine-curved dirt stream across the band, top to bottom.
func stream(rng *rand.Rand, l *Level) []Segment {
	originX := between(rng, config.World.StreamStartX, l.Width-config.World.StreamEndGap)
	amplitude := 30 + rng.Float64()*50
	frequency := 0.02 + rng.Float64()*0.03
	phase := rng.Float64() * math.Pi * 2

	top := l.BandTop + 10
	length := (l.BandBottom - 10) - top
	count := int(length / config.World.SegmentStep)

	minScale, maxScale := config.Hazard.DirtSegmentScale[0], config.Hazard.DirtSegmentScale[1]
	segments := make([]Segment, 0, count)
	for j := 0; j < count; j++ {
		t := float64(j) / float64(count)
		offset := math.Sin(t*math.Pi*2*frequency*20+phase) * amplitude
		jitterX := (rng.Float64() - 0.5) * 6
		jitterY := (rng.Float64() - 0.5) * 4
		scale := minScale + rng.Float64()*(maxScale-minScale)
		segments = append(segments, Segment{
			X:          originX + offset + jitterX,
			Y:          top + t*length + jitterY,
			Radius:     config.Hazard.DirtBaseRadius * scale,
			Collidable: j%config.World.SegmentKeep == 0,
		})
	}
	return segments
}

func spawn(rng *rand.Rand, l *Level, startX, endX float64) Spawn {
	return Spawn{
		X:           between(rng, startX, endX),
		Y:           l.BandTop + 20 + rng.Float64()*(l.BandBottom-l.BandTop-40),
		FacingRight: rng.Float64() > 0.5,
	}
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
