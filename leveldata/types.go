// Package leveldata describes the static layout of a level: the play band,
// hazards and spawn points. It has no dependencies on ebitengine, donburi or
// resolv.
package leveldata

// Rect is an axis-aligned box. X, Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// CenterRect builds a Rect of size w×h centered on (cx, cy).
func CenterRect(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Segment is one circle of a dirt stream. Only collidable segments slow the
// player; the rest are decoration.
type Segment struct {
	X, Y       float64
	Radius     float64
	Collidable bool
}

// Spawn is an actor spawn point (center of the body).
type Spawn struct {
	X, Y        float64
	FacingRight bool
}

// Layout holds the counts used to populate a level procedurally.
type Layout struct {
	Cars       int
	Pits       int
	Streams    int
	Zombies    int
	Werewolves int
}

// Level is the full static description of one level.
type Level struct {
	Name  string
	Index int

	Width, Height       float64
	BandTop, BandBottom float64
	// HasExit marks levels that end when the player reaches the right edge.
	HasExit bool

	Obstacles      []Rect
	Pits           []Rect
	Dirt           []Segment
	ZombieSpawns   []Spawn
	WerewolfSpawns []Spawn
	PlayerSpawn    Spawn

	Layout Layout
}

// Clone returns a deep copy so a populated level never aliases the template.
func (l *Level) Clone() *Level {
	c := *l
	c.Obstacles = append([]Rect(nil), l.Obstacles...)
	c.Pits = append([]Rect(nil), l.Pits...)
	c.Dirt = append([]Segment(nil), l.Dirt...)
	c.ZombieSpawns = append([]Spawn(nil), l.ZombieSpawns...)
	c.WerewolfSpawns = append([]Spawn(nil), l.WerewolfSpawns...)
	return &c
}
