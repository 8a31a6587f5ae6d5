package sim

import (
	"sort"

	"github.com/automoto/nightfall/components"
	"github.com/automoto/nightfall/systems"
	"github.com/automoto/nightfall/systems/factory"
	"github.com/automoto/nightfall/tags"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// EntityKind names the kind of an entity in a snapshot.
type EntityKind string

const (
	KindPlayer     EntityKind = "player"
	KindZombie     EntityKind = "zombie"
	KindWerewolf   EntityKind = "werewolf"
	KindProjectile EntityKind = "projectile"
	KindParticle   EntityKind = "particle"
)

// EntityView is the renderer-facing state of one entity.
type EntityView struct {
	ID           uuid.UUID  `yaml:"id,omitempty"`
	Kind         EntityKind `yaml:"kind"`
	X            float64    `yaml:"x"`
	Y            float64    `yaml:"y"`
	Width        float64    `yaml:"width"`
	Height       float64    `yaml:"height"`
	FacingRight  bool       `yaml:"facing_right"`
	State        string     `yaml:"state,omitempty"`
	Health       float64    `yaml:"health,omitempty"`
	Depth        float64    `yaml:"depth"`
	OffsetY      float64    `yaml:"offset_y,omitempty"`
	Telegraphing bool       `yaml:"telegraphing,omitempty"`
}

// HUD is the player's status line.
type HUD struct {
	Weapon      string  `yaml:"weapon"`
	GunAmmo     int     `yaml:"gun_ammo"`
	ShotgunAmmo int     `yaml:"shotgun_ammo"`
	Health      int     `yaml:"health"`
	MaxHealth   int     `yaml:"max_health"`
	Fraction    float64 `yaml:"fraction"`
	Band        string  `yaml:"band"`
}

// Snapshot is an immutable copy of the world after a tick. Entities are
// sorted by depth, back to front.
type Snapshot struct {
	Tick      uint64       `yaml:"tick"`
	Level     int          `yaml:"level"`
	LevelName string       `yaml:"level_name"`
	Paused    bool         `yaml:"paused"`
	Exited    bool         `yaml:"exited"`
	GameOver  bool         `yaml:"game_over"`
	HUD       HUD          `yaml:"hud"`
	Entities  []EntityView `yaml:"entities"`
}

// Snapshot copies the current state out of the world.
func (s *Simulation) Snapshot() Snapshot {
	e := s.ecs
	snap := Snapshot{
		Tick:     factory.Clock(e).Tick,
		Paused:   systems.GetPause(e).IsPaused,
		GameOver: systems.GetGameOver(e).IsOver,
	}
	if level := systems.GetLevel(e); level != nil {
		snap.Level = level.Index
		snap.LevelName = level.Name
		snap.Exited = level.Exited
	}

	if p := systems.GetPlayer(e); p != nil {
		player := components.Player.Get(p)
		hp := components.Health.Get(p)
		snap.HUD = HUD{
			Weapon:      player.Weapon.String(),
			GunAmmo:     player.GunAmmo,
			ShotgunAmmo: player.ShotgunAmmo,
			Health:      hp.Current,
			MaxHealth:   hp.Max,
			Fraction:    hp.Fraction(),
			Band:        hp.Band(),
		}
	}

	add := func(kind EntityKind) func(*donburi.Entry) {
		return func(entry *donburi.Entry) {
			snap.Entities = append(snap.Entities, view(entry, kind))
		}
	}
	tags.Player.Each(e.World, add(KindPlayer))
	tags.Zombie.Each(e.World, add(KindZombie))
	tags.Werewolf.Each(e.World, add(KindWerewolf))
	tags.Projectile.Each(e.World, add(KindProjectile))
	tags.Particle.Each(e.World, add(KindParticle))

	sort.SliceStable(snap.Entities, func(i, j int) bool {
		return snap.Entities[i].Depth < snap.Entities[j].Depth
	})
	return snap
}

func view(entry *donburi.Entry, kind EntityKind) EntityView {
	body := components.Body.Get(entry)
	v := EntityView{
		Kind:        kind,
		X:           body.Position.X,
		Y:           body.Position.Y,
		Width:       body.Width,
		Height:      body.Height,
		FacingRight: body.FacingRight(),
		Depth:       body.Depth,
	}
	if entry.HasComponent(components.Identity) {
		v.ID = components.Identity.Get(entry).ID
	}
	if entry.HasComponent(components.State) {
		v.State = components.State.Get(entry).CurrentState.String()
	}
	if entry.HasComponent(components.Health) {
		v.Health = components.Health.Get(entry).Fraction()
	}
	if entry.HasComponent(components.Visual) {
		v.OffsetY = components.Visual.Get(entry).OffsetY
	}
	if entry.HasComponent(components.Werewolf) {
		v.Telegraphing = components.Werewolf.Get(entry).Telegraphing(components.State.Get(entry).CurrentState)
	}
	if entry.HasComponent(components.Projectile) {
		v.State = components.Projectile.Get(entry).Kind.String()
	}
	return v
}

// Player returns the player's view, or false when no player exists.
func (s Snapshot) Player() (EntityView, bool) {
	for _, v := range s.Entities {
		if v.Kind == KindPlayer {
			return v, true
		}
	}
	return EntityView{}, false
}

// Count returns how many entities of kind the snapshot holds.
func (s Snapshot) Count(kind EntityKind) int {
	n := 0
	for _, v := range s.Entities {
		if v.Kind == kind {
			n++
		}
	}
	return n
}
