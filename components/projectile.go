package components

import (
	"github.com/automoto/nightfall/config"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Kind    config.ProjectileKind
	Damage  int
	OwnerID uuid.UUID
	// Spent is set once the projectile has landed a hit.
	Spent bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()
