package components

import (
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// IdentityData gives an entity an id that stays stable across ticks and is
// safe to hand to the presentation layer.
type IdentityData struct {
	ID uuid.UUID
}

var Identity = donburi.NewComponentType[IdentityData]()
