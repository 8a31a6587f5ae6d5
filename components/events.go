package components

import (
	"fmt"

	cfg "github.com/automoto/nightfall/config"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// EventKind identifies a discrete outcome emitted to the presentation layer.
type EventKind int

const (
	EventEntityDamaged EventKind = iota
	EventEntityDied
	EventPlayerFell
	EventPlayerDied
	EventOutOfAmmo
	EventAttackLanded
	EventBalloon
	EventGameOver
	EventLevelExit
	EventLevelChanged
	EventWeaponChanged
)

var eventNames = map[EventKind]string{
	EventEntityDamaged: "entity-damaged",
	EventEntityDied:    "entity-died",
	EventPlayerFell:    "player-fell",
	EventPlayerDied:    "player-died",
	EventOutOfAmmo:     "out-of-ammo",
	EventAttackLanded:  "attack-landed",
	EventBalloon:       "balloon",
	EventGameOver:      "game-over",
	EventLevelExit:     "level-exit",
	EventLevelChanged:  "level-changed",
	EventWeaponChanged: "weapon-changed",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Balloon texts
const (
	BalloonOuch  = "Ouch!"
	BalloonHuh   = "huh?"
	BalloonClick = "click"
	BalloonOhNo  = "Oh, no!"
)

// Event is one discrete outcome. Only the fields relevant to Kind are set.
type Event struct {
	Kind      EventKind
	ID        uuid.UUID // subject: damaged, died, balloon owner
	TargetID  uuid.UUID // attack-landed target
	Amount    int
	NewHealth int
	Weapon    cfg.WeaponID
	Text      string
	Level     int
}

func (e Event) String() string {
	switch e.Kind {
	case EventEntityDamaged:
		return fmt.Sprintf("%s{id=%s amount=%d health=%d}", e.Kind, e.ID, e.Amount, e.NewHealth)
	case EventEntityDied:
		return fmt.Sprintf("%s{id=%s}", e.Kind, e.ID)
	case EventAttackLanded:
		return fmt.Sprintf("%s{attacker=%s target=%s}", e.Kind, e.ID, e.TargetID)
	case EventOutOfAmmo, EventWeaponChanged:
		return fmt.Sprintf("%s{weapon=%s}", e.Kind, e.Weapon)
	case EventBalloon:
		return fmt.Sprintf("%s{id=%s text=%q}", e.Kind, e.ID, e.Text)
	case EventLevelChanged:
		return fmt.Sprintf("%s{level=%d}", e.Kind, e.Level)
	default:
		return e.Kind.String()
	}
}

// EventQueueData collects the events of the current tick until the host
// drains them.
type EventQueueData struct {
	Pending []Event
}

var Events = donburi.NewComponentType[EventQueueData]()
