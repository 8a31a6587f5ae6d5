package config

// StateID identifies an entity state for logic and animation.
type StateID int

const (
	StateNone StateID = iota

	// Player movement states
	Normal
	Running
	ProneEntering
	Prone
	ProneExiting
	Fallen
	Dead

	// Zombie AI states
	Seek
	Windup
	Stunned

	// Werewolf AI states
	Approach
	Crouch
	Jump
	Bite
	Retreat
)

// StateToName maps StateID to the tag reported to renderers.
var StateToName = map[StateID]string{
	StateNone: "none",

	Normal:        "normal",
	Running:       "running",
	ProneEntering: "prone-entering",
	Prone:         "prone",
	ProneExiting:  "prone-exiting",
	Fallen:        "fallen",
	Dead:          "dead",

	Seek:    "seek",
	Windup:  "windup",
	Stunned: "stunned",

	Approach: "approach",
	Crouch:   "crouch",
	Jump:     "jump",
	Bite:     "bite",
	Retreat:  "retreat",
}

func (s StateID) String() string {
	if name, ok := StateToName[s]; ok {
		return name
	}
	return "unknown"
}

// FallPhase is a sub-phase of the fallen state.
type FallPhase int

const (
	FallDropping FallPhase = iota
	FallDown
	FallGetUp1
	FallGetUp2
	FallGetUp3
)

// DeathPhase is a sub-phase of the dead state.
type DeathPhase int

const (
	DeathDying DeathPhase = iota
	DeathCollapsed
	DeathOver
)

// WeaponID identifies a player weapon.
type WeaponID int

const (
	Fists WeaponID = iota
	Gun
	Shotgun
)

var weaponNames = map[WeaponID]string{
	Fists:   "fists",
	Gun:     "gun",
	Shotgun: "shotgun",
}

func (w WeaponID) String() string {
	if name, ok := weaponNames[w]; ok {
		return name
	}
	return "unknown"
}

// Weapon returns the tuning values for w.
func (w WeaponID) Weapon() WeaponConfig {
	switch w {
	case Gun:
		return Weapons.Gun
	case Shotgun:
		return Weapons.Shotgun
	default:
		return Weapons.Fists
	}
}

// ProjectileKind separates single bullets from shotgun pellets.
type ProjectileKind int

const (
	Bullet ProjectileKind = iota
	Pellet
)

func (k ProjectileKind) String() string {
	if k == Pellet {
		return "pellet"
	}
	return "bullet"
}
