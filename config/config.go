package config

import (
	"image/color"
	"math"
	"time"
)

// PlayerConfig contains all player-related tuning values
type PlayerConfig struct {
	// Movement
	Speed float64 // px/s

	// Combat
	MaxHealth       int
	PunchCooldown   time.Duration
	RangedCooldown  time.Duration
	CollisionRadius float64

	// Prone transitions
	ProneEnterDuration time.Duration
	ProneExitDuration  time.Duration
	ProneOffsetY       float64 // visual sink while prone

	// Fallen sequence
	FallDropDuration time.Duration   // falling phase
	FallenDuration   time.Duration   // from the fall until get-up starts
	GetUpPhases      []time.Duration // three get-up poses
	FallOffsetY      float64         // visual drop while down

	// Death sequence
	DyingDuration     time.Duration // "Oh, no!" balloon
	CollapsedDuration time.Duration // fallen pose before game over

	// Dimensions
	Width  float64
	Height float64

	StartX float64
}

// ZombieConfig contains zombie tuning values
type ZombieConfig struct {
	MaxHealth       int
	Speed           float64 // px/s
	CollisionRadius float64
	AttackMargin    float64 // added to the radius sum for attack range
	WindupDuration  time.Duration
	Damage          int

	RangedStun     time.Duration
	MeleeStun      time.Duration
	KnockbackDecay float64 // per tick multiplier

	SeparationPush float64 // fraction of the overlap removed per neighbour

	SpawnCount    int
	Width, Height float64
}

// WerewolfConfig contains werewolf tuning values
type WerewolfConfig struct {
	MaxHealth  int
	Speed      float64 // px/s
	BiteDamage int
	JumpDamage int // a third of the player's max health, rounded up
	BiteRange  float64
	Spacing    float64 // engage range, landing offset and jump hit range

	CrouchChance    float64 // per tick while in engage range
	CrouchDuration  time.Duration
	TelegraphWindow time.Duration // last part of the crouch

	JumpDuration  time.Duration
	JumpArcHeight float64
	JumpHitAt     float64 // progress at which the mid-air hit is tested

	// Cooldowns are Base + roll*Spread
	InitialJumpCooldownBase   time.Duration
	InitialJumpCooldownSpread time.Duration
	JumpCooldownBase          time.Duration
	JumpCooldownSpread        time.Duration
	PelletJumpCooldownBase    time.Duration
	PelletJumpCooldownSpread  time.Duration

	BiteCooldown        time.Duration
	RetreatBiteCooldown time.Duration

	RetreatSpacings       float64 // retreat distance after bite/jump, in Spacing units
	PelletRetreatSpacings float64 // retreat distance after a pellet hit

	SpawnCount    int
	Width, Height float64
}

// WeaponConfig contains a single weapon's values
type WeaponConfig struct {
	Damage      int
	StartAmmo   int // 0 = unlimited
	Projectiles int
	Spread      float64 // perpendicular offset between pellets
	ProneSpread float64
}

// WeaponsConfig contains all weapon-related values
type WeaponsConfig struct {
	Fists   WeaponConfig
	Gun     WeaponConfig
	Shotgun WeaponConfig

	ProjectileSpeed float64 // px/s
	BoundsMargin    float64 // projectiles live until this far outside the level

	BulletWidth, BulletHeight float64
	PelletWidth, PelletHeight float64

	// Melee probe
	PunchRange          float64
	PunchDepthTolerance float64
	KnockbackSpeed      float64
	KnockbackVertical   float64 // vertical attenuation of the knockback
}

// HazardConfig contains collision and hazard values
type HazardConfig struct {
	DepthTolerance   float64 // max foot-Y difference for obstacle blocking
	PitBottomGrace   float64
	DirtFootRadius   float64 // added to the dirt segment radius
	SpeedMultiplier  float64
	ShotgunFallOdds  float64
	PunchFallOdds    float64
	ObstacleW        float64
	ObstacleH        float64
	PitW             float64
	PitH             float64
	DirtSegmentScale [2]float64 // min, max
	DirtBaseRadius   float64
}

// WorldConfig contains level layout values
type WorldConfig struct {
	LevelWidth   float64
	PlayAreaTop  float64
	PlayAreaBot  float64
	ExitMargin   float64 // distance from the level end that exits level 0
	LevelCount   int
	SpawnStartX  float64
	SpawnEndGap  float64
	ObstacleGap  float64
	CarCount     int
	PitCount     int
	StreamCount  int
	StreamStartX float64
	StreamEndGap float64
	SegmentStep  float64
	SegmentKeep  int // every Nth segment is collidable
	StartPitX    float64
	StartPitDY   float64
	SpaceCell    int
}

// ParticleConfig contains dirt particle values
type ParticleConfig struct {
	SpawnInterval time.Duration
	RiseBase      float64
	RiseSpread    float64
	DriftSpread   float64
	LifeBase      time.Duration
	LifeSpread    time.Duration
	Gravity       float64
}

// UIConfig contains presentation values shared by the renderers
type UIConfig struct {
	HealthGreenAbove  float64
	HealthYellowAbove float64
	HealthGreen       color.RGBA
	HealthYellow      color.RGBA
	HealthRed         color.RGBA
	BalloonDuration   time.Duration
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawHazards bool // outline pits and dirt segments
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Zombie ZombieConfig
var Werewolf WerewolfConfig
var Weapons WeaponsConfig
var Hazard HazardConfig
var World WorldConfig
var Particles ParticleConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
	}

	Player = PlayerConfig{
		Speed: 200,

		MaxHealth:       10,
		PunchCooldown:   400 * time.Millisecond,
		RangedCooldown:  300 * time.Millisecond,
		CollisionRadius: 18,

		ProneEnterDuration: 120 * time.Millisecond,
		ProneExitDuration:  640 * time.Millisecond,
		ProneOffsetY:       8,

		FallDropDuration: 200 * time.Millisecond,
		FallenDuration:   2000 * time.Millisecond,
		GetUpPhases: []time.Duration{
			180 * time.Millisecond,
			180 * time.Millisecond,
			140 * time.Millisecond,
		},
		FallOffsetY: 6,

		DyingDuration:     1000 * time.Millisecond,
		CollapsedDuration: 500 * time.Millisecond,

		Width:  40,
		Height: 52,

		StartX: 60,
	}

	Zombie = ZombieConfig{
		MaxHealth:       5,
		Speed:           60,
		CollisionRadius: 16,
		AttackMargin:    5,
		WindupDuration:  1500 * time.Millisecond,
		Damage:          1,

		RangedStun:     600 * time.Millisecond,
		MeleeStun:      300 * time.Millisecond,
		KnockbackDecay: 0.9,

		SeparationPush: 0.5,

		SpawnCount: 30,
		Width:      36,
		Height:     48,
	}

	Werewolf = WerewolfConfig{
		MaxHealth:  6,
		Speed:      230,
		BiteDamage: 2,
		JumpDamage: int(math.Ceil(float64(Player.MaxHealth) / 3)),
		BiteRange:  24,
		Spacing:    40,

		CrouchChance:    0.25,
		CrouchDuration:  1000 * time.Millisecond,
		TelegraphWindow: 100 * time.Millisecond,

		JumpDuration:  350 * time.Millisecond,
		JumpArcHeight: 30,
		JumpHitAt:     0.5,

		InitialJumpCooldownBase:   1000 * time.Millisecond,
		InitialJumpCooldownSpread: 2000 * time.Millisecond,
		JumpCooldownBase:          2000 * time.Millisecond,
		JumpCooldownSpread:        2000 * time.Millisecond,
		PelletJumpCooldownBase:    1500 * time.Millisecond,
		PelletJumpCooldownSpread:  1500 * time.Millisecond,

		BiteCooldown:        1000 * time.Millisecond,
		RetreatBiteCooldown: 800 * time.Millisecond,

		RetreatSpacings:       3,
		PelletRetreatSpacings: 4,

		SpawnCount: 6,
		Width:      38,
		Height:     50,
	}

	Weapons = WeaponsConfig{
		Fists:   WeaponConfig{Damage: 1},
		Gun:     WeaponConfig{Damage: 3, StartAmmo: 10, Projectiles: 1},
		Shotgun: WeaponConfig{Damage: 2, StartAmmo: 4, Projectiles: 3, Spread: 20, ProneSpread: 8},

		ProjectileSpeed: 500,
		BoundsMargin:    20,

		BulletWidth:  12,
		BulletHeight: 8,
		PelletWidth:  8,
		PelletHeight: 8,

		PunchRange:          40,
		PunchDepthTolerance: 25, // obstacle tolerance + 10
		KnockbackSpeed:      150,
		KnockbackVertical:   0.3,
	}

	Hazard = HazardConfig{
		DepthTolerance:   15,
		PitBottomGrace:   10,
		DirtFootRadius:   15,
		SpeedMultiplier:  0.4,
		ShotgunFallOdds:  0.4,
		PunchFallOdds:    0.15,
		ObstacleW:        80,
		ObstacleH:        55,
		PitW:             60,
		PitH:             40,
		DirtSegmentScale: [2]float64{0.8, 1.4},
		DirtBaseRadius:   12,
	}

	World = WorldConfig{
		LevelWidth:   float64(C.Width) * 11,
		PlayAreaTop:  350,
		PlayAreaBot:  550,
		ExitMargin:   40,
		LevelCount:   2,
		SpawnStartX:  float64(C.Width) + 200,
		SpawnEndGap:  200,
		ObstacleGap:  200,
		CarCount:     25,
		PitCount:     20,
		StreamCount:  15,
		StreamStartX: float64(C.Width) / 2,
		StreamEndGap: 400,
		SegmentStep:  10,
		SegmentKeep:  3,
		StartPitX:    140,
		StartPitDY:   20,
		SpaceCell:    32,
	}

	Particles = ParticleConfig{
		SpawnInterval: 80 * time.Millisecond,
		RiseBase:      30,
		RiseSpread:    40,
		DriftSpread:   20,
		LifeBase:      500 * time.Millisecond,
		LifeSpread:    300 * time.Millisecond,
		Gravity:       60,
	}

	UI = UIConfig{
		HealthGreenAbove:  0.6,
		HealthYellowAbove: 0.3,
		HealthGreen:       Green,
		HealthYellow:      Yellow,
		HealthRed:         Red,
		BalloonDuration:   1000 * time.Millisecond,
	}

	Debug = DebugConfig{
		DrawHazards: false,
	}
}
