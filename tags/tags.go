package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Zombie     = donburi.NewTag().SetName("Zombie")
	Werewolf   = donburi.NewTag().SetName("Werewolf")
	Projectile = donburi.NewTag().SetName("Projectile")
	Particle   = donburi.NewTag().SetName("Particle")
	Obstacle   = donburi.NewTag().SetName("Obstacle")
	Pit        = donburi.NewTag().SetName("Pit")
	Dirt       = donburi.NewTag().SetName("Dirt")
)

// Resolv tags for the static geometry broadphase
const (
	ResolvObstacle = "obstacle"
	ResolvPit      = "pit"
	ResolvDirt     = "dirt"
	ResolvProbe    = "probe"
)
