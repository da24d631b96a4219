package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Ball   = donburi.NewTag().SetName("Ball")
	Goal   = donburi.NewTag().SetName("Goal")
)

// Resolv tags for broadphase queries
const (
	ResolvPlayer = "Player"
	ResolvBall   = "Ball"
	ResolvGoal   = "goal"
)
