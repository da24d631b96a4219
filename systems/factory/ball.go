package factory

import (
	"github.com/automoto/soccer-stars/archetypes"
	"github.com/automoto/soccer-stars/components"
	cfg "github.com/automoto/soccer-stars/config"
	"github.com/automoto/soccer-stars/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateBall spawns the ball centered on spawn.
func CreateBall(w donburi.World, spawn math.Vec2) *donburi.Entry {
	physics := bodyPhysics("ball", cfg.Ball)
	ball := archetypes.Ball.Spawn(w)

	radius := cfg.Ball.Radius()
	obj := newDiskObject(spawn.X, spawn.Y, radius, tags.ResolvBall)
	obj.Data = ball
	components.Object.SetValue(ball, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	components.Body.SetValue(ball, components.BodyData{
		Position: spawn,
		Radius:   radius,
		Spawn:    spawn,
	})
	components.Physics.SetValue(ball, physics)

	return ball
}
