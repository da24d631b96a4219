package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PhysicsData struct {
	Velocity        math.Vec2
	Friction        float64 // velocity multiplier per tick
	WallRestitution float64 // 1.0 reflects without loss
	Mass            float64
	Spin            float64 // radians per tick the velocity is rotated by (ball curl)
}

var Physics = donburi.NewComponentType[PhysicsData]()

// Speed returns the velocity magnitude.
func (p *PhysicsData) Speed() float64 {
	return length(p.Velocity)
}

// IsStatic reports whether the body is at rest.
func (p *PhysicsData) IsStatic() bool {
	return p.Velocity.X == 0 && p.Velocity.Y == 0
}

// Stop zeroes velocity and spin.
func (p *PhysicsData) Stop() {
	p.Velocity = math.Vec2{}
	p.Spin = 0
}
