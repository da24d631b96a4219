package systems

import (
	"math"

	"github.com/automoto/soccer-stars/components"
	cfg "github.com/automoto/soccer-stars/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdatePhysics advances every movable body by one fixed tick.
func UpdatePhysics(w donburi.World) {
	components.Physics.Each(w, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		body := components.Body.Get(e)

		applySpin(physics)
		Integrate(body, physics)
		syncObject(e)
	})
}

// Integrate applies friction, snaps slow bodies to rest, then moves the body.
func Integrate(body *components.BodyData, physics *components.PhysicsData) {
	physics.Velocity.X *= physics.Friction
	physics.Velocity.Y *= physics.Friction

	if physics.Speed() < cfg.Physics.StaticEpsilon {
		physics.Velocity = dmath.Vec2{}
	}

	body.Position.X += physics.Velocity.X
	body.Position.Y += physics.Velocity.Y
}

// applySpin curls the velocity by the current spin. Rotation keeps the speed
// unchanged. A resting ball keeps its spin until something moves it.
func applySpin(physics *components.PhysicsData) {
	if physics.Spin == 0 || physics.IsStatic() {
		return
	}

	sin, cos := math.Sincos(physics.Spin)
	vx, vy := physics.Velocity.X, physics.Velocity.Y
	physics.Velocity.X = vx*cos - vy*sin
	physics.Velocity.Y = vx*sin + vy*cos

	physics.Spin *= cfg.Spin.Decay
	if math.Abs(physics.Spin) < cfg.Spin.MinSpin {
		physics.Spin = 0
	}
}
