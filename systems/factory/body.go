package factory

import (
	"fmt"

	"github.com/automoto/soccer-stars/components"
	cfg "github.com/automoto/soccer-stars/config"
)

// bodyPhysics builds the resting physics state of a disk. It panics on a
// non-positive mass, which collision response divides by.
func bodyPhysics(kind string, body cfg.BodyConfig) components.PhysicsData {
	if body.Mass <= 0 {
		panic(fmt.Sprintf("%s mass must be positive, got %v", kind, body.Mass))
	}
	return components.PhysicsData{
		Friction:        cfg.Physics.Friction,
		WallRestitution: body.WallRestitution,
		Mass:            body.Mass,
	}
}
