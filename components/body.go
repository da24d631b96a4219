package components

import (
	gomath "math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BodyData is the circular footprint shared by players and the ball.
// Position is the center of the disk, not the top-left of its bounding box.
type BodyData struct {
	Position math.Vec2
	Radius   float64
	Spawn    math.Vec2 // where the body returns after a goal
}

var Body = donburi.NewComponentType[BodyData]()

// Contains reports whether p lies on or inside the disk.
func (b *BodyData) Contains(p math.Vec2) bool {
	dx := p.X - b.Position.X
	dy := p.Y - b.Position.Y
	return dx*dx+dy*dy <= b.Radius*b.Radius
}

func length(v math.Vec2) float64 {
	return gomath.Hypot(v.X, v.Y)
}
