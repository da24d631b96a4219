package components

import (
	cfg "github.com/automoto/soccer-stars/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Rect is an axis-aligned rectangle in playfield pixels.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the centroid of the rectangle.
func (r Rect) Center() math.Vec2 {
	return math.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// OverlapsCircle is the rectangle-circle overlap test: the closest point of the
// rectangle to the circle center must lie within the radius.
func (r Rect) OverlapsCircle(c math.Vec2, radius float64) bool {
	nx := clamp(c.X, r.X, r.X+r.W)
	ny := clamp(c.Y, r.Y, r.Y+r.H)
	dx := c.X - nx
	dy := c.Y - ny
	return dx*dx+dy*dy <= radius*radius
}

// GoalData is a sensor rectangle anchored to the left or right boundary.
type GoalData struct {
	Rect   Rect
	Side   cfg.SideID
	Scorer int // player index credited when the ball enters
}

var Goal = donburi.NewComponentType[GoalData]()

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
