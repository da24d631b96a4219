package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// DragData is the in-progress pull-back gesture. Idle when Active is false.
type DragData struct {
	Active   bool
	Selected *donburi.Entry // the active player's disk
	Start    math.Vec2
	Current  math.Vec2

	SpinEnabled bool
	SpinAngle   float64 // atan2 of the drag vector, tracked while spin mode is on
}

var Drag = donburi.NewComponentType[DragData]()

// Vector returns current - start.
func (d *DragData) Vector() math.Vec2 {
	return math.Vec2{X: d.Current.X - d.Start.X, Y: d.Current.Y - d.Start.Y}
}

// Clear returns the gesture to idle, keeping the spin mode setting.
func (d *DragData) Clear() {
	d.Active = false
	d.Selected = nil
	d.Start = math.Vec2{}
	d.Current = math.Vec2{}
	d.SpinAngle = 0
}
