package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the broadphase proxy of an entity in the match's resolv space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SyncTo moves the object so its bounding box is centered on (cx, cy).
func (o *ObjectData) SyncTo(cx, cy float64) {
	o.X = cx - o.W/2
	o.Y = cy - o.H/2
	o.Update()
}

// SpaceData holds the broadphase grid shared by every body and goal.
type SpaceData struct {
	*resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()
