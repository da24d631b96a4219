package factory

import (
	"github.com/automoto/soccer-stars/archetypes"
	"github.com/automoto/soccer-stars/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(width, height, cellWidth, cellHeight),
	})
	return space
}

// addToSpace registers obj in the world's space if one exists.
func addToSpace(w donburi.World, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// proxyPad grows every broadphase proxy on each side. resolv maps a box to
// cells through its far edge minus one pixel, so an unpadded box can miss a
// neighbour overlapping it by less than a pixel across a cell boundary. The
// exact circle tests decide contact.
const proxyPad = 1.0

// newPaddedObject creates a proxy covering the rectangle (x, y, w, h) plus proxyPad.
func newPaddedObject(x, y, w, h float64, tag string) *resolv.Object {
	pw, ph := w+2*proxyPad, h+2*proxyPad
	obj := resolv.NewObject(x-proxyPad, y-proxyPad, pw, ph, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, pw, ph))
	return obj
}

// newDiskObject creates the bounding-square proxy for a disk centered on (cx, cy).
func newDiskObject(cx, cy, radius float64, tag string) *resolv.Object {
	return newPaddedObject(cx-radius, cy-radius, radius*2, radius*2, tag)
}
