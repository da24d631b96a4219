package components

import "github.com/yohamta/donburi"

// FieldData is the playable area. Top is inset by the header height.
type FieldData struct {
	Left, Top, Right, Bottom float64
}

var Field = donburi.NewComponentType[FieldData]()

// Width of the playable area.
func (f *FieldData) Width() float64 {
	return f.Right - f.Left
}

// Height of the playable area.
func (f *FieldData) Height() float64 {
	return f.Bottom - f.Top
}
