// Package render draws the match with ebiten's vector and text packages.
// Every function here is an ecs renderer reading straight from the world.
package render

import (
	"github.com/automoto/soccer-stars/components"
	cfg "github.com/automoto/soccer-stars/config"
	"github.com/automoto/soccer-stars/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LayerDefault is the only draw layer.
const LayerDefault ecs.LayerID = 0

const lineWidth = 2

// DrawField paints the grass, the halfway line, the center circle and both penalty areas.
func DrawField(e *ecs.ECS, screen *ebiten.Image) {
	fieldEntry, ok := components.Field.First(e.World)
	if !ok {
		return
	}
	field := components.Field.Get(fieldEntry)

	left, top := float32(field.Left), float32(field.Top)
	w, h := float32(field.Width()), float32(field.Height())
	midX := left + w/2
	midY := top + h/2

	vector.FillRect(screen, left, top, w, h, cfg.UI.FieldColor, false)
	vector.StrokeLine(screen, midX, top, midX, top+h, lineWidth, cfg.UI.LineColor, false)
	vector.StrokeCircle(screen, midX, midY, float32(cfg.UI.CenterCircleDiameter/2), lineWidth, cfg.UI.LineColor, true)

	areaW := float32(cfg.UI.PenaltyAreaWidth)
	areaH := float32(cfg.UI.PenaltyAreaHeight)
	areaY := top + (h-areaH)/2
	vector.StrokeRect(screen, left, areaY, areaW, areaH, lineWidth, cfg.UI.LineColor, false)
	vector.StrokeRect(screen, left+w-areaW, areaY, areaW, areaH, lineWidth, cfg.UI.LineColor, false)
}

// DrawGoals fills each goal mouth.
func DrawGoals(e *ecs.ECS, screen *ebiten.Image) {
	tags.Goal.Each(e.World, func(entry *donburi.Entry) {
		r := components.Goal.Get(entry).Rect
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), cfg.UI.GoalColor, false)
	})
}
