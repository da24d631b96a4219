package render

import (
	"image/color"
	"math"

	"github.com/automoto/soccer-stars/components"
	cfg "github.com/automoto/soccer-stars/config"
	"github.com/automoto/soccer-stars/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawAim draws the shot arrow from the selected disk, pointing where it will
// travel, plus the force meter above it.
func DrawAim(e *ecs.ECS, screen *ebiten.Image) {
	aim, ratio, ok := systems.AimVector(e.World)
	if !ok {
		return
	}
	matchEntry, _ := components.Match.First(e.World)
	body := components.Body.Get(components.Drag.Get(matchEntry).Selected)

	cx, cy := body.Position.X, body.Position.Y
	endX, endY := cx-aim.X, cy-aim.Y

	vector.StrokeLine(screen, float32(cx), float32(cy), float32(endX), float32(endY), lineWidth, cfg.UI.AimColor, true)
	if aim.X != 0 || aim.Y != 0 {
		for _, tip := range arrowHead(cx, cy, endX, endY, cfg.UI.ArrowSize) {
			vector.StrokeLine(screen, float32(endX), float32(endY), float32(tip[0]), float32(tip[1]), lineWidth, cfg.UI.AimColor, true)
		}
	}

	barX := float32(cx - cfg.UI.MeterWidth/2)
	barY := float32(cy - body.Radius - cfg.UI.MeterOffset)
	vector.FillRect(screen, barX, barY, float32(cfg.UI.MeterWidth), float32(cfg.UI.MeterHeight), cfg.UI.MeterBackground, false)
	vector.FillRect(screen, barX, barY, float32(cfg.UI.MeterWidth*ratio), float32(cfg.UI.MeterHeight), meterColor(ratio), false)
}

// arrowHead returns the two barb ends of an arrow from start to end, each
// size long and 30 degrees off the shaft.
func arrowHead(startX, startY, endX, endY, size float64) [2][2]float64 {
	angle := math.Atan2(endY-startY, endX-startX)
	return [2][2]float64{
		{endX - size*math.Cos(angle-math.Pi/6), endY - size*math.Sin(angle-math.Pi/6)},
		{endX - size*math.Cos(angle+math.Pi/6), endY - size*math.Sin(angle+math.Pi/6)},
	}
}

// meterColor fades from yellow at no force to red at full force.
func meterColor(ratio float64) color.RGBA {
	return color.RGBA{R: 255, G: uint8(255 * (1 - ratio)), B: 0, A: 255}
}
