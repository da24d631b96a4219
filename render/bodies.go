package render

import (
	"image/color"

	"github.com/automoto/soccer-stars/components"
	cfg "github.com/automoto/soccer-stars/config"
	"github.com/automoto/soccer-stars/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawBodies draws both players and the ball. The player whose turn it is gets
// a ring while the gate is open.
func DrawBodies(e *ecs.ECS, screen *ebiten.Image) {
	active := -1
	if matchEntry, ok := components.Match.First(e.World); ok {
		if match := components.Match.Get(matchEntry); match.CanShoot {
			active = match.ActivePlayer
		}
	}

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		idx := components.Player.Get(entry).Index
		drawDisk(screen, components.Body.Get(entry), playerColor(idx))
		if idx == active {
			body := components.Body.Get(entry)
			vector.StrokeCircle(screen, float32(body.Position.X), float32(body.Position.Y),
				float32(body.Radius+3), lineWidth, cfg.UI.LineColor, true)
		}
	})

	tags.Ball.Each(e.World, func(entry *donburi.Entry) {
		drawDisk(screen, components.Body.Get(entry), cfg.UI.BallColor)
	})
}

func drawDisk(screen *ebiten.Image, body *components.BodyData, c color.Color) {
	vector.FillCircle(screen, float32(body.Position.X), float32(body.Position.Y), float32(body.Radius), c, true)
}

func playerColor(index int) color.RGBA {
	if index == 1 {
		return cfg.UI.Player2Color
	}
	return cfg.UI.Player1Color
}
