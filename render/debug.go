package render

import (
	"image/color"

	"github.com/automoto/soccer-stars/components"
	cfg "github.com/automoto/soccer-stars/config"
	"github.com/automoto/soccer-stars/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawObjects {
		return
	}

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255}
		} else if obj.HasTags(tags.ResolvBall) {
			c = color.RGBA{255, 0, 255, 255}
		} else if obj.HasTags(tags.ResolvGoal) {
			c = color.RGBA{255, 255, 0, 255}
		}

		vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
	}
}
