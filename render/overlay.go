package render

import (
	"github.com/automoto/soccer-stars/components"
	cfg "github.com/automoto/soccer-stars/config"
	"github.com/automoto/soccer-stars/fonts"
	"github.com/automoto/soccer-stars/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawMessage renders the active toast centered just below the header.
func DrawMessage(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.MessageState.First(e.World)
	if !ok {
		return
	}
	state := components.MessageState.Get(entry)
	if state.Text == "" {
		return
	}

	face := fonts.Regular.Get()
	bounds := text.BoundString(face, state.Text) //nolint:staticcheck // TODO: migrate to text/v2
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()

	padding := cfg.Message.BoxPadding
	boxWidth := float32(textWidth) + float32(padding)*2
	boxHeight := float32(textHeight) + float32(padding)*2

	screenWidth := float64(screen.Bounds().Dx())
	boxX := float32((screenWidth - float64(boxWidth)) / 2)
	boxY := float32(float64(cfg.C.HeaderHeight) + cfg.Message.TopMargin)

	vector.FillRect(screen, boxX, boxY, boxWidth, boxHeight, cfg.Message.BoxColor, false)

	textX := int(boxX + float32(padding))
	textY := int(boxY + float32(padding) + float32(textHeight))
	text.Draw(screen, state.Text, face, textX, textY, cfg.Message.TextColor)
}

// DrawPause dims the screen and shows the key hints while paused.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	if !systems.IsPaused(e.World) {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	title := fonts.Banner.Get()
	titleWidth := font.MeasureString(title, cfg.Pause.Title).Ceil()
	text.Draw(screen, cfg.Pause.Title, title, int(width)/2-titleWidth/2, int(height/2), cfg.Pause.TextColor)

	hintFont := fonts.Small.Get()
	hintWidth := font.MeasureString(hintFont, cfg.Pause.Hint).Ceil()
	text.Draw(screen, cfg.Pause.Hint, hintFont, int(width)/2-hintWidth/2, int(height)-12, cfg.Pause.TextColor)
}
