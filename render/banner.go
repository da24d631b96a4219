package render

import (
	"fmt"

	"github.com/automoto/soccer-stars/components"
	cfg "github.com/automoto/soccer-stars/config"
	"github.com/automoto/soccer-stars/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var bannerOp = &ebiten.DrawImageOptions{}

// DrawBanner shows the scaled "GOAL!" banner and the scoring team after a goal.
func DrawBanner(e *ecs.ECS, screen *ebiten.Image) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(matchEntry)
	if !banner.Active || banner.Scale <= 0 {
		return
	}

	face := fonts.Banner.Get()
	msg := "GOAL!"
	bounds, _ := font.BoundString(face, msg)
	w := float64((bounds.Max.X - bounds.Min.X).Ceil())
	h := float64((bounds.Max.Y - bounds.Min.Y).Ceil())

	cx := float64(cfg.C.Width) / 2
	cy := float64(cfg.C.HeaderHeight) + float64(cfg.C.FieldHeight())/2
	scale := float64(banner.Scale) / float64(cfg.UI.BannerScale)

	bannerOp.GeoM.Reset()
	bannerOp.ColorScale.Reset()
	bannerOp.GeoM.Translate(-w/2, h/2)
	bannerOp.GeoM.Scale(scale, scale)
	bannerOp.GeoM.Translate(cx, cy)
	bannerOp.ColorScale.ScaleWithColor(cfg.UI.GoalColor)
	text.DrawWithOptions(screen, msg, face, bannerOp)

	team := fmt.Sprintf("%s scores", cfg.UI.TeamNames[banner.Scorer])
	small := fonts.Regular.Get()
	tw := font.MeasureString(small, team).Ceil()
	text.Draw(screen, team, small, int(cx)-tw/2, int(cy+h*scale)+12, playerColor(banner.Scorer))
}
