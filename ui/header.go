package ui

import (
	"bytes"
	"fmt"
	"log"

	cfg "github.com/automoto/soccer-stars/config"
	"github.com/automoto/soccer-stars/game"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

// HeaderUI is the scoreboard strip above the pitch: team names, score, whose
// turn it is and the spin mode.
type HeaderUI struct {
	UI *ebitenui.UI

	scoreLabel *widget.Label
	turnLabel  *widget.Label
	spinLabel  *widget.Label

	teamFace  text.Face
	scoreFace text.Face
	turnFace  text.Face
}

func NewHeaderUI() *HeaderUI {
	h := &HeaderUI{}
	h.loadFonts()
	h.buildUI()
	return h
}

func (h *HeaderUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Fatalf("failed to load header font: %v", err)
	}

	h.teamFace = &text.GoTextFace{Source: fontSource, Size: 20}
	h.scoreFace = &text.GoTextFace{Source: fontSource, Size: 36}
	h.turnFace = &text.GoTextFace{Source: fontSource, Size: 16}
}

func (h *HeaderUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	strip := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.HeaderColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Left: 50, Right: 50, Top: 8, Bottom: 8}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.C.Width, cfg.C.HeaderHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchHorizontal:  true,
			}),
		),
	)

	strip.AddChild(h.teamLabel(cfg.UI.TeamNames[0], widget.AnchorLayoutPositionStart))
	strip.AddChild(h.buildCenter())
	strip.AddChild(h.teamLabel(cfg.UI.TeamNames[1], widget.AnchorLayoutPositionEnd))

	rootContainer.AddChild(strip)

	h.UI = &ebitenui.UI{Container: rootContainer}
}

func (h *HeaderUI) teamLabel(name string, pos widget.AnchorLayoutPosition) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(name, &h.teamFace, &widget.LabelColor{Idle: cfg.White}),
		widget.LabelOpts.TextOpts(widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: pos,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		)),
	)
}

func (h *HeaderUI) buildCenter() *widget.Container {
	center := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	h.scoreLabel = widget.NewLabel(
		widget.LabelOpts.Text("0 - 0", &h.scoreFace, &widget.LabelColor{Idle: cfg.White}),
		widget.LabelOpts.TextOpts(widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter)),
	)
	center.AddChild(h.scoreLabel)

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
		)),
	)
	h.turnLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &h.turnFace, &widget.LabelColor{Idle: cfg.Yellow}),
	)
	h.spinLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &h.turnFace, &widget.LabelColor{Idle: cfg.White}),
	)
	row.AddChild(h.turnLabel)
	row.AddChild(h.spinLabel)
	center.AddChild(row)

	return center
}

// Refresh copies the scoreboard out of a snapshot.
func (h *HeaderUI) Refresh(s game.Snapshot) {
	h.scoreLabel.Label = fmt.Sprintf("%d - %d", s.Scores[0], s.Scores[1])
	h.turnLabel.Label = TurnText(s)
	h.spinLabel.Label = SpinText(s.SpinEnabled)
}

// TurnText names the team to shoot, or says the ball is still rolling.
func TurnText(s game.Snapshot) string {
	if !s.CanShoot {
		return "Ball in play"
	}
	return "Turn: " + cfg.UI.TeamNames[s.ActivePlayer]
}

// SpinText is the spin mode indicator.
func SpinText(on bool) string {
	if on {
		return "Spin: ON (S)"
	}
	return "Spin: OFF (S)"
}
