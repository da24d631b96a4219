package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/soccer-stars/assets"
	cfg "github.com/automoto/soccer-stars/config"
	"github.com/automoto/soccer-stars/game"
	"github.com/automoto/soccer-stars/render"
	"github.com/automoto/soccer-stars/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// MatchScene plays one local two-player match.
type MatchScene struct {
	ecs    *ecs.ECS
	match  *game.Match
	header *ui.HeaderUI
	once   sync.Once
}

func NewMatchScene() *MatchScene {
	return &MatchScene{}
}

func (ms *MatchScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.header.Refresh(ms.match.Snapshot())
	ms.header.UI.Update()
}

func (ms *MatchScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.header.UI.Draw(screen)
	ms.ecs.Draw(screen)
}

func (ms *MatchScene) configure() {
	pitch := assets.MustLoadPitch()
	ms.match = game.NewMatch(pitch)
	ms.header = ui.NewHeaderUI()
	ms.ecs = ecs.NewECS(ms.match.World())

	// Input lands before the step so a release never interrupts integration.
	ms.ecs.AddSystem(ms.updateInput)
	ms.ecs.AddSystem(ms.updateMatch)

	ms.ecs.AddRenderer(render.LayerDefault, render.DrawField)
	ms.ecs.AddRenderer(render.LayerDefault, render.DrawGoals)
	ms.ecs.AddRenderer(render.LayerDefault, render.DrawBodies)
	ms.ecs.AddRenderer(render.LayerDefault, render.DrawAim)
	ms.ecs.AddRenderer(render.LayerDefault, render.DrawBanner)
	ms.ecs.AddRenderer(render.LayerDefault, render.DrawMessage)
	ms.ecs.AddRenderer(render.LayerDefault, render.DrawDebug)
	ms.ecs.AddRenderer(render.LayerDefault, render.DrawPause)

	log.Printf("match started on %s (%.0fx%.0f)", pitch.Name, pitch.Width, pitch.Height)
}

func (ms *MatchScene) updateInput(_ *ecs.ECS) {
	if justPressed(ActionPause) {
		log.Printf("paused: %v", ms.match.TogglePause())
	}
	if justPressed(ActionToggleSpin) {
		log.Printf("spin mode: %v", ms.match.ToggleSpin())
	}
	if justPressed(ActionToggleDebug) {
		cfg.Debug.DrawObjects = !cfg.Debug.DrawObjects
	}

	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		ms.match.Press(fx, fy)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		ms.match.Release(fx, fy)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		ms.match.Drag(fx, fy)
	}
}

func (ms *MatchScene) updateMatch(_ *ecs.ECS) {
	ms.match.Step()

	for _, e := range ms.match.Snapshot().Events {
		switch e.ID {
		case cfg.EventGoalScored:
			s := ms.match.Snapshot().Scores
			log.Printf("goal for %s: %d - %d", cfg.UI.TeamNames[e.Player], s[0], s[1])
		case cfg.EventTurnChanged:
			log.Printf("turn: %s", cfg.UI.TeamNames[e.Player])
		}
	}
}
