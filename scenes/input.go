package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ActionID represents a logical keyboard action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionToggleSpin
	ActionPause
	ActionToggleDebug
)

// keyBindings maps each action to the keys that trigger it.
var keyBindings = map[ActionID][]ebiten.Key{
	ActionToggleSpin:  {ebiten.KeyS},
	ActionPause:       {ebiten.KeyP, ebiten.KeyEscape},
	ActionToggleDebug: {ebiten.KeyF1},
}

// justPressed reports whether any key bound to action went down this frame.
func justPressed(action ActionID) bool {
	for _, key := range keyBindings[action] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
