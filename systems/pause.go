package systems

import (
	"github.com/automoto/soccer-stars/components"
	"github.com/yohamta/donburi"
)

// TogglePause flips the pause state and returns the new value. Pausing drops
// any drag in progress, since its release would be ignored.
func TogglePause(w donburi.World) bool {
	pause := GetOrCreatePause(w)
	pause.IsPaused = !pause.IsPaused
	if pause.IsPaused {
		if matchEntry := getMatch(w); matchEntry != nil {
			components.Drag.Get(matchEntry).Clear()
		}
	}
	return pause.IsPaused
}

// IsPaused reports whether the match is frozen.
func IsPaused(w donburi.World) bool {
	entry, ok := components.Pause.First(w)
	return ok && components.Pause.Get(entry).IsPaused
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(w donburi.World) *components.PauseData {
	if _, ok := components.Pause.First(w); !ok {
		ent := w.Entry(w.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{IsPaused: false})
	}

	ent, _ := components.Pause.First(w)
	return components.Pause.Get(ent)
}
