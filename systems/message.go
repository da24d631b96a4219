package systems

import (
	"github.com/automoto/soccer-stars/components"
	cfg "github.com/automoto/soccer-stars/config"
	"github.com/yohamta/donburi"
)

// ShowMessage replaces the active toast and restarts its timer.
func ShowMessage(w donburi.World, text string) {
	state := GetOrCreateMessageState(w)
	state.Text = text
	state.DisplayTimer = cfg.Message.DisplayDuration
}

// UpdateMessage counts the active toast down and clears it when the time is up.
func UpdateMessage(w donburi.World) {
	state := GetOrCreateMessageState(w)
	if state.DisplayTimer <= 0 {
		return
	}
	state.DisplayTimer--
	if state.DisplayTimer == 0 {
		state.Text = ""
	}
}

// GetOrCreateMessageState returns the singleton MessageState component
func GetOrCreateMessageState(w donburi.World) *components.MessageStateData {
	entry, ok := components.MessageState.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.MessageState))
		components.MessageState.SetValue(entry, components.MessageStateData{})
	}
	return components.MessageState.Get(entry)
}
