package systems

import (
	"github.com/automoto/soccer-stars/components"
	"github.com/automoto/soccer-stars/tags"
	"github.com/yohamta/donburi"
)

// getMatch returns the match singleton, or nil before the match is created.
func getMatch(w donburi.World) *donburi.Entry {
	entry, ok := components.Match.First(w)
	if !ok {
		return nil
	}
	return entry
}

// PlayerEntry returns the disk of the player with the given index.
func PlayerEntry(w donburi.World, index int) *donburi.Entry {
	var found *donburi.Entry
	tags.Player.Each(w, func(e *donburi.Entry) {
		if components.Player.Get(e).Index == index {
			found = e
		}
	})
	return found
}

// playersByIndex returns both player disks, indexed by player.
func playersByIndex(w donburi.World) [2]*donburi.Entry {
	var players [2]*donburi.Entry
	tags.Player.Each(w, func(e *donburi.Entry) {
		idx := components.Player.Get(e).Index
		if idx >= 0 && idx < len(players) {
			players[idx] = e
		}
	})
	return players
}

// AllStatic reports whether every movable body is at rest.
func AllStatic(w donburi.World) bool {
	static := true
	components.Physics.Each(w, func(e *donburi.Entry) {
		if !components.Physics.Get(e).IsStatic() {
			static = false
		}
	})
	return static
}

// ClearEvents drops the previous tick's events.
func ClearEvents(w donburi.World) {
	if entry := getMatch(w); entry != nil {
		match := components.Match.Get(entry)
		match.Events = match.Events[:0]
	}
}
