package factory

import (
	"github.com/automoto/soccer-stars/archetypes"
	"github.com/automoto/soccer-stars/components"
	cfg "github.com/automoto/soccer-stars/config"
	"github.com/yohamta/donburi"
)

// CreateMatch creates the match singleton. Player 1 opens with the gate open.
func CreateMatch(w donburi.World, field components.FieldData) *donburi.Entry {
	match := archetypes.Match.Spawn(w)

	components.Field.SetValue(match, field)
	components.Match.SetValue(match, components.MatchData{
		ActivePlayer: 0,
		CanShoot:     true,
		Phase:        cfg.PhaseAwaitingShot,
	})
	components.Drag.SetValue(match, components.DragData{
		SpinEnabled: cfg.Debug.StartSpin,
	})

	return match
}
