package systems

import (
	"github.com/automoto/soccer-stars/components"
	"github.com/yohamta/donburi"
)

// UpdateTurn passes the turn once every body has come to rest after a shot.
// It must run after UpdateGoals: a goal reopens the gate first, so the scoring
// tick never flips the turn.
func UpdateTurn(w donburi.World) {
	matchEntry := getMatch(w)
	if matchEntry == nil {
		return
	}
	match := components.Match.Get(matchEntry)

	if !match.CanShoot && AllStatic(w) {
		clearSpin(w)
		match.PassTurn()
	}
}

// clearSpin drops spin left on a ball the shot never reached.
func clearSpin(w donburi.World) {
	components.Physics.Each(w, func(e *donburi.Entry) {
		components.Physics.Get(e).Spin = 0
	})
}
