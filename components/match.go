package components

import (
	cfg "github.com/automoto/soccer-stars/config"
	"github.com/yohamta/donburi"
)

// Event is something that happened during the last tick, kept for the
// presentation layer and cleared at the start of every tick.
type Event struct {
	ID     cfg.EventID
	Player int // shooter, scorer or the player whose turn starts
}

// MatchData stores the scoreboard and turn state.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	Scores       [2]int
	ActivePlayer int  // 0 = player 1, 1 = player 2
	CanShoot     bool // shoot gate
	Phase        cfg.PhaseID
	Shots        int
	Events       []Event
}

var Match = donburi.NewComponentType[MatchData]()

// AddGoal credits a goal to a player.
func (m *MatchData) AddGoal(playerIndex int) {
	m.Scores[playerIndex]++
	m.emit(cfg.EventGoalScored, playerIndex)
}

// BeginShot closes the shoot gate until every body is at rest again.
func (m *MatchData) BeginShot() {
	m.CanShoot = false
	m.Phase = cfg.PhaseBallInMotion
	m.Shots++
	m.emit(cfg.EventShotTaken, m.ActivePlayer)
}

// PassTurn hands the next shot to the other player.
func (m *MatchData) PassTurn() {
	m.ActivePlayer = 1 - m.ActivePlayer
	m.OpenGate()
	m.emit(cfg.EventTurnChanged, m.ActivePlayer)
}

// OpenGate allows the active player to shoot without changing whose turn it is.
func (m *MatchData) OpenGate() {
	m.CanShoot = true
	m.Phase = cfg.PhaseAwaitingShot
}

// GetLeader returns the index of the leading player, or -1 for a tie.
func (m *MatchData) GetLeader() int {
	switch {
	case m.Scores[0] > m.Scores[1]:
		return 0
	case m.Scores[1] > m.Scores[0]:
		return 1
	}
	return -1
}

func (m *MatchData) emit(id cfg.EventID, player int) {
	m.Events = append(m.Events, Event{ID: id, Player: player})
}
