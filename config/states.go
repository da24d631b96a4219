package config

// PhaseID represents the turn state of a match.
type PhaseID int

const (
	PhaseAwaitingShot PhaseID = iota // Active player may press on their disk
	PhaseBallInMotion                // A shot was taken, waiting for every body to rest
)

func (p PhaseID) String() string {
	switch p {
	case PhaseAwaitingShot:
		return "awaiting-shot"
	case PhaseBallInMotion:
		return "ball-in-motion"
	}
	return "unknown"
}

// EventID identifies something the core reports to the presentation layer.
type EventID int

const (
	EventShotTaken EventID = iota
	EventGoalScored
	EventTurnChanged
)

func (e EventID) String() string {
	switch e {
	case EventShotTaken:
		return "shot"
	case EventGoalScored:
		return "goal"
	case EventTurnChanged:
		return "turn"
	}
	return "unknown"
}

// SideID marks which end of the pitch a goal sits on.
type SideID int

const (
	SideLeft SideID = iota
	SideRight
)

func (s SideID) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}
