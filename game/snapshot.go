package game

import (
	"github.com/automoto/soccer-stars/components"
	cfg "github.com/automoto/soccer-stars/config"
	"github.com/automoto/soccer-stars/systems"
	"github.com/automoto/soccer-stars/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BodyKind tells players and the ball apart in a snapshot.
type BodyKind int

const (
	KindPlayer BodyKind = iota
	KindBall
)

// BodyView is the render-facing state of one disk.
type BodyView struct {
	Kind     BodyKind
	Index    int // player index, 0 for the ball
	Center   math.Vec2
	Radius   float64
	Velocity math.Vec2
}

// GoalView is a goal mouth.
type GoalView struct {
	Rect components.Rect
	Side cfg.SideID
}

// DragView is only filled in while a gesture is active.
type DragView struct {
	Player     int
	Start      math.Vec2
	Current    math.Vec2
	Aim        math.Vec2 // clamped pull-back vector
	ForceRatio float64   // 0..1 for the force meter
}

// Snapshot is everything the front end reads once per frame.
type Snapshot struct {
	Players      [2]BodyView
	Ball         BodyView
	Goals        []GoalView
	Scores       [2]int
	ActivePlayer int
	CanShoot     bool
	Phase        cfg.PhaseID
	SpinEnabled  bool
	Drag         *DragView
	Events       []components.Event
	AllStatic    bool
	Paused       bool
	Message      string
}

// Snapshot copies the current state out of the world.
func (m *Match) Snapshot() Snapshot {
	w := m.world
	var s Snapshot

	tags.Player.Each(w, func(e *donburi.Entry) {
		idx := components.Player.Get(e).Index
		if idx < 0 || idx > 1 {
			return
		}
		s.Players[idx] = bodyView(e, KindPlayer, idx)
	})
	if ball, ok := tags.Ball.First(w); ok {
		s.Ball = bodyView(ball, KindBall, 0)
	}
	tags.Goal.Each(w, func(e *donburi.Entry) {
		g := components.Goal.Get(e)
		s.Goals = append(s.Goals, GoalView{Rect: g.Rect, Side: g.Side})
	})

	if matchEntry, ok := components.Match.First(w); ok {
		match := components.Match.Get(matchEntry)
		s.Scores = match.Scores
		s.ActivePlayer = match.ActivePlayer
		s.CanShoot = match.CanShoot
		s.Phase = match.Phase
		s.Events = append([]components.Event(nil), match.Events...)

		drag := components.Drag.Get(matchEntry)
		s.SpinEnabled = drag.SpinEnabled
		if aim, ratio, ok := systems.AimVector(w); ok {
			s.Drag = &DragView{
				Player:     components.Player.Get(drag.Selected).Index,
				Start:      drag.Start,
				Current:    drag.Current,
				Aim:        aim,
				ForceRatio: ratio,
			}
		}
	}

	s.AllStatic = systems.AllStatic(w)
	s.Paused = systems.IsPaused(w)
	if entry, ok := components.MessageState.First(w); ok {
		s.Message = components.MessageState.Get(entry).Text
	}
	return s
}

func bodyView(e *donburi.Entry, kind BodyKind, index int) BodyView {
	body := components.Body.Get(e)
	return BodyView{
		Kind:     kind,
		Index:    index,
		Center:   body.Position,
		Radius:   body.Radius,
		Velocity: components.Physics.Get(e).Velocity,
	}
}
