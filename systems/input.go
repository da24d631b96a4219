package systems

import (
	"math"

	"github.com/automoto/soccer-stars/components"
	cfg "github.com/automoto/soccer-stars/config"
	"github.com/automoto/soccer-stars/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Press starts a pull-back gesture when the gate is open and p lies on the
// active player's disk. Anything else is ignored.
func Press(w donburi.World, p dmath.Vec2) {
	matchEntry := getMatch(w)
	if matchEntry == nil {
		return
	}
	match := components.Match.Get(matchEntry)
	drag := components.Drag.Get(matchEntry)

	if !match.CanShoot || drag.Active {
		return
	}

	player := PlayerEntry(w, match.ActivePlayer)
	if player == nil || !components.Body.Get(player).Contains(p) {
		return
	}

	drag.Active = true
	drag.Selected = player
	drag.Start = p
	drag.Current = p
}

// Drag moves the end of the gesture. With spin mode on it also tracks the
// drag angle used to curl the ball at release.
func Drag(w donburi.World, p dmath.Vec2) {
	drag := activeDrag(w)
	if drag == nil {
		return
	}

	drag.Current = p
	if drag.SpinEnabled {
		v := drag.Vector()
		drag.SpinAngle = math.Atan2(v.Y, v.X)
	}
}

// Release fires the selected disk opposite to the drag vector. A release at
// the press point cancels the gesture without using the turn.
func Release(w donburi.World, p dmath.Vec2) {
	drag := activeDrag(w)
	if drag == nil {
		return
	}
	matchEntry := getMatch(w)
	match := components.Match.Get(matchEntry)

	drag.Current = p
	v := drag.Vector()
	if v.X == 0 && v.Y == 0 {
		drag.Clear()
		return
	}

	physics := components.Physics.Get(drag.Selected)
	physics.Velocity = ShotVelocity(v)

	if drag.SpinEnabled {
		addSpinToBall(w, drag.SpinAngle)
	}

	match.BeginShot()
	drag.Clear()
}

// ToggleSpin flips spin mode and returns the new setting.
func ToggleSpin(w donburi.World) bool {
	matchEntry := getMatch(w)
	if matchEntry == nil {
		return false
	}
	drag := components.Drag.Get(matchEntry)
	drag.SpinEnabled = !drag.SpinEnabled
	return drag.SpinEnabled
}

// ClampDrag limits v to the maximum drag length, keeping its direction.
func ClampDrag(v dmath.Vec2) dmath.Vec2 {
	magnitude := math.Hypot(v.X, v.Y)
	if magnitude <= cfg.Shot.MaxDragLength {
		return v
	}
	scale := cfg.Shot.MaxDragLength / magnitude
	return dmath.Vec2{X: v.X * scale, Y: v.Y * scale}
}

// ShotVelocity maps a drag vector to a launch velocity: pull back, release forward.
func ShotVelocity(drag dmath.Vec2) dmath.Vec2 {
	clamped := ClampDrag(drag)
	return dmath.Vec2{
		X: -clamped.X * cfg.Shot.Power,
		Y: -clamped.Y * cfg.Shot.Power,
	}
}

// ForceRatio is the drag length as a fraction of the maximum, capped at 1.
func ForceRatio(drag dmath.Vec2) float64 {
	return math.Min(math.Hypot(drag.X, drag.Y)/cfg.Shot.MaxDragLength, 1)
}

// AimVector returns the clamped pull-back vector and force ratio of the
// gesture in progress. ok is false when nothing is being dragged.
func AimVector(w donburi.World) (aim dmath.Vec2, ratio float64, ok bool) {
	drag := activeDrag(w)
	if drag == nil {
		return dmath.Vec2{}, 0, false
	}
	v := drag.Vector()
	return ClampDrag(v), ForceRatio(v), true
}

// activeDrag returns the gesture in progress, or nil when idle.
func activeDrag(w donburi.World) *components.DragData {
	matchEntry := getMatch(w)
	if matchEntry == nil {
		return nil
	}
	drag := components.Drag.Get(matchEntry)
	if !drag.Active || drag.Selected == nil || !drag.Selected.Valid() {
		return nil
	}
	return drag
}

func addSpinToBall(w donburi.World, angle float64) {
	ballEntry, ok := tags.Ball.First(w)
	if !ok {
		return
	}
	components.Physics.Get(ballEntry).Spin = cfg.Spin.Strength * angle / math.Pi
}
