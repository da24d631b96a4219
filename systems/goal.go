package systems

import (
	"sort"

	"github.com/automoto/soccer-stars/components"
	"github.com/automoto/soccer-stars/tags"
	"github.com/yohamta/donburi"
)

// UpdateGoals credits a goal when the ball overlaps a goal mouth, then resets
// the pitch. At most one goal fires per tick.
func UpdateGoals(w donburi.World) {
	matchEntry := getMatch(w)
	if matchEntry == nil {
		return
	}
	ballEntry, ok := tags.Ball.First(w)
	if !ok {
		return
	}

	goal := caughtBy(ballEntry)
	if goal == nil {
		return
	}

	components.Match.Get(matchEntry).AddGoal(goal.Scorer)
	StartBanner(w, goal.Scorer)
	ResetPositions(w)
}

// caughtBy returns the goal the ball overlaps, left goal first.
func caughtBy(ballEntry *donburi.Entry) *components.GoalData {
	check := components.Object.Get(ballEntry).Check(0, 0, tags.ResolvGoal)
	if check == nil {
		return nil
	}

	var goals []*components.GoalData
	for _, o := range check.ObjectsByTags(tags.ResolvGoal) {
		if e, ok := o.Data.(*donburi.Entry); ok {
			goals = append(goals, components.Goal.Get(e))
		}
	}
	sort.Slice(goals, func(i, j int) bool {
		return goals[i].Side < goals[j].Side
	})

	ball := components.Body.Get(ballEntry)
	for _, g := range goals {
		if g.Rect.OverlapsCircle(ball.Position, ball.Radius) {
			return g
		}
	}
	return nil
}

// ResetPositions returns every body to its spawn at rest, reopens the shoot gate
// for the current player and drops any drag in progress.
func ResetPositions(w donburi.World) {
	components.Physics.Each(w, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		body.Position = body.Spawn
		components.Physics.Get(e).Stop()
		syncObject(e)
	})

	if matchEntry := getMatch(w); matchEntry != nil {
		components.Match.Get(matchEntry).OpenGate()
		components.Drag.Get(matchEntry).Clear()
	}
}
