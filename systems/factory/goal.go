package factory

import (
	"github.com/automoto/soccer-stars/archetypes"
	"github.com/automoto/soccer-stars/components"
	cfg "github.com/automoto/soccer-stars/config"
	"github.com/automoto/soccer-stars/tags"
	"github.com/yohamta/donburi"
)

// CreateGoal creates a goal sensor. The ball is caught when it overlaps rect.
func CreateGoal(w donburi.World, rect components.Rect, side cfg.SideID, scorer int) *donburi.Entry {
	goal := archetypes.Goal.Spawn(w)

	obj := newPaddedObject(rect.X, rect.Y, rect.W, rect.H, tags.ResolvGoal)
	obj.Data = goal
	components.Object.SetValue(goal, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	components.Goal.SetValue(goal, components.GoalData{
		Rect:   rect,
		Side:   side,
		Scorer: scorer,
	})

	return goal
}
