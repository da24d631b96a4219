// Package game owns one match: the donburi world holding the pitch, the
// fixed order in which the headless systems run each tick, and the read-only
// snapshot the front end draws from.
package game

import (
	"github.com/automoto/soccer-stars/assets"
	"github.com/automoto/soccer-stars/components"
	"github.com/automoto/soccer-stars/systems"
	"github.com/automoto/soccer-stars/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// cellSize is the resolv grid cell edge in pixels.
const cellSize = 20

// Match is a running game between two players.
type Match struct {
	world donburi.World
	pitch *assets.Pitch
	ticks int
}

// NewMatch builds the world for pitch: space, goals, both players, the ball
// and the match singleton.
func NewMatch(pitch *assets.Pitch) *Match {
	w := donburi.NewWorld()

	factory.CreateSpace(w, int(pitch.Width), int(pitch.Height), cellSize, cellSize)
	factory.CreateMatch(w, components.FieldData{
		Left:   0,
		Top:    pitch.HeaderHeight,
		Right:  pitch.Width,
		Bottom: pitch.Height,
	})

	for _, g := range pitch.Goals {
		factory.CreateGoal(w, components.Rect{X: g.X, Y: g.Y, W: g.Width, H: g.Height}, g.Side, g.Scorer)
	}
	for i, spawn := range pitch.PlayerSpawns {
		factory.CreatePlayer(w, i, spawn)
	}
	factory.CreateBall(w, pitch.BallSpawn)

	return &Match{world: w, pitch: pitch}
}

// World exposes the entity world to renderers.
func (m *Match) World() donburi.World {
	return m.world
}

// Pitch returns the layout the match was built from.
func (m *Match) Pitch() *assets.Pitch {
	return m.pitch
}

// Ticks is the number of steps run so far.
func (m *Match) Ticks() int {
	return m.ticks
}

// Step runs one fixed tick. Goals are checked before the turn so a scoring
// tick reopens the gate without passing the turn. A paused match only ages
// its toast.
func (m *Match) Step() {
	systems.UpdateMessage(m.world)
	if systems.IsPaused(m.world) {
		return
	}

	systems.ClearEvents(m.world)
	systems.UpdatePhysics(m.world)
	systems.UpdateCollisions(m.world)
	systems.UpdateGoals(m.world)
	systems.UpdateTurn(m.world)
	systems.UpdateEffects(m.world)
	m.ticks++
}

// Press, Drag and Release feed a pull-back gesture in playfield pixels.
// They must be called between steps and are ignored while paused.
func (m *Match) Press(x, y float64) {
	if systems.IsPaused(m.world) {
		return
	}
	systems.Press(m.world, math.Vec2{X: x, Y: y})
}

func (m *Match) Drag(x, y float64) {
	if systems.IsPaused(m.world) {
		return
	}
	systems.Drag(m.world, math.Vec2{X: x, Y: y})
}

func (m *Match) Release(x, y float64) {
	if systems.IsPaused(m.world) {
		return
	}
	systems.Release(m.world, math.Vec2{X: x, Y: y})
}

// ToggleSpin flips spin mode, announces it and returns the new setting.
func (m *Match) ToggleSpin() bool {
	on := systems.ToggleSpin(m.world)
	if on {
		systems.ShowMessage(m.world, "Spin: ON")
	} else {
		systems.ShowMessage(m.world, "Spin: OFF")
	}
	return on
}

// TogglePause freezes or resumes the match and returns the new state.
func (m *Match) TogglePause() bool {
	return systems.TogglePause(m.world)
}

// Leader returns the index of the player ahead on goals, or -1 when level.
func (m *Match) Leader() int {
	entry, ok := components.Match.First(m.world)
	if !ok {
		return -1
	}
	return components.Match.Get(entry).GetLeader()
}

// RunUntilRest steps until every body is at rest or maxTicks have run, and
// returns the number of ticks taken.
func (m *Match) RunUntilRest(maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		m.Step()
		if systems.AllStatic(m.world) {
			return i + 1
		}
	}
	return maxTicks
}
