package systems

import (
	"github.com/automoto/soccer-stars/components"
	cfg "github.com/automoto/soccer-stars/config"
	"github.com/automoto/soccer-stars/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// testPitch mirrors the embedded pitch layout without loading the map.
type testPitch struct {
	w       donburi.World
	players [2]*donburi.Entry
	ball    *donburi.Entry
	match   *donburi.Entry
}

var (
	testSpawns    = [2]math.Vec2{{X: 120, Y: 340}, {X: 880, Y: 340}}
	testBallSpawn = math.Vec2{X: 500, Y: 340}
	leftGoalRect  = components.Rect{X: 0, Y: 280, W: 20, H: 120}
	rightGoalRect = components.Rect{X: 980, Y: 280, W: 20, H: 120}
)

func newTestPitch() *testPitch {
	w := donburi.NewWorld()
	factory.CreateSpace(w, 1000, 600, 20, 20)
	match := factory.CreateMatch(w, components.FieldData{Left: 0, Top: 80, Right: 1000, Bottom: 600})
	factory.CreateGoal(w, leftGoalRect, cfg.SideLeft, 1)
	factory.CreateGoal(w, rightGoalRect, cfg.SideRight, 0)

	p := &testPitch{w: w, match: match}
	for i, spawn := range testSpawns {
		p.players[i] = factory.CreatePlayer(w, i, spawn)
	}
	p.ball = factory.CreateBall(w, testBallSpawn)
	return p
}

// place moves e to (x, y) with velocity (vx, vy) and keeps its resolv object in sync.
func (p *testPitch) place(e *donburi.Entry, x, y, vx, vy float64) {
	components.Body.Get(e).Position = math.Vec2{X: x, Y: y}
	components.Physics.Get(e).Velocity = math.Vec2{X: vx, Y: vy}
	syncObject(e)
}

func (p *testPitch) matchData() *components.MatchData {
	return components.Match.Get(p.match)
}

func (p *testPitch) drag() *components.DragData {
	return components.Drag.Get(p.match)
}

func almostEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}

// step runs the systems in match order.
func (p *testPitch) step() {
	ClearEvents(p.w)
	UpdatePhysics(p.w)
	UpdateCollisions(p.w)
	UpdateGoals(p.w)
	UpdateTurn(p.w)
	UpdateEffects(p.w)
}

func (p *testPitch) countEvents(id cfg.EventID) int {
	n := 0
	for _, e := range p.matchData().Events {
		if e.ID == id {
			n++
		}
	}
	return n
}
