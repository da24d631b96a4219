package systems

import (
	"math"
	"testing"

	"github.com/automoto/soccer-stars/components"
	cfg "github.com/automoto/soccer-stars/config"
	dmath "github.com/yohamta/donburi/features/math"
)

var testField = &components.FieldData{Left: 0, Top: 80, Right: 1000, Bottom: 600}

func TestResolveWalls(t *testing.T) {
	tests := []struct {
		name        string
		pos         dmath.Vec2
		vel         dmath.Vec2
		restitution float64
		wantPos     dmath.Vec2
		wantVel     dmath.Vec2
	}{
		{"Ball off the top edge", dmath.Vec2{X: 300, Y: 85}, dmath.Vec2{X: 2, Y: -5}, 1.0, dmath.Vec2{X: 300, Y: 90}, dmath.Vec2{X: 2, Y: 5}},
		{"Ball off the bottom edge", dmath.Vec2{X: 300, Y: 598}, dmath.Vec2{X: 2, Y: 5}, 1.0, dmath.Vec2{X: 300, Y: 590}, dmath.Vec2{X: 2, Y: -5}},
		{"Ball off the left edge", dmath.Vec2{X: 4, Y: 300}, dmath.Vec2{X: -6, Y: 1}, 1.0, dmath.Vec2{X: 10, Y: 300}, dmath.Vec2{X: 6, Y: 1}},
		{"Ball off the right edge", dmath.Vec2{X: 995, Y: 300}, dmath.Vec2{X: 6, Y: 1}, 1.0, dmath.Vec2{X: 990, Y: 300}, dmath.Vec2{X: -6, Y: 1}},
		{"Player off the top edge", dmath.Vec2{X: 300, Y: 90}, dmath.Vec2{X: 1, Y: -10}, 0.7, dmath.Vec2{X: 300, Y: 100}, dmath.Vec2{X: 1, Y: 7}},
		{"Player off the right edge", dmath.Vec2{X: 990, Y: 300}, dmath.Vec2{X: 10, Y: 0}, 0.7, dmath.Vec2{X: 980, Y: 300}, dmath.Vec2{X: -7, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			radius := cfg.Ball.Radius()
			if tt.restitution != 1.0 {
				radius = cfg.Player.Radius()
			}
			body := &components.BodyData{Position: tt.pos, Radius: radius}
			physics := &components.PhysicsData{Velocity: tt.vel, WallRestitution: tt.restitution}

			if !ResolveWalls(body, physics, testField) {
				t.Fatal("expected a wall contact")
			}
			if !almostEqual(body.Position.X, tt.wantPos.X) || !almostEqual(body.Position.Y, tt.wantPos.Y) {
				t.Errorf("position = %+v, want %+v", body.Position, tt.wantPos)
			}
			if !almostEqual(physics.Velocity.X, tt.wantVel.X) || !almostEqual(physics.Velocity.Y, tt.wantVel.Y) {
				t.Errorf("velocity = %+v, want %+v", physics.Velocity, tt.wantVel)
			}
		})
	}
}

func TestResolveWallsInsideField(t *testing.T) {
	body := &components.BodyData{Position: dmath.Vec2{X: 500, Y: 340}, Radius: 20}
	physics := &components.PhysicsData{Velocity: dmath.Vec2{X: 3, Y: 3}, WallRestitution: 0.7}

	if ResolveWalls(body, physics, testField) {
		t.Fatal("no wall should be touched at the field center")
	}
	if physics.Velocity.X != 3 || physics.Velocity.Y != 3 {
		t.Errorf("velocity changed to %+v", physics.Velocity)
	}
}

func TestResolveBodiesFlipsRelativeVelocity(t *testing.T) {
	tests := []struct {
		name         string
		aPos, bPos   dmath.Vec2
		aVel, bVel   dmath.Vec2
		aMass, bMass float64
		aR, bR       float64
		restitution  float64
	}{
		{"Players head on", dmath.Vec2{X: 100, Y: 100}, dmath.Vec2{X: 135, Y: 100}, dmath.Vec2{X: 5, Y: 0}, dmath.Vec2{X: -3, Y: 0}, 2, 2, 20, 20, 0.8},
		{"Players glancing", dmath.Vec2{X: 100, Y: 100}, dmath.Vec2{X: 130, Y: 120}, dmath.Vec2{X: 4, Y: 1}, dmath.Vec2{}, 2, 2, 20, 20, 0.8},
		{"Player strikes resting ball", dmath.Vec2{X: 470, Y: 340}, dmath.Vec2{X: 498, Y: 342}, dmath.Vec2{X: 6, Y: 0}, dmath.Vec2{}, 2, 1, 20, 10, 0.9},
		{"Separating but overlapping", dmath.Vec2{X: 100, Y: 100}, dmath.Vec2{X: 130, Y: 100}, dmath.Vec2{X: -1, Y: 0}, dmath.Vec2{X: 1, Y: 0}, 2, 2, 20, 20, 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aBody := &components.BodyData{Position: tt.aPos, Radius: tt.aR}
			bBody := &components.BodyData{Position: tt.bPos, Radius: tt.bR}
			aPhys := &components.PhysicsData{Velocity: tt.aVel, Mass: tt.aMass}
			bPhys := &components.PhysicsData{Velocity: tt.bVel, Mass: tt.bMass}

			dx, dy := tt.bPos.X-tt.aPos.X, tt.bPos.Y-tt.aPos.Y
			d := math.Hypot(dx, dy)
			nx, ny := dx/d, dy/d
			relBefore := (tt.bVel.X-tt.aVel.X)*nx + (tt.bVel.Y-tt.aVel.Y)*ny
			momentumX := tt.aMass*tt.aVel.X + tt.bMass*tt.bVel.X
			momentumY := tt.aMass*tt.aVel.Y + tt.bMass*tt.bVel.Y

			if !ResolveBodies(aBody, aPhys, bBody, bPhys, tt.restitution) {
				t.Fatal("expected a collision")
			}

			relAfter := (bPhys.Velocity.X-aPhys.Velocity.X)*nx + (bPhys.Velocity.Y-aPhys.Velocity.Y)*ny
			if math.Abs(relAfter+tt.restitution*relBefore) > 1e-9 {
				t.Errorf("relative normal velocity %v -> %v, want %v", relBefore, relAfter, -tt.restitution*relBefore)
			}

			gotX := tt.aMass*aPhys.Velocity.X + tt.bMass*bPhys.Velocity.X
			gotY := tt.aMass*aPhys.Velocity.Y + tt.bMass*bPhys.Velocity.Y
			if math.Abs(gotX-momentumX) > 1e-9 || math.Abs(gotY-momentumY) > 1e-9 {
				t.Errorf("momentum (%v, %v) -> (%v, %v)", momentumX, momentumY, gotX, gotY)
			}

			dist := math.Hypot(bBody.Position.X-aBody.Position.X, bBody.Position.Y-aBody.Position.Y)
			if math.Abs(dist-(tt.aR+tt.bR)) > 1e-9 {
				t.Errorf("bodies %v apart after correction, want %v", dist, tt.aR+tt.bR)
			}
		})
	}
}

func TestResolveBodiesSkipsSharedCenter(t *testing.T) {
	aBody := &components.BodyData{Position: dmath.Vec2{X: 100, Y: 100}, Radius: 20}
	bBody := &components.BodyData{Position: dmath.Vec2{X: 100, Y: 100}, Radius: 10}
	aPhys := &components.PhysicsData{Velocity: dmath.Vec2{X: 1, Y: 2}, Mass: 2}
	bPhys := &components.PhysicsData{Velocity: dmath.Vec2{X: -3, Y: 0}, Mass: 1}

	if ResolveBodies(aBody, aPhys, bBody, bPhys, 0.9) {
		t.Fatal("zero distance must skip resolution")
	}
	if aPhys.Velocity != (dmath.Vec2{X: 1, Y: 2}) || bPhys.Velocity != (dmath.Vec2{X: -3, Y: 0}) {
		t.Errorf("velocities changed: %+v %+v", aPhys.Velocity, bPhys.Velocity)
	}
	if aBody.Position != bBody.Position {
		t.Errorf("positions changed: %+v %+v", aBody.Position, bBody.Position)
	}
}

func TestResolveBodiesIgnoresSeparatedDisks(t *testing.T) {
	aBody := &components.BodyData{Position: dmath.Vec2{X: 100, Y: 100}, Radius: 20}
	bBody := &components.BodyData{Position: dmath.Vec2{X: 130, Y: 100}, Radius: 10}
	aPhys := &components.PhysicsData{Velocity: dmath.Vec2{X: 5}, Mass: 2}
	bPhys := &components.PhysicsData{Mass: 1}

	if ResolveBodies(aBody, aPhys, bBody, bPhys, 0.9) {
		t.Fatal("touching disks do not overlap")
	}
}

func TestUpdateCollisionsPlayerStrikesBall(t *testing.T) {
	p := newTestPitch()
	p.place(p.players[0], 475, 340, 8, 0)

	UpdateCollisions(p.w)

	ball := components.Physics.Get(p.ball)
	player := components.Physics.Get(p.players[0])
	if ball.Velocity.X <= 0 {
		t.Fatalf("ball velocity = %+v, want it pushed right", ball.Velocity)
	}
	if ball.Velocity.X <= player.Velocity.X {
		t.Errorf("lighter ball (%v) should leave faster than the player (%v)", ball.Velocity.X, player.Velocity.X)
	}

	dist := math.Hypot(
		components.Body.Get(p.ball).Position.X-components.Body.Get(p.players[0]).Position.X,
		components.Body.Get(p.ball).Position.Y-components.Body.Get(p.players[0]).Position.Y,
	)
	if dist < cfg.Player.Radius()+cfg.Ball.Radius()-1e-9 {
		t.Errorf("bodies still overlap at distance %v", dist)
	}
}

func TestUpdateCollisionsAcrossCellBoundary(t *testing.T) {
	// Overlaps below one pixel where the two boxes end up in neighbouring cells.
	tests := []struct {
		name   string
		player dmath.Vec2
		ball   dmath.Vec2
	}{
		{"Across a column boundary", dmath.Vec2{X: 100.5, Y: 340}, dmath.Vec2{X: 130.2, Y: 340}},
		{"Across a row boundary", dmath.Vec2{X: 300, Y: 100.5}, dmath.Vec2{X: 300, Y: 130.2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPitch()
			p.place(p.players[0], tt.player.X, tt.player.Y, 0, 0)
			p.place(p.ball, tt.ball.X, tt.ball.Y, 0, 0)

			UpdateCollisions(p.w)

			player := components.Body.Get(p.players[0]).Position
			ball := components.Body.Get(p.ball).Position
			dist := math.Hypot(ball.X-player.X, ball.Y-player.Y)
			if dist < cfg.Player.Radius()+cfg.Ball.Radius()-1e-9 {
				t.Errorf("bodies still overlap at distance %v", dist)
			}
		})
	}
}

func TestUpdateCollisionsPlayersResolveOnce(t *testing.T) {
	p := newTestPitch()
	p.place(p.players[0], 300, 200, 4, 0)
	p.place(p.players[1], 335, 200, 0, 0)

	UpdateCollisions(p.w)

	// Equal masses, e = 0.8: a single resolution leaves (0.4, 3.6).
	a := components.Physics.Get(p.players[0]).Velocity
	b := components.Physics.Get(p.players[1]).Velocity
	if !almostEqual(a.X, 0.4) || !almostEqual(b.X, 3.6) {
		t.Errorf("velocities = %+v, %+v, want 0.4 and 3.6", a, b)
	}
}

func TestUpdateCollisionsClampsToField(t *testing.T) {
	p := newTestPitch()
	p.place(p.ball, 500, 82, 0, -4)

	UpdateCollisions(p.w)

	body := components.Body.Get(p.ball)
	physics := components.Physics.Get(p.ball)
	if body.Position.Y != 80+cfg.Ball.Radius() {
		t.Errorf("ball y = %v, want %v", body.Position.Y, 80+cfg.Ball.Radius())
	}
	if physics.Velocity.Y != 4 {
		t.Errorf("ball vy = %v, want 4", physics.Velocity.Y)
	}
}
