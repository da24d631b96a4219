package systems

import (
	"math"

	"github.com/automoto/soccer-stars/components"
	cfg "github.com/automoto/soccer-stars/config"
	"github.com/automoto/soccer-stars/tags"
	"github.com/yohamta/donburi"
)

// UpdateCollisions resolves player-ball, player-player and then wall contacts.
func UpdateCollisions(w donburi.World) {
	players := playersByIndex(w)

	for _, player := range players {
		if player == nil {
			continue
		}
		collideWithTagged(player, tags.ResolvBall, cfg.Physics.BallRestitution)
	}

	// Checked from player 1 only so the pair resolves once.
	if players[0] != nil {
		collideWithTagged(players[0], tags.ResolvPlayer, cfg.Physics.PlayerRestitution)
	}

	fieldEntry, ok := components.Field.First(w)
	if !ok {
		return
	}
	field := components.Field.Get(fieldEntry)

	components.Physics.Each(w, func(e *donburi.Entry) {
		if ResolveWalls(components.Body.Get(e), components.Physics.Get(e), field) {
			syncObject(e)
		}
	})
}

// collideWithTagged resolves e against every body tagged tag that shares a broadphase cell.
func collideWithTagged(e *donburi.Entry, tag string, restitution float64) {
	check := components.Object.Get(e).Check(0, 0, tag)
	if check == nil {
		return
	}
	for _, o := range check.ObjectsByTags(tag) {
		other, ok := o.Data.(*donburi.Entry)
		if !ok || other == e {
			continue
		}
		collidePair(e, other, restitution)
	}
}

func collidePair(a, b *donburi.Entry, restitution float64) {
	if ResolveBodies(
		components.Body.Get(a), components.Physics.Get(a),
		components.Body.Get(b), components.Physics.Get(b),
		restitution,
	) {
		syncObject(a)
		syncObject(b)
	}
}

// ResolveBodies applies an impulse along the contact normal so that the relative
// normal velocity becomes -restitution times its previous value, then pushes the
// bodies apart by half the overlap each. Both masses must be positive. Returns
// false when the disks do not overlap or share a center.
func ResolveBodies(aBody *components.BodyData, aPhys *components.PhysicsData,
	bBody *components.BodyData, bPhys *components.PhysicsData, restitution float64) bool {
	dx := bBody.Position.X - aBody.Position.X
	dy := bBody.Position.Y - aBody.Position.Y
	distance := math.Hypot(dx, dy)

	if distance == 0 {
		return false
	}
	overlap := aBody.Radius + bBody.Radius - distance
	if overlap <= 0 {
		return false
	}

	nx := dx / distance
	ny := dy / distance

	relVel := (bPhys.Velocity.X-aPhys.Velocity.X)*nx + (bPhys.Velocity.Y-aPhys.Velocity.Y)*ny

	invA := 1 / aPhys.Mass
	invB := 1 / bPhys.Mass
	impulse := -(1 + restitution) * relVel / (invA + invB)

	aPhys.Velocity.X -= impulse * invA * nx
	aPhys.Velocity.Y -= impulse * invA * ny
	bPhys.Velocity.X += impulse * invB * nx
	bPhys.Velocity.Y += impulse * invB * ny

	half := overlap / 2
	aBody.Position.X -= nx * half
	aBody.Position.Y -= ny * half
	bBody.Position.X += nx * half
	bBody.Position.Y += ny * half

	return true
}

// ResolveWalls clamps the disk inside the field and reflects the normal velocity
// component, scaled by the body's wall restitution. Returns true if it touched a wall.
func ResolveWalls(body *components.BodyData, physics *components.PhysicsData, field *components.FieldData) bool {
	r := body.Radius
	hit := false

	if body.Position.Y-r < field.Top {
		body.Position.Y = field.Top + r
		physics.Velocity.Y = -physics.Velocity.Y * physics.WallRestitution
		hit = true
	}
	if body.Position.Y+r > field.Bottom {
		body.Position.Y = field.Bottom - r
		physics.Velocity.Y = -physics.Velocity.Y * physics.WallRestitution
		hit = true
	}
	if body.Position.X-r < field.Left {
		body.Position.X = field.Left + r
		physics.Velocity.X = -physics.Velocity.X * physics.WallRestitution
		hit = true
	}
	if body.Position.X+r > field.Right {
		body.Position.X = field.Right - r
		physics.Velocity.X = -physics.Velocity.X * physics.WallRestitution
		hit = true
	}

	return hit
}
