package factory

import (
	"github.com/automoto/soccer-stars/archetypes"
	"github.com/automoto/soccer-stars/components"
	cfg "github.com/automoto/soccer-stars/config"
	"github.com/automoto/soccer-stars/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns a player disk centered on spawn.
func CreatePlayer(w donburi.World, index int, spawn math.Vec2) *donburi.Entry {
	physics := bodyPhysics("player", cfg.Player)
	player := archetypes.Player.Spawn(w)

	radius := cfg.Player.Radius()
	obj := newDiskObject(spawn.X, spawn.Y, radius, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	components.Player.SetValue(player, components.PlayerData{Index: index})
	components.Body.SetValue(player, components.BodyData{
		Position: spawn,
		Radius:   radius,
		Spawn:    spawn,
	})
	components.Physics.SetValue(player, physics)

	return player
}
