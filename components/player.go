package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Index int // 0 = player 1 (left), 1 = player 2 (right)
}

var Player = donburi.NewComponentType[PlayerData]()
