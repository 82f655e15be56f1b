package components

import (
	"github.com/automoto/skeld/motion"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Locomotor *motion.Locomotor
	Grounded  bool
	LastStep  motion.Step
	Room      string // Room the player stands in, "" outside the station
}

var Player = donburi.NewComponentType[PlayerData]()
