package components

import (
	"github.com/automoto/skeld/doors"
	"github.com/yohamta/donburi"
)

type DoorData struct {
	*doors.Door
}

var Door = donburi.NewComponentType[DoorData]()
