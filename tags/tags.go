package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Wall   = donburi.NewTag().SetName("Wall")
	Door   = donburi.NewTag().SetName("Door")
	Table  = donburi.NewTag().SetName("Table")
	Crate  = donburi.NewTag().SetName("Crate")
)
