package components

import (
	"github.com/automoto/skeld/scene"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	View      *scene.Camera
	MapCenter math.Vec2 // Collider map focus on the XZ plane, smoothed
}

var Camera = donburi.NewComponentType[CameraData]()
