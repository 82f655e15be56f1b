package factory

import (
	"github.com/automoto/skeld/archetypes"
	"github.com/automoto/skeld/components"
	cfg "github.com/automoto/skeld/config"
	"github.com/automoto/skeld/scene"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, at mgl64.Vec3) {
	camera := archetypes.Camera.Spawn(ecs)
	view := scene.NewCamera(cfg.Camera.FOV, cfg.Camera.PitchLimit)
	view.SetPosition(at.Add(mgl64.Vec3{0, cfg.Player.EyeHeight, 0}))
	components.Camera.Set(camera, &components.CameraData{
		View:      view,
		MapCenter: math.Vec2{X: at.X(), Y: at.Z()},
	})
}
