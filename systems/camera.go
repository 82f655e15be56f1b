package systems

import (
	"github.com/automoto/skeld/components"
	cfg "github.com/automoto/skeld/config"
	"github.com/automoto/skeld/scene"
	"github.com/automoto/skeld/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// mapFollowSmoothing is how fast the collider map recenters (0.0-1.0).
const mapFollowSmoothing = 0.2

// UpdateLook turns the camera by this frame's mouse travel.
// Must run BEFORE UpdateLocomotion so movement uses the new heading.
func UpdateLook(ecs *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	in := getOrCreateInput(ecs)
	settings := GetOrCreateSettings(ecs)
	look(components.Camera.Get(cameraEntry).View, in.LookX, in.LookY, settings)
}

func look(view *scene.Camera, dx, dy float64, settings *components.SettingsData) {
	if dx == 0 && dy == 0 {
		return
	}
	sens := settings.MouseSensitivity
	pitch := -dy * sens
	if settings.InvertY {
		pitch = -pitch
	}
	view.Look(-dx*sens, pitch)
}

// UpdateCamera puts the eye on the player after locomotion and eases the
// collider map toward it.
func UpdateCamera(ecs *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	pos := components.Body.Get(playerEntry).Body.Position()
	follow(camera, pos)
}

func follow(camera *components.CameraData, pos mgl64.Vec3) {
	camera.View.SetPosition(pos.Add(mgl64.Vec3{0, cfg.Player.EyeHeight, 0}))

	camera.MapCenter.X += (pos.X() - camera.MapCenter.X) * mapFollowSmoothing
	camera.MapCenter.Y += (pos.Z() - camera.MapCenter.Y) * mapFollowSmoothing
}
