package systems

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/automoto/skeld/components"
	cfg "github.com/automoto/skeld/config"
	"github.com/automoto/skeld/doors"
	"github.com/automoto/skeld/input"
	"github.com/automoto/skeld/motion"
	"github.com/automoto/skeld/physics"
	"github.com/automoto/skeld/scene"
	"github.com/automoto/skeld/station"
	"github.com/automoto/skeld/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newStation(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	simEntry, err := factory.CreateSimulation(e, station.Skeld())
	require.NoError(t, err)
	sim := components.Simulation.Get(simEntry)
	_, err = factory.CreatePlayer(e, sim, station.Skeld().Spawn)
	require.NoError(t, err)
	factory.CreateCamera(e, station.Skeld().Spawn)
	return e
}

func newDoorAt(t *testing.T, reg *doors.Registry, pos mgl64.Vec3) *doors.Door {
	t.Helper()
	body := physics.NewBox(0, mgl64.Vec3{1.5, 1.5, 0.1}, pos)
	d := doors.New(nil, nil, body, doors.Horizontal)
	reg.Add(d)
	return d
}

func TestApplyCursor(t *testing.T) {
	in := &components.InputData{}

	applyCursor(in, 100, 100)
	assert.False(t, in.HasCursor, "no look while the cursor is free")

	in.Captured = true
	applyCursor(in, 100, 100)
	assert.Zero(t, in.LookX, "first captured frame only records")
	assert.True(t, in.HasCursor)

	applyCursor(in, 110, 95)
	assert.Equal(t, 10.0, in.LookX)
	assert.Equal(t, -5.0, in.LookY)

	in.Captured = false
	applyCursor(in, 200, 200)
	assert.Zero(t, in.LookX)
	assert.False(t, in.HasCursor)
}

func TestLook(t *testing.T) {
	settings := &components.SettingsData{MouseSensitivity: 0.01}
	view := scene.NewCamera(math.Pi/2, 1)

	look(view, 10, 10, settings)
	assert.InDelta(t, -0.1, view.Yaw, 1e-12, "moving right turns right")
	assert.InDelta(t, -0.1, view.Pitch, 1e-12, "moving down looks down")

	settings.InvertY = true
	look(view, 0, 10, settings)
	assert.InDelta(t, 0, view.Pitch, 1e-12)

	look(view, 0, -1000, settings)
	assert.Equal(t, -1.0, view.Pitch, "pitch is clamped")
}

func TestFollow(t *testing.T) {
	camera := &components.CameraData{View: scene.NewCamera(1, 1)}
	follow(camera, mgl64.Vec3{10, 1, -5})

	assert.InDelta(t, 1+cfg.Player.EyeHeight, camera.View.Position.Y(), 1e-12)
	assert.InDelta(t, 10, camera.View.Position.X(), 1e-12)
	assert.InDelta(t, 10*mapFollowSmoothing, camera.MapCenter.X, 1e-12)
	assert.InDelta(t, -5*mapFollowSmoothing, camera.MapCenter.Y, 1e-12)
}

func TestUpdateDoorsToggleAndMessages(t *testing.T) {
	reg := doors.NewRegistry(doors.DefaultMotion())
	d := newDoorAt(t, reg, mgl64.Vec3{0, 1.5, 0})
	msg := &components.MessageStateData{}
	pos := mgl64.Vec3{1, 0.9, 1}

	assert.Nil(t, updateDoors(reg, msg, mgl64.Vec3{20, 0.9, 0}, true, epoch))
	assert.Equal(t, "No door in range", activeMessage(msg, epoch))

	got := updateDoors(reg, msg, pos, true, epoch)
	assert.Same(t, d, got)
	assert.Equal(t, doors.Opening, d.State())
	assert.True(t, d.Highlighted())
	assert.Equal(t, "Door opening", activeMessage(msg, epoch))

	mid := epoch.Add(100 * time.Millisecond)
	assert.Nil(t, updateDoors(reg, msg, pos, true, mid), "mid-run interaction is ignored")
	assert.Equal(t, "Door is opening", activeMessage(msg, mid))

	updateDoors(reg, msg, pos, false, epoch.Add(time.Second))
	assert.Equal(t, doors.Open, d.State())
	assert.False(t, d.Body.CollisionResponse)

	updateDoors(reg, msg, mgl64.Vec3{20, 0.9, 0}, false, epoch.Add(time.Second))
	assert.False(t, d.Highlighted())
}

func TestActiveMessageExpires(t *testing.T) {
	msg := &components.MessageStateData{}
	assert.Empty(t, activeMessage(msg, epoch))

	showMessage(msg, "hello", epoch)
	assert.Equal(t, "hello", activeMessage(msg, epoch.Add(cfg.Debug.MessageDuration/2)))
	assert.Empty(t, activeMessage(msg, epoch.Add(cfg.Debug.MessageDuration)))
}

func TestColumnSpan(t *testing.T) {
	top, bottom := columnSpan(2, 1, 3, 100, 200)
	assert.InDelta(t, 100-200, top, 1e-9)
	assert.InDelta(t, 100+100, bottom, 1e-9)

	nearTop, nearBottom := columnSpan(0, 1, 3, 100, 200)
	assert.False(t, math.IsInf(nearTop, 0))
	assert.Greater(t, nearBottom, bottom)
}

func TestShade(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	assert.Equal(t, c, shade(c, 0, 40, false))

	far := shade(c, 40, 40, false)
	assert.Equal(t, uint8(50), far.R)
	assert.Equal(t, uint8(255), far.A)

	side := shade(c, 0, 40, true)
	assert.Equal(t, uint8(160), side.R)
}

func TestAddColorSaturates(t *testing.T) {
	got := addColor(color.RGBA{0xf0, 0x10, 0, 0xff}, color.RGBA{0x33, 0x33, 0x33, 0})
	assert.Equal(t, color.RGBA{0xff, 0x43, 0x33, 0xff}, got)
}

func TestColumnRayCenter(t *testing.T) {
	view := scene.NewCamera(math.Pi/2, 1)
	dir, offset := columnRay(view, 0, 1)
	assert.InDelta(t, 0, offset, 1e-12)
	assert.InDelta(t, -1, dir.Z(), 1e-12)

	left, offset := columnRay(view, 0, 2)
	assert.Less(t, offset, 0.0)
	assert.Less(t, left.X(), 0.0, "left columns look left")
}

func TestStepSimulation(t *testing.T) {
	e := newStation(t)
	sim, ok := GetSimulation(e)
	require.True(t, ok)

	stepSimulation(sim, epoch)
	assert.Zero(t, sim.Steps, "first frame has no delta")

	stepSimulation(sim, epoch.Add(40*time.Millisecond))
	assert.Equal(t, 2, sim.Steps)
	assert.InDelta(t, 2*cfg.Physics.FixedStep, sim.World.Time(), 1e-9)
}

func TestCollectDebugInfo(t *testing.T) {
	e := newStation(t)
	getOrCreateInput(e).State.KeyDown(input.Key(ebiten.KeyW))
	showMessage(getOrCreateMessage(e), "hi", epoch)
	UpdateGrounding(e)

	info := collectDebugInfo(e, epoch)
	assert.Equal(t, "Cafeteria", info.Room)
	assert.Equal(t, []string{"forward"}, info.Held)
	assert.Equal(t, "hi", info.Message)
	assert.Empty(t, info.NearestDoor, "spawn is away from every door")
	assert.InDelta(t, station.Skeld().Spawn.X(), info.Position.X(), 1e-12)
	assert.Zero(t, info.AnimatingDoors)
}

func TestToggleOverlays(t *testing.T) {
	s := input.NewState(cfg.Input.KeyBindings())
	settings := &components.SettingsData{ShowOverlay: true}

	s.KeyDown(input.Key(ebiten.KeyF3))
	s.KeyDown(input.Key(ebiten.KeyF4))
	toggleOverlays(s, settings)
	assert.False(t, settings.ShowOverlay)
	assert.True(t, settings.ShowColliders)
	assert.True(t, settings.Dirty)
}

func TestIntentFromActions(t *testing.T) {
	s := input.NewState(cfg.Input.KeyBindings())
	s.KeyDown(input.Key(ebiten.KeyUp))
	s.KeyDown(input.Key(ebiten.KeyD))
	s.KeyDown(input.Key(ebiten.KeySpace))

	assert.Equal(t, motion.Intent{Forward: true, Right: true, Jump: true}, intent(s))
}

func TestDoorLookup(t *testing.T) {
	e := newStation(t)
	sim, _ := GetSimulation(e)
	lookup := doorLookup(e)
	require.Len(t, lookup, sim.Doors.Len())
	for _, d := range sim.Doors.Doors() {
		assert.Same(t, d, lookup[d.Body.ID])
	}
}

type memoryStore map[string][]byte

func (m memoryStore) LoadItem(key string) ([]byte, error) {
	return m[key], nil
}

func (m memoryStore) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

func withStore(t *testing.T) memoryStore {
	t.Helper()
	prev := store
	camera, debug := cfg.Camera, cfg.Debug
	m := memoryStore{}
	store = m
	t.Cleanup(func() {
		store = prev
		cfg.Camera, cfg.Debug = camera, debug
	})
	return m
}

func TestLoadSettingsWithoutData(t *testing.T) {
	withStore(t)
	saved, err := LoadSettings()
	assert.NoError(t, err)
	assert.Nil(t, saved)
}

func TestUpdateSettingsSavesWhenDirty(t *testing.T) {
	m := withStore(t)
	e := ecs.NewECS(donburi.NewWorld())
	settings := GetOrCreateSettings(e)

	UpdateSettings(e)
	assert.Empty(t, m, "clean settings are not written")

	settings.InvertY = true
	settings.ShowColliders = true
	settings.Dirty = true
	UpdateSettings(e)
	assert.False(t, settings.Dirty)

	saved, err := LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.True(t, saved.InvertY)
	assert.True(t, saved.ShowColliders)
	assert.Equal(t, cfg.Camera.MouseSensitivity, saved.MouseSensitivity)
}

func TestLoadSettingsRejectsGarbage(t *testing.T) {
	m := withStore(t)
	m[settingsKey] = []byte("{not json")
	saved, err := LoadSettings()
	assert.Error(t, err)
	assert.Nil(t, saved)
}

func TestApplySavedSettingsClampsSensitivity(t *testing.T) {
	withStore(t)
	ApplySavedSettingsGlobal(&SavedSettings{MouseSensitivity: 1, InvertY: true, ShowColliders: true})
	assert.Equal(t, cfg.Settings.MaxSensitivity, cfg.Camera.MouseSensitivity)
	assert.True(t, cfg.Camera.InvertY)
	assert.True(t, cfg.Debug.ShowColliders)
	assert.False(t, cfg.Debug.ShowOverlay)

	before := cfg.Camera.MouseSensitivity
	ApplySavedSettingsGlobal(&SavedSettings{})
	assert.Equal(t, before, cfg.Camera.MouseSensitivity, "zero keeps the current sensitivity")

	ApplySavedSettingsGlobal(nil)
}
