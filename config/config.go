package config

import (
	"image/color"
	"math"
	"time"

	"github.com/automoto/skeld/doors"
	"github.com/automoto/skeld/motion"
	"github.com/automoto/skeld/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// PhysicsConfig contains the world and fixed step configuration values
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`         // Downward, world units per second squared
	FixedStep     float64 `yaml:"fixed_step"`      // Seconds per physics step
	MaxSubSteps   int     `yaml:"max_sub_steps"`   // Steps per frame before the backlog is dropped
	MaxFrameDelta float64 `yaml:"max_frame_delta"` // Frame clock clamp in seconds

	// Broadphase over the station footprint
	BoundsMin mgl64.Vec2 `yaml:"-"`
	BoundsMax mgl64.Vec2 `yaml:"-"`
	CellSize  int        `yaml:"cell_size"`

	DefaultFriction    float64 `yaml:"default_friction"`
	DefaultRestitution float64 `yaml:"default_restitution"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Body
	HalfExtents   mgl64.Vec3 `yaml:"-"`
	Mass          float64    `yaml:"mass"`
	LinearDamping float64    `yaml:"linear_damping"`
	EyeHeight     float64    `yaml:"eye_height"` // Above the body center

	// Movement
	MoveSpeed      float64 `yaml:"move_speed"`
	BoundingRadius float64 `yaml:"bounding_radius"`
	SlideFactor    float64 `yaml:"slide_factor"`
	JumpLift       float64 `yaml:"jump_lift"`
	JumpSpeed      float64 `yaml:"jump_speed"`
	Gravity        float64 `yaml:"gravity"`

	// Grounding probe, below the body center
	GroundProbeStart float64 `yaml:"ground_probe_start"`
	GroundProbeEnd   float64 `yaml:"ground_probe_end"`
}

// Params returns the locomotion parameters for the player.
func (p PlayerConfig) Params() motion.Params {
	m := motion.DefaultParams()
	m.MoveSpeed = p.MoveSpeed
	m.BoundingRadius = p.BoundingRadius
	m.SlideFactor = p.SlideFactor
	m.JumpLift = p.JumpLift
	m.JumpSpeed = p.JumpSpeed
	m.Gravity = p.Gravity
	m.GroundProbeStart = p.GroundProbeStart
	m.GroundProbeEnd = p.GroundProbeEnd
	return m
}

// DoorConfig contains door animation and interaction values
type DoorConfig struct {
	Duration time.Duration `yaml:"duration"`
	Offset   float64       `yaml:"offset"`
	Yaw      float64       `yaml:"yaw"`
	Radius   float64       `yaml:"radius"`
	Flash    time.Duration `yaml:"flash"`

	HighlightColor color.RGBA `yaml:"-"`
	FlashColor     color.RGBA `yaml:"-"`
}

// Motion returns the door registry settings.
func (d DoorConfig) Motion() doors.Motion {
	return doors.Motion{
		Duration: d.Duration,
		Offset:   d.Offset,
		Yaw:      d.Yaw,
		Radius:   d.Radius,
		Flash:    d.Flash,
	}
}

// CameraConfig contains first person camera values
type CameraConfig struct {
	FOV              float64 `yaml:"fov"`         // Horizontal, radians
	PitchLimit       float64 `yaml:"pitch_limit"` // Radians either way
	MouseSensitivity float64 `yaml:"mouse_sensitivity"`
	InvertY          bool    `yaml:"invert_y"`
	ViewDistance     float64 `yaml:"view_distance"` // Column raycast length
	Columns          int     `yaml:"columns"`
}

// DebugConfig contains debug overlay options
type DebugConfig struct {
	ShowOverlay     bool          `yaml:"show_overlay"`
	ShowColliders   bool          `yaml:"show_colliders"`
	MessageDuration time.Duration `yaml:"message_duration"`
	MapScale        float64       `yaml:"map_scale"` // Pixels per world unit in the collider view
}

// HUDConfig contains the on screen text and colors
type HUDConfig struct {
	DoorPrompt      string
	KeyHelp         []string
	TextColor       color.RGBA
	PanelColor      color.RGBA
	CrosshairColor  color.RGBA
	CrosshairRadius float64
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Doors DoorConfig
var Camera CameraConfig
var Debug DebugConfig
var HUD HUDConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Sky          = color.RGBA{R: 0x22, G: 0x22, B: 0x2a, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// WorldConfig returns the physics world settings.
func WorldConfig() physics.Config {
	return physics.Config{
		Gravity: mgl64.Vec3{0, -Physics.Gravity, 0},
		Bounds: physics.Bounds{
			Min:      Physics.BoundsMin,
			Max:      Physics.BoundsMax,
			CellSize: Physics.CellSize,
		},
		DefaultContact: physics.ContactMaterial{
			A:           physics.MaterialDefault,
			B:           physics.MaterialDefault,
			Friction:    Physics.DefaultFriction,
			Restitution: Physics.DefaultRestitution,
		},
	}
}

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "The Skeld",
	}

	// Physics Config
	Physics = PhysicsConfig{
		Gravity:       9.82,
		FixedStep:     1.0 / 60,
		MaxSubSteps:   5,
		MaxFrameDelta: 0.1,

		BoundsMin: mgl64.Vec2{-64, -32},
		BoundsMax: mgl64.Vec2{96, 64},
		CellSize:  4,

		DefaultFriction:    0.3,
		DefaultRestitution: 0,
	}

	// Player Config
	Player = PlayerConfig{
		HalfExtents:   mgl64.Vec3{0.3, 0.9, 0.3},
		Mass:          5,
		LinearDamping: 0.1,
		EyeHeight:     0.7,

		MoveSpeed:      0.3, // Units per frame
		BoundingRadius: 0.3,
		SlideFactor:    0.8,
		JumpLift:       0.1,
		JumpSpeed:      5,
		Gravity:        9.8,

		GroundProbeStart: 0.8,
		GroundProbeEnd:   1.1, // Just past half height
	}

	// Door Config
	Doors = DoorConfig{
		Duration:       500 * time.Millisecond,
		Offset:         2,
		Yaw:            math.Pi / 2,
		Radius:         3,
		Flash:          200 * time.Millisecond,
		HighlightColor: color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 255},
		FlashColor:     Red,
	}

	// Camera Config
	Camera = CameraConfig{
		FOV:              75 * math.Pi / 180,
		PitchLimit:       math.Pi/2 - 0.01,
		MouseSensitivity: 0.002,
		InvertY:          false,
		ViewDistance:     40,
		Columns:          240,
	}

	// Debug Config (defaults, can be overridden by saved settings)
	Debug = DebugConfig{
		ShowOverlay:     true,
		ShowColliders:   false,
		MessageDuration: 2 * time.Second,
		MapScale:        4,
	}

	HUD = HUDConfig{
		DoorPrompt: "Press E to open/close door",
		KeyHelp: []string{
			"WASD / Arrows: move",
			"Mouse: look (click to capture)",
			"Space: jump",
			"E: open/close door",
			"Esc: release mouse",
			"F3: debug overlay, F4: collider map",
		},
		TextColor:       White,
		PanelColor:      BlackOverlay,
		CrosshairColor:  White,
		CrosshairRadius: 2,
	}
}
