package config

import "github.com/yohamta/donburi/ecs"

// Default is the only render layer.
const Default ecs.LayerID = iota

// SettingsConfig contains the user settings that are saved between runs
type SettingsConfig struct {
	MinSensitivity float64
	MaxSensitivity float64
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		MinSensitivity: 0.0005,
		MaxSensitivity: 0.01,
	}
}
