package components

import "github.com/yohamta/donburi"

// SettingsData stores the user settings that persist between runs
type SettingsData struct {
	MouseSensitivity float64
	InvertY          bool
	ShowOverlay      bool
	ShowColliders    bool

	Dirty bool // Changed since the last save
}

var Settings = donburi.NewComponentType[SettingsData]()
