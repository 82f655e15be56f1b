package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/skeld/components"
	cfg "github.com/automoto/skeld/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MouseSensitivity float64 `json:"mouseSensitivity"`
	InvertY          bool    `json:"invertY"`
	ShowOverlay      bool    `json:"showOverlay"`
	ShowColliders    bool    `json:"showColliders"`
}

// itemStore is the part of gdata.Manager the settings need.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "skeld",
	})
	if err != nil {
		return err
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil without an
// error when nothing was saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := store.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the current settings from the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		MouseSensitivity: s.MouseSensitivity,
		InvertY:          s.InvertY,
		ShowOverlay:      s.ShowOverlay,
		ShowColliders:    s.ShowColliders,
	})
}

// ApplySavedSettingsGlobal applies settings to the global config.
// Used during startup before scenes are created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.MouseSensitivity > 0 {
		cfg.Camera.MouseSensitivity = mgl64.Clamp(saved.MouseSensitivity, cfg.Settings.MinSensitivity, cfg.Settings.MaxSensitivity)
	}
	cfg.Camera.InvertY = saved.InvertY
	cfg.Debug.ShowOverlay = saved.ShowOverlay
	cfg.Debug.ShowColliders = saved.ShowColliders
}

// GetOrCreateSettings returns the settings singleton, seeded from the
// global config on first use.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			MouseSensitivity: cfg.Camera.MouseSensitivity,
			InvertY:          cfg.Camera.InvertY,
			ShowOverlay:      cfg.Debug.ShowOverlay,
			ShowColliders:    cfg.Debug.ShowColliders,
		})
	}
	return components.Settings.Get(entry)
}

// UpdateSettings writes changed settings back to disk.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Dirty {
		return
	}
	SaveCurrentSettings(settings)
	settings.Dirty = false
}
