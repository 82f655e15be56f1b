package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidTuning = errors.New("config: invalid tuning")

// tuning is the YAML overlay. Sections start from the current globals so
// keys missing from the file keep their values.
type tuning struct {
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Doors   DoorConfig    `yaml:"doors"`
	Camera  CameraConfig  `yaml:"camera"`
	Debug   DebugConfig   `yaml:"debug"`
}

// LoadTuning reads a YAML file and applies it over the global config.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning: %w", err)
	}
	if err := ApplyTuning(data); err != nil {
		return fmt.Errorf("tuning %s: %w", path, err)
	}
	return nil
}

// ApplyTuning overlays YAML data on the global config. Unknown keys are
// rejected and nothing is changed on error.
func ApplyTuning(data []byte) error {
	t := tuning{
		Physics: Physics,
		Player:  Player,
		Doors:   Doors,
		Camera:  Camera,
		Debug:   Debug,
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode: %w", err)
	}
	if err := t.validate(); err != nil {
		return err
	}
	Physics = t.Physics
	Player = t.Player
	Doors = t.Doors
	Camera = t.Camera
	Debug = t.Debug
	return nil
}

func (t tuning) validate() error {
	switch {
	case t.Physics.FixedStep <= 0:
		return fmt.Errorf("physics.fixed_step %g: %w", t.Physics.FixedStep, ErrInvalidTuning)
	case t.Physics.MaxSubSteps <= 0:
		return fmt.Errorf("physics.max_sub_steps %d: %w", t.Physics.MaxSubSteps, ErrInvalidTuning)
	case t.Physics.MaxFrameDelta <= 0:
		return fmt.Errorf("physics.max_frame_delta %g: %w", t.Physics.MaxFrameDelta, ErrInvalidTuning)
	case t.Physics.CellSize <= 0:
		return fmt.Errorf("physics.cell_size %d: %w", t.Physics.CellSize, ErrInvalidTuning)
	case t.Player.MoveSpeed < 0 || t.Player.BoundingRadius <= 0:
		return fmt.Errorf("player movement: %w", ErrInvalidTuning)
	case t.Player.GroundProbeEnd <= t.Player.GroundProbeStart:
		return fmt.Errorf("player ground probe %g..%g: %w", t.Player.GroundProbeStart, t.Player.GroundProbeEnd, ErrInvalidTuning)
	case t.Doors.Duration <= 0 || t.Doors.Radius <= 0:
		return fmt.Errorf("doors: %w", ErrInvalidTuning)
	case t.Camera.Columns <= 0:
		return fmt.Errorf("camera.columns %d: %w", t.Camera.Columns, ErrInvalidTuning)
	}
	return nil
}
