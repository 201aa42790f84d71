// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import "time"

// GameConfig contains all configuration for a game session.
// Geometry is expressed in field units, the coordinate space of the play field.
type GameConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Ball     BallConfig     `yaml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Bricks   BricksConfig   `yaml:"bricks"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Timing   TimingConfig   `yaml:"timing"`
}

// FieldConfig defines the play field size.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines the ball size and speed progression.
type BallConfig struct {
	Radius         float64 `yaml:"radius"`
	BaseSpeed      float64 `yaml:"base_speed"`      // Distance per tick at spawn
	SpeedIncrement float64 `yaml:"speed_increment"` // Added per brick hit
	SpawnY         float64 `yaml:"spawn_y"`         // Center Y of a freshly spawned ball
}

// PaddleConfig defines the paddle size, row and movement step.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Y      float64 `yaml:"y"`    // Center Y
	Step   float64 `yaml:"step"` // Distance per move input
}

// BricksConfig defines brick size and the board layout.
type BricksConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin float64 `yaml:"margin"` // Horizontal inset of the first and last column
	Top    float64 `yaml:"top"`    // Center Y of the first row

	// Layout names a built-in board. Ignored when Pattern is set.
	Layout string `yaml:"layout"`

	// Pattern is a custom board, one string per row: '1'-'3' = durability, '.' = empty.
	Pattern []string `yaml:"pattern,omitempty"`
}

// GameplayConfig defines lives and scoring.
type GameplayConfig struct {
	Lives        int `yaml:"lives"`
	PointsPerHit int `yaml:"points_per_hit"`
}

// TimingConfig defines the two fixed delays of the game loop.
type TimingConfig struct {
	TickInterval  time.Duration `yaml:"tick_interval"`
	LifeLostDelay time.Duration `yaml:"life_lost_delay"`
}

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ParsePreset converts a CLI value to a Preset. Empty means normal.
func ParsePreset(s string) (Preset, bool) {
	switch Preset(s) {
	case "", PresetNormal:
		return PresetNormal, true
	case PresetEasy:
		return PresetEasy, true
	case PresetHard:
		return PresetHard, true
	default:
		return "", false
	}
}
