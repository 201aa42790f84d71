package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/bricks.yaml
var defaultYAML []byte

// Default returns the built-in configuration, matching defaults/bricks.yaml.
func Default() GameConfig {
	return GameConfig{
		Field: FieldConfig{
			Width:  610,
			Height: 400,
		},
		Ball: BallConfig{
			Radius:         10,
			BaseSpeed:      5,
			SpeedIncrement: 0.1,
			SpawnY:         310,
		},
		Paddle: PaddleConfig{
			Width:  80,
			Height: 10,
			Y:      326,
			Step:   10,
		},
		Bricks: BricksConfig{
			Width:  75,
			Height: 20,
			Margin: 5,
			Top:    50,
			Layout: "classic",
		},
		Gameplay: GameplayConfig{
			Lives:        3,
			PointsPerHit: 10,
		},
		Timing: TimingConfig{
			TickInterval:  50 * time.Millisecond,
			LifeLostDelay: time.Second,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
