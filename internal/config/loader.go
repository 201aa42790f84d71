package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.bricks/config.yaml -> ./configs/bricks.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
func Load(customPath string) (GameConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return GameConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/bricks.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (GameConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg GameConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bricks", filename)
}

// Validate reports every invalid setting at once.
func (c GameConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("field.width", c.Field.Width)
	positive("field.height", c.Field.Height)
	positive("ball.radius", c.Ball.Radius)
	positive("ball.base_speed", c.Ball.BaseSpeed)
	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("paddle.step", c.Paddle.Step)
	positive("bricks.width", c.Bricks.Width)
	positive("bricks.height", c.Bricks.Height)

	if c.Ball.SpeedIncrement < 0 {
		errs = append(errs, fmt.Errorf("ball.speed_increment must not be negative, got %v", c.Ball.SpeedIncrement))
	}
	if c.Paddle.Width > c.Field.Width {
		errs = append(errs, fmt.Errorf("paddle.width %v exceeds field.width %v", c.Paddle.Width, c.Field.Width))
	}
	if c.Gameplay.Lives < 0 {
		errs = append(errs, fmt.Errorf("gameplay.lives must not be negative, got %d", c.Gameplay.Lives))
	}
	if c.Timing.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_interval must be positive, got %v", c.Timing.TickInterval))
	}
	if c.Timing.LifeLostDelay <= 0 {
		errs = append(errs, fmt.Errorf("timing.life_lost_delay must be positive, got %v", c.Timing.LifeLostDelay))
	}
	for i, row := range c.Bricks.Pattern {
		if strings.Trim(row, ".123") != "" {
			errs = append(errs, fmt.Errorf("bricks.pattern[%d] %q: only '.', '1', '2', '3' are allowed", i, row))
		}
	}
	if len(c.Bricks.Pattern) == 0 && c.Bricks.Layout == "" {
		errs = append(errs, errors.New("bricks: either layout or pattern must be set"))
	}

	return errors.Join(errs...)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 100
		cfg.Ball.BaseSpeed = 4
	case PresetHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 60
		cfg.Ball.BaseSpeed = 6
	}
}
