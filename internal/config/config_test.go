package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	want := Default()
	if cfg.Field != want.Field || cfg.Ball != want.Ball || cfg.Paddle != want.Paddle {
		t.Errorf("embedded YAML geometry differs from Default()\n got: %+v\nwant: %+v", cfg, want)
	}
	if cfg.Gameplay != want.Gameplay || cfg.Timing != want.Timing {
		t.Errorf("embedded YAML gameplay/timing differs from Default()\n got: %+v\nwant: %+v", cfg, want)
	}
	if cfg.Bricks.Layout != "classic" {
		t.Errorf("default layout = %q, expected classic", cfg.Bricks.Layout)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("gameplay:\n  lives: 7\ntiming:\n  tick_interval: 20ms\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Gameplay.Lives != 7 {
		t.Errorf("lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	if cfg.Timing.TickInterval != 20*time.Millisecond {
		t.Errorf("tick_interval = %v, expected 20ms", cfg.Timing.TickInterval)
	}
	if cfg.Field.Width != 610 || cfg.Paddle.Width != 80 {
		t.Error("unset keys should keep their default values")
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero width", "field:\n  width: 0\n", "field.width"},
		{"negative lives", "gameplay:\n  lives: -1\n", "gameplay.lives"},
		{"wide paddle", "paddle:\n  width: 700\n", "paddle.width"},
		{"bad tier", "bricks:\n  pattern: [\"334\"]\n", "bricks.pattern[0]"},
		{"zero tick", "timing:\n  tick_interval: 0s\n", "timing.tick_interval"},
		{"malformed", "field: [", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if tc.want != "" && !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateReportsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Field.Height = 0
	cfg.Ball.BaseSpeed = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	msg := err.Error()
	if !strings.Contains(msg, "field.height") || !strings.Contains(msg, "ball.base_speed") {
		t.Errorf("Validate() should report both problems, got %q", msg)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("paddle:\n  step: 15\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Paddle.Step != 15 {
		t.Errorf("paddle.step = %v, expected 15", cfg.Paddle.Step)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() with a missing explicit path should fail")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should wrap the not-exist cause, got %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "tick_interval: 50ms") {
		t.Errorf("durations should encode as strings, got:\n%s", data)
	}

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if cfg.Timing != Default().Timing {
		t.Errorf("timing = %+v after round trip", cfg.Timing)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    Preset
		lives     int
		baseSpeed float64
	}{
		{PresetEasy, 5, 4},
		{PresetNormal, 3, 5},
		{PresetHard, 2, 6},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := Default()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
			if cfg.Ball.BaseSpeed != tc.baseSpeed {
				t.Errorf("base_speed = %v, expected %v", cfg.Ball.BaseSpeed, tc.baseSpeed)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced an invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != PresetNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, ok)
	}
	if p, ok := ParsePreset("hard"); !ok || p != PresetHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("insane"); ok {
		t.Error("ParsePreset(insane) should fail")
	}
}
