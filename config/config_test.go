package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/vi-elevator/audio"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to validate, got %v", err)
	}
	if cfg.TickInterval() != time.Second/60 {
		t.Errorf("Expected 60 Hz tick interval, got %v", cfg.TickInterval())
	}
	if cfg.ActorConfig().RiderDrift {
		t.Error("Expected rider drift off by default")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Window.Width != 1024 || cfg.Window.Height != 740 {
		t.Errorf("Expected 1024x740, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := writeFile(t, "elevator.yaml", `
window:
  title: Lobby
  resizable: false
tick_rate: 30
actors:
  rider_drift: true
motion:
  max_speed: 2.5
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Window.Title != "Lobby" {
		t.Errorf("Expected title Lobby, got %q", cfg.Window.Title)
	}
	if cfg.Window.Resizable {
		t.Error("Expected resizable false")
	}
	if cfg.Window.Width != 1024 {
		t.Errorf("Expected untouched width 1024, got %d", cfg.Window.Width)
	}
	if cfg.TickRate != 30 {
		t.Errorf("Expected tick rate 30, got %d", cfg.TickRate)
	}
	if !cfg.Actors.RiderDrift {
		t.Error("Expected rider drift true")
	}
	if cfg.Motion.MaxSpeed != 2.5 {
		t.Errorf("Expected max speed 2.5, got %v", cfg.Motion.MaxSpeed)
	}
	if len(cfg.Motion.Brackets) != 6 {
		t.Errorf("Expected default brackets kept, got %d", len(cfg.Motion.Brackets))
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.yaml", "")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected empty file to load, got %v", err)
	}
	if cfg.TickRate != 60 {
		t.Errorf("Expected default tick rate 60, got %d", cfg.TickRate)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	path := writeFile(t, "bad.yaml", "tick_rate: [nope\n")
	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestEnvOverridesYAML(t *testing.T) {
	path := writeFile(t, "elevator.yaml", "tick_rate: 30\nhud: true\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	t.Setenv("ELEVATOR_TICK_RATE", "120")
	t.Setenv("ELEVATOR_HUD", "false")
	t.Setenv("ELEVATOR_MAX_SPEED", "0.5")

	if err := cfg.LoadEnv(""); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.TickRate != 120 {
		t.Errorf("Expected tick rate 120, got %d", cfg.TickRate)
	}
	if cfg.HUD {
		t.Error("Expected HUD disabled by env")
	}
	if cfg.Motion.MaxSpeed != 0.5 {
		t.Errorf("Expected max speed 0.5, got %v", cfg.Motion.MaxSpeed)
	}
}

func TestLoadEnvFile(t *testing.T) {
	envFile := writeFile(t, ".env", "ELEVATOR_FLIP_ODDS=0\nELEVATOR_TITLE=From File\n")

	// Restore whatever godotenv sets
	for _, key := range []string{"ELEVATOR_FLIP_ODDS", "ELEVATOR_TITLE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Default()
	if err := cfg.LoadEnv(envFile); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Actors.FlipOdds != 0 {
		t.Errorf("Expected flip odds 0, got %d", cfg.Actors.FlipOdds)
	}
	if cfg.Window.Title != "From File" {
		t.Errorf("Expected title from .env, got %q", cfg.Window.Title)
	}
}

func TestLoadEnvMissingFile(t *testing.T) {
	cfg := Default()
	if err := cfg.LoadEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("Expected missing .env to be ignored, got %v", err)
	}
}

func TestLoadEnvBadValue(t *testing.T) {
	t.Setenv("ELEVATOR_TICK_RATE", "fast")
	cfg := Default()
	if err := cfg.LoadEnv(""); err == nil {
		t.Error("Expected error for non-numeric tick rate")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }},
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative flip odds", func(c *Config) { c.Actors.FlipOdds = -1 }},
		{"loud", func(c *Config) { c.Audio.MasterVolume = 1.5 }},
		{"no sample rate", func(c *Config) { c.Audio.SampleRate = 0 }},
		{"stopped cab", func(c *Config) { c.Motion.MaxSpeed = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestAudioConfig(t *testing.T) {
	cfg := Default()
	cfg.Audio.Enabled = false
	cfg.Audio.MasterVolume = 0.3

	ac := cfg.AudioConfig()
	if ac.Enabled {
		t.Error("Expected audio disabled")
	}
	if ac.MasterVolume != 0.3 {
		t.Errorf("Expected master volume 0.3, got %v", ac.MasterVolume)
	}
}

func TestLoadEnvAppliesAudioVariables(t *testing.T) {
	t.Setenv("ELEVATOR_AUDIO_ENABLED", "false")
	t.Setenv("ELEVATOR_MASTER_VOLUME", "40")
	t.Setenv("ELEVATOR_SFX_VOLUMES", `{"click":0.9}`)

	cfg := Default()
	if err := cfg.LoadEnv(""); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled by env")
	}
	if cfg.Audio.MasterVolume != 0.4 {
		t.Errorf("Expected master volume 0.4, got %v", cfg.Audio.MasterVolume)
	}
	if cfg.Audio.Effects["click"] != 0.9 {
		t.Errorf("Expected click volume 0.9, got %v", cfg.Audio.Effects["click"])
	}

	ac := cfg.AudioConfig()
	if ac.EffectVolumes[audio.SoundClick] != 0.9 {
		t.Errorf("Expected click volume carried to audio config, got %v", ac.EffectVolumes[audio.SoundClick])
	}
}

func TestAudioConfigIgnoresLateEnv(t *testing.T) {
	cfg := Default()
	if err := cfg.LoadEnv(""); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	cfg.Audio.Enabled = false

	// Settings are frozen once LoadEnv has run
	t.Setenv("ELEVATOR_AUDIO_ENABLED", "true")
	if cfg.AudioConfig().Enabled {
		t.Error("Expected AudioConfig to keep the loaded setting")
	}
}

func TestValidateEffectVolume(t *testing.T) {
	cfg := Default()
	cfg.Audio.Effects["chime"] = 2
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for effect volume above 1")
	}
}
