// Package config loads simulator settings from a YAML file, a .env file and ELEVATOR_* variables
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-elevator/audio"
	"github.com/lixenwraith/vi-elevator/parameter"
	"github.com/lixenwraith/vi-elevator/physics"
	"github.com/lixenwraith/vi-elevator/system"
)

// WindowConfig describes the terminal surface
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`  // World extent in pixels
	Height    int    `yaml:"height"` // World extent in pixels
	Resizable bool   `yaml:"resizable"`
}

// ActorsConfig tunes stick-figure wandering
type ActorsConfig struct {
	FlipOdds   int  `yaml:"flip_odds"`
	FlipValue  int  `yaml:"flip_value"`
	RiderDrift bool `yaml:"rider_drift"`
}

// AudioSection is the file form of the audio settings
type AudioSection struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"` // 0..1
	SampleRate   int     `yaml:"sample_rate"`

	// Effects holds per-effect volumes 0..1 keyed by name (chime, click)
	Effects map[string]float64 `yaml:"effects"`
}

// Config is the full set of simulator settings
type Config struct {
	Window   WindowConfig    `yaml:"window"`
	TickRate int             `yaml:"tick_rate"`
	Motion   physics.Profile `yaml:"motion"`
	Actors   ActorsConfig    `yaml:"actors"`
	Audio    AudioSection    `yaml:"audio"`
	HUD      bool            `yaml:"hud"`
	Debug    bool            `yaml:"debug"`
}

// Default returns the built-in settings
func Default() *Config {
	ac := audio.DefaultAudioConfig()
	return &Config{
		Window: WindowConfig{
			Title:     parameter.WindowTitle,
			Width:     parameter.WorldWidth,
			Height:    parameter.WorldHeight,
			Resizable: true,
		},
		TickRate: parameter.TickRate,
		Motion:   physics.DefaultProfile(),
		Actors: ActorsConfig{
			FlipOdds:  parameter.FlipOdds,
			FlipValue: parameter.FlipValue,
		},
		Audio: audioSection(ac),
		HUD: true,
	}
}

// Load reads path over the defaults; an empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	// An empty file decodes to io.EOF and leaves the defaults
	if err := yaml.NewDecoder(file).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadEnv loads envFile into the process environment, then applies ELEVATOR_* overrides
// A missing envFile is not an error; variables already set win over the file
func (c *Config) LoadEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	if v := os.Getenv("ELEVATOR_TITLE"); v != "" {
		c.Window.Title = v
	}
	if err := envBool("ELEVATOR_RESIZABLE", &c.Window.Resizable); err != nil {
		return err
	}
	if err := envInt("ELEVATOR_TICK_RATE", &c.TickRate); err != nil {
		return err
	}
	if err := envInt("ELEVATOR_FLIP_ODDS", &c.Actors.FlipOdds); err != nil {
		return err
	}
	if err := envBool("ELEVATOR_RIDER_DRIFT", &c.Actors.RiderDrift); err != nil {
		return err
	}
	if err := envBool("ELEVATOR_HUD", &c.HUD); err != nil {
		return err
	}
	if err := envBool("ELEVATOR_DEBUG", &c.Debug); err != nil {
		return err
	}
	// Audio variables are folded in here so later flags still win
	c.Audio = audioSection(audio.LoadAudioConfig(c.AudioConfig()))

	if v := os.Getenv("ELEVATOR_MAX_SPEED"); v != "" {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return fmt.Errorf("ELEVATOR_MAX_SPEED: %w", err)
		}
		c.Motion.MaxSpeed = float32(f)
	}
	return nil
}

// Validate rejects settings the simulator cannot run with
func (c *Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", c.TickRate)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Actors.FlipOdds < 0 {
		return fmt.Errorf("flip odds must not be negative, got %d", c.Actors.FlipOdds)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("master volume must be in [0,1], got %v", c.Audio.MasterVolume)
	}
	for name, v := range c.Audio.Effects {
		if v < 0 || v > 1 {
			return fmt.Errorf("effect volume %s must be in [0,1], got %v", name, v)
		}
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", c.Audio.SampleRate)
	}
	if err := c.Motion.Validate(); err != nil {
		return fmt.Errorf("motion: %w", err)
	}
	return nil
}

// TickInterval is the duration of one simulation tick
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// ActorConfig converts the actor section for the animator
func (c *Config) ActorConfig() system.ActorConfig {
	return system.ActorConfig{
		FlipOdds:   c.Actors.FlipOdds,
		FlipValue:  c.Actors.FlipValue,
		RiderDrift: c.Actors.RiderDrift,
	}
}

// AudioConfig converts the audio section; unnamed effects keep their default volume
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	ac.SampleRate = c.Audio.SampleRate
	for _, st := range soundTypes {
		if v, ok := c.Audio.Effects[st.String()]; ok {
			ac.EffectVolumes[st] = v
		}
	}
	return ac
}

var soundTypes = []audio.SoundType{audio.SoundChime, audio.SoundClick}

func audioSection(ac *audio.AudioConfig) AudioSection {
	effects := make(map[string]float64, len(soundTypes))
	for _, st := range soundTypes {
		effects[st.String()] = ac.EffectVolumes[st]
	}
	return AudioSection{
		Enabled:      ac.Enabled,
		MasterVolume: ac.MasterVolume,
		SampleRate:   ac.SampleRate,
		Effects:      effects,
	}
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func envBool(key string, dst *bool) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = b
	return nil
}
