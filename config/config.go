// Package config loads the game's configuration from TOML or YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Carmen-Shannon/oxy-breakout/common"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Format is a configuration file syntax.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// FormatFromPath picks the format from the file extension: .yaml and .yml are
// YAML, anything else is TOML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Config is the full game configuration.
type Config struct {
	Window WindowConfig `toml:"window" yaml:"window"`
	Engine EngineConfig `toml:"engine" yaml:"engine"`
	Game   GameConfig   `toml:"game" yaml:"game"`
	Audio  AudioConfig  `toml:"audio" yaml:"audio"`
}

type WindowConfig struct {
	Title     string `toml:"title" yaml:"title"`
	Width     int    `toml:"width" yaml:"width"`
	Height    int    `toml:"height" yaml:"height"`
	Resizable bool   `toml:"resizable" yaml:"resizable"`
}

type EngineConfig struct {
	// TickRate is the frame rate in frames per second.
	TickRate float64 `toml:"tick_rate" yaml:"tick_rate"`
	// MaxDelta caps a single frame's delta time, in seconds.
	MaxDelta float64 `toml:"max_delta" yaml:"max_delta"`
	// Profiling logs frame statistics every ProfileInterval seconds.
	Profiling       bool    `toml:"profiling" yaml:"profiling"`
	ProfileInterval float64 `toml:"profile_interval" yaml:"profile_interval"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

type GameConfig struct {
	// Levels are level files in play order.
	Levels         []string `toml:"levels" yaml:"levels"`
	StartLevel     int      `toml:"start_level" yaml:"start_level"`
	Lives          int      `toml:"lives" yaml:"lives"`
	PlayerVelocity float32  `toml:"player_velocity" yaml:"player_velocity"`
	// StartInMenu opens on the level-select menu instead of straight into play.
	StartInMenu bool `toml:"start_in_menu" yaml:"start_in_menu"`
	// WatchLevels reloads level files when they change on disk.
	WatchLevels bool `toml:"watch_levels" yaml:"watch_levels"`
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled" yaml:"enabled"`
	SampleRate int     `toml:"sample_rate" yaml:"sample_rate"`
	Volume     float64 `toml:"volume" yaml:"volume"`
	Muted      bool    `toml:"muted" yaml:"muted"`
	Workers    int     `toml:"workers" yaml:"workers"`
	// Sounds maps sound keys to WAV files.
	Sounds map[string]string `toml:"sounds" yaml:"sounds"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Breakout",
			Width:  800,
			Height: 600,
		},
		Engine: EngineConfig{
			TickRate:        60,
			MaxDelta:        0.1,
			ProfileInterval: 1,
			LogLevel:        "info",
		},
		Game: GameConfig{
			Levels: []string{
				"levels/one.lvl",
				"levels/two.lvl",
				"levels/three.lvl",
				"levels/four.lvl",
			},
			Lives:          3,
			PlayerVelocity: 500,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Workers:    2,
			Sounds: map[string]string{
				"audio_bleep_brick":  "audio/bleep.wav",
				"audio_bleep_paddle": "audio/bleep_paddle.wav",
				"audio_solid":        "audio/solid.wav",
				"audio_powerup":      "audio/powerup.wav",
			},
		},
	}
}

// Load reads the config file at path over the defaults. The syntax is chosen
// by FormatFromPath.
//
// Parameters:
//   - path: the config file
//
// Returns:
//   - Config: the merged, validated configuration
//   - error: error if the file cannot be read, has unknown keys, or is invalid
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f, FormatFromPath(path))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads a document from r over the defaults. Unknown keys are rejected.
//
// Parameters:
//   - r: the document
//   - format: the document syntax
//
// Returns:
//   - Config: the merged, validated configuration
//   - error: error if the document is malformed or invalid
func Decode(r io.Reader, format Format) (Config, error) {
	cfg := Default()

	var err error
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err = dec.Decode(&cfg); errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&cfg)
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			err = errors.New(strict.String())
		}
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// normalize restores defaults for fields explicitly set to their zero value.
func (c *Config) normalize() {
	def := Default()
	c.Window.Title = common.Coalesce(c.Window.Title, def.Window.Title)
	c.Engine.TickRate = common.Coalesce(c.Engine.TickRate, def.Engine.TickRate)
	c.Engine.ProfileInterval = common.Coalesce(c.Engine.ProfileInterval, def.Engine.ProfileInterval)
	c.Engine.LogLevel = common.Coalesce(c.Engine.LogLevel, def.Engine.LogLevel)
	c.Game.Lives = common.Coalesce(c.Game.Lives, def.Game.Lives)
	c.Game.PlayerVelocity = common.Coalesce(c.Game.PlayerVelocity, def.Game.PlayerVelocity)
	c.Audio.SampleRate = common.Coalesce(c.Audio.SampleRate, def.Audio.SampleRate)
	c.Audio.Workers = common.Coalesce(c.Audio.Workers, def.Audio.Workers)
}

// Validate reports the first setting that cannot be used.
//
// Returns:
//   - error: an error wrapping ErrInvalid, or nil
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Engine.TickRate < 0:
		return fmt.Errorf("%w: tick_rate %v", ErrInvalid, c.Engine.TickRate)
	case c.Engine.MaxDelta < 0:
		return fmt.Errorf("%w: max_delta %v", ErrInvalid, c.Engine.MaxDelta)
	case len(c.Game.Levels) == 0:
		return fmt.Errorf("%w: no levels", ErrInvalid)
	case c.Game.StartLevel < 0 || c.Game.StartLevel >= len(c.Game.Levels):
		return fmt.Errorf("%w: start_level %d out of range", ErrInvalid, c.Game.StartLevel)
	case c.Game.Lives < 0:
		return fmt.Errorf("%w: lives %d", ErrInvalid, c.Game.Lives)
	}
	if _, err := ParseLogLevel(c.Engine.LogLevel); err != nil {
		return err
	}
	return nil
}

// MaxDeltaDuration returns Engine.MaxDelta as a duration.
func (c *Config) MaxDeltaDuration() time.Duration {
	return time.Duration(c.Engine.MaxDelta * float64(time.Second))
}

// ProfileIntervalDuration returns Engine.ProfileInterval as a duration.
func (c *Config) ProfileIntervalDuration() time.Duration {
	return time.Duration(c.Engine.ProfileInterval * float64(time.Second))
}

// ParseLogLevel converts a level name (debug, info, warn, error, case
// insensitive, with optional +N/-N offset) to a slog.Level.
//
// Parameters:
//   - s: the level name
//
// Returns:
//   - slog.Level: the level
//   - error: an error wrapping ErrInvalid for unknown names
func ParseLogLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, s)
	}
	return l, nil
}
