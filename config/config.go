// Package config loads blockfall settings from defaults, an optional YAML file
// and BLOCKFALL_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/game"
)

// EnvPrefix prefixes every environment override, e.g. BLOCKFALL_BOARD_WIDTH.
const EnvPrefix = "BLOCKFALL_"

// ErrInvalid is returned by Validate for out of range settings.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Board    BoardConfig    `yaml:"board" envPrefix:"BOARD_"`
	Timing   TimingConfig   `yaml:"timing" envPrefix:"TIMING_"`
	Frontend FrontendConfig `yaml:"frontend" envPrefix:"FRONTEND_"`
	Audio    AudioConfig    `yaml:"audio" envPrefix:"AUDIO_"`

	// Seed fixes the piece sequence. Zero seeds from the clock.
	Seed uint64 `yaml:"seed" env:"SEED"`
}

type BoardConfig struct {
	Width  int `yaml:"width" env:"WIDTH"`
	Height int `yaml:"height" env:"HEIGHT"`
}

// TimingConfig holds the rate limits, written as Go durations ("200ms").
type TimingConfig struct {
	Move     time.Duration `yaml:"move" env:"MOVE"`
	Rotate   time.Duration `yaml:"rotate" env:"ROTATE"`
	Drop     time.Duration `yaml:"drop" env:"DROP"`
	SoftDrop time.Duration `yaml:"soft_drop" env:"SOFT_DROP"`
}

type FrontendConfig struct {
	// CellSize is the edge of one board cell in pixels.
	CellSize int `yaml:"cell_size" env:"CELL_SIZE"`
	// TickRate is the number of simulation ticks per second.
	TickRate int  `yaml:"tick_rate" env:"TICK_RATE"`
	Debug    bool `yaml:"debug" env:"DEBUG"`
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled" env:"ENABLED"`
	// Volume is a base-2 exponent: 0 is unchanged, -1 is half as loud.
	Volume float64 `yaml:"volume" env:"VOLUME"`
}

// Default returns the classic 10×24 setup with the standard timings.
func Default() *Config {
	return &Config{
		Board: BoardConfig{
			Width:  board.DefaultWidth,
			Height: board.DefaultHeight,
		},
		Timing: TimingConfig{
			Move:     game.DefaultMoveInterval,
			Rotate:   game.DefaultRotateInterval,
			Drop:     game.DefaultDropInterval,
			SoftDrop: game.DefaultSoftDropInterval,
		},
		Frontend: FrontendConfig{
			CellSize: 24,
			TickRate: 60,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  -2,
		},
	}
}

// Load applies the YAML file at path (skipped when empty or missing) and the
// environment on top of Default, then validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := readYAML(path, cfg); err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readYAML(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(b, cfg)
}

// Validate reports the first out of range setting.
func (c *Config) Validate() error {
	switch {
	case c.Board.Width <= 0 || c.Board.Height <= 0:
		return fmt.Errorf("%w: board size %dx%d", ErrInvalid, c.Board.Width, c.Board.Height)
	case c.Timing.Move < 0 || c.Timing.Rotate < 0 || c.Timing.Drop < 0 || c.Timing.SoftDrop < 0:
		return fmt.Errorf("%w: negative interval", ErrInvalid)
	case c.Frontend.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d", ErrInvalid, c.Frontend.CellSize)
	case c.Frontend.TickRate <= 0:
		return fmt.Errorf("%w: tick rate %d", ErrInvalid, c.Frontend.TickRate)
	}
	return nil
}

// TickInterval is the wall-clock time between two ticks.
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Frontend.TickRate)
}

// GameOptions converts the settings for game.New.
func (c *Config) GameOptions() []game.Option {
	opts := []game.Option{
		game.WithBoardSize(c.Board.Width, c.Board.Height),
		game.WithIntervals(c.Timing.Move, c.Timing.Rotate, c.Timing.Drop, c.Timing.SoftDrop),
	}
	if c.Seed != 0 {
		opts = append(opts, game.WithSeed(c.Seed))
	}
	return opts
}
