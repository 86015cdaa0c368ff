package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	MinDimension = 10
	MaxDimension = 45

	DisplayConsole = "console"
	DisplayScreen  = "screen"

	PatternRandom  = "random"
	PatternGlider  = "glider"
	PatternBlock   = "block"
	PatternBlinker = "blinker"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the game. Rows and Cols of 0 are asked
// for interactively on every run, and a Seed of 0 draws fresh entropy for
// every run.
type Config struct {
	Rows            int           `json:"rows"`
	Cols            int           `json:"cols"`
	MaxGenerations  int           `json:"max_generations"`
	FrameDelay      time.Duration `json:"frame_delay"`
	LiveProbability float64       `json:"live_probability"`
	Seed            int64         `json:"seed"`
	Display         string        `json:"display"`
	Pattern         string        `json:"pattern"`
	UseMemoryPool   bool          `json:"use_memory_pool"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		MaxGenerations:  5000,
		FrameDelay:      200 * time.Millisecond,
		LiveProbability: 0.125,
		Display:         DisplayConsole,
		Pattern:         PatternRandom,
		UseMemoryPool:   true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows (10-45, 0 to ask)")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns (10-45, 0 to ask)")
	fs.IntVar(&c.MaxGenerations, "generations", c.MaxGenerations, "maximum generations per run")
	fs.DurationVar(&c.FrameDelay, "delay", c.FrameDelay, "pause between frames")
	fs.Float64Var(&c.LiveProbability, "probability", c.LiveProbability, "chance of a cell starting alive")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 for a fresh one every run")
	fs.StringVar(&c.Display, "display", c.Display, "display mode: console or screen")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "starting pattern: random, glider, block or blinker")
	fs.BoolVar(&c.UseMemoryPool, "pool", c.UseMemoryPool, "reuse grid buffers between runs")
}

// Validate checks the configuration before any run starts
func (c Config) Validate() error {
	dims := []struct {
		name  string
		value int
	}{{"rows", c.Rows}, {"cols", c.Cols}}
	for _, d := range dims {
		if d.value != 0 && !InDimensionRange(d.value) {
			return errors.Wrapf(ErrInvalidConfig, "%s must be between %d and %d, got %d",
				d.name, MinDimension, MaxDimension, d.value)
		}
	}
	if c.MaxGenerations < 1 {
		return errors.Wrapf(ErrInvalidConfig, "max generations must be positive, got %d", c.MaxGenerations)
	}
	if c.FrameDelay < 0 {
		return errors.Wrapf(ErrInvalidConfig, "frame delay must not be negative, got %v", c.FrameDelay)
	}
	if c.LiveProbability < 0 || c.LiveProbability > 1 {
		return errors.Wrapf(ErrInvalidConfig, "live probability must be within [0, 1], got %v", c.LiveProbability)
	}
	switch c.Display {
	case DisplayConsole, DisplayScreen:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown display %q", c.Display)
	}
	switch c.Pattern {
	case PatternRandom, PatternGlider, PatternBlock, PatternBlinker:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown pattern %q", c.Pattern)
	}
	return nil
}

// InDimensionRange reports whether v is an allowed row or column count
func InDimensionRange(v int) bool {
	return v >= MinDimension && v <= MaxDimension
}
