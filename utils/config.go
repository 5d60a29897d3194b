package utils

import (
	"encoding/json"
	"flag"
	"os"
	"slices"
	"strconv"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-mesh/model"
)

// Renderer names accepted by Config.Renderer
const (
	RendererTerminal = "terminal"
	RendererEbiten   = "ebiten"
	RendererGL       = "gl"
)

var renderers = []string{RendererTerminal, RendererEbiten, RendererGL}

// Config holds the configuration for the game
type Config struct {
	Dimension             uint32  `json:"dimension"`
	GenerationsPerSecond  int     `json:"generations_per_second"`
	RandomFillProbability float64 `json:"random_fill_probability"`
	RandomSeed            int64   `json:"random_seed"`
	PatternFile           string  `json:"pattern_file"`
	StrictPattern         bool    `json:"strict_pattern"`
	MaxGenerations        int     `json:"max_generations"`
	AutoRestart           bool    `json:"auto_restart"`
	StagnationThreshold   int     `json:"stagnation_threshold"`
	Renderer              string  `json:"renderer"`
	WindowSize            int     `json:"window_size"`
	Viewport              uint32  `json:"viewport"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Dimension:             500,
		GenerationsPerSecond:  20,
		RandomFillProbability: 0,
		RandomSeed:            42,
		StagnationThreshold:   5,
		Renderer:              RendererTerminal,
		WindowSize:            1000,
		Viewport:              80,
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

// Bind attaches the configuration to the provided FlagSet. Flags override
// whatever was loaded from the config file.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Func("n", "grid dimension (cells per side)", func(v string) error {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return errors.Wrapf(err, "[Bind] invalid dimension: %q", v)
		}
		c.Dimension = uint32(n)
		return nil
	})
	fs.IntVar(&c.GenerationsPerSecond, "gps", c.GenerationsPerSecond, "generations per second")
	fs.Float64Var(&c.RandomFillProbability, "fill", c.RandomFillProbability, "probability each cell starts alive (0 disables)")
	fs.Int64Var(&c.RandomSeed, "seed", c.RandomSeed, "seed for the random fill")
	fs.StringVar(&c.PatternFile, "pattern", c.PatternFile, "plain-text pattern file ('*' marks a living cell)")
	fs.BoolVar(&c.StrictPattern, "strict", c.StrictPattern, "reject patterns larger than the grid instead of cropping")
	fs.IntVar(&c.MaxGenerations, "max", c.MaxGenerations, "stop after this many generations (0 runs forever)")
	fs.BoolVar(&c.AutoRestart, "restart", c.AutoRestart, "reseed when the board dies out or stagnates")
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "terminal, ebiten or gl")
	fs.IntVar(&c.WindowSize, "window", c.WindowSize, "window edge length in pixels")
}

// Validate reports the first setting that cannot drive a simulation
func (c Config) Validate() error {
	if c.Dimension == 0 {
		return errors.Wrap(model.ErrInvalidConfiguration, "[Validate] dimension must be positive")
	}
	if c.GenerationsPerSecond <= 0 {
		return errors.Wrapf(model.ErrInvalidConfiguration, "[Validate] generations per second must be positive, got %d", c.GenerationsPerSecond)
	}
	if c.RandomFillProbability < 0 || c.RandomFillProbability > 1 {
		return errors.Wrapf(model.ErrInvalidConfiguration, "[Validate] random fill probability %v outside [0, 1]", c.RandomFillProbability)
	}
	if !slices.Contains(renderers, c.Renderer) {
		return errors.Wrapf(model.ErrInvalidConfiguration, "[Validate] unknown renderer %q", c.Renderer)
	}
	if c.Renderer != RendererTerminal && c.WindowSize <= 0 {
		return errors.Wrapf(model.ErrInvalidConfiguration, "[Validate] window size must be positive, got %d", c.WindowSize)
	}
	return nil
}

// EngineOptions returns the engine options derived from the config
func (c Config) EngineOptions() model.Options {
	return model.Options{
		RandomFillProbability: c.RandomFillProbability,
		RandomSeed:            c.RandomSeed,
	}
}
