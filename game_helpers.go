package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-mesh/model"
	"github.com/sheikhrachel/go-gol-mesh/pattern"
	"github.com/sheikhrachel/go-gol-mesh/utils"
)

const defaultConfigPath = "config.json"

func newFlagSet(config *utils.Config, configPath *string) *flag.FlagSet {
	fs := flag.NewFlagSet("go-gol-mesh", flag.ContinueOnError)
	fs.StringVar(configPath, "config", *configPath, "JSON configuration file")
	config.Bind(fs)
	return fs
}

// loadConfiguration reads the JSON config named by -config, then applies the
// remaining flags on top of it
func loadConfiguration(args []string, out io.Writer) (utils.Config, error) {
	configPath := defaultConfigPath
	probe := utils.DefaultConfig()
	if err := newFlagSet(&probe, &configPath).Parse(args); err != nil {
		return probe, errors.Wrap(err, "[loadConfiguration] failed to parse flags")
	}

	config, err := utils.LoadConfig(configPath)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) || configPath != defaultConfigPath {
			return config, err
		}
		fmt.Fprintln(out, "Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	fs := newFlagSet(&config, &configPath)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return config, errors.Wrap(err, "[loadConfiguration] failed to parse flags")
	}
	return config, config.Validate()
}

// loadSeed reads the configured pattern file and fits it to the grid
func loadSeed(config utils.Config, out io.Writer) ([]model.Cell, error) {
	if config.PatternFile == "" {
		return nil, nil
	}

	cells, err := pattern.Load(config.PatternFile)
	if err != nil {
		return nil, err
	}
	rows, cols := pattern.Bounds(cells)
	fmt.Fprintf(out, "Pattern %s: %d living cells in %dx%d\n", config.PatternFile, len(cells), rows, cols)

	cells, dropped, err := pattern.Fit(cells, config.Dimension, config.StrictPattern)
	if err != nil {
		return nil, err
	}
	if dropped > 0 {
		fmt.Fprintf(out, "Dropped %d cells outside the %dx%d grid\n", dropped, config.Dimension, config.Dimension)
	}
	return cells, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, engine *model.Engine) {
	fmt.Fprintf(out, "Renderer: %s | Rate: %d gen/sec | Random fill: %.2f\n",
		config.Renderer, config.GenerationsPerSecond, config.RandomFillProbability)
	fmt.Fprintf(out, "Grid: %dx%d | Initial living cells: %d\n",
		engine.Size(), engine.Size(), engine.Population())
	fmt.Fprintln(out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(out)
}

// displayGameStatus shows the current game status
func displayGameStatus(out io.Writer, engine *model.Engine, status string, stats *utils.Stats, restarts int) {
	size := float64(engine.Size())
	density := float64(engine.Population()) / (size * size) * 100

	fmt.Fprintf(out, "Gen: %d | Living: %d | Density: %.1f%% | Vertices: %d | Status: %s\n",
		engine.Generation(), engine.Population(), density, stats.Vertices/model.FloatsPerVertex, status)
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs | Restarts: %d\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds(), restarts)
}

// displayFinalStats prints the summary shown on shutdown
func displayFinalStats(out io.Writer, engine *model.Engine, stats *utils.Stats) {
	fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds, %d living cells\n",
		engine.Generation(), stats.Runtime().Seconds(), engine.Population())
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(population, stagnantCount int, config utils.Config) (bool, string) {
	if population == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame reseeds the engine, varying the random fill on every restart
func restartGame(engine *model.Engine, config utils.Config, seed []model.Cell, restarts int) error {
	opts := config.EngineOptions()
	opts.RandomSeed += int64(restarts)
	return engine.Reset(seed, opts)
}

// runTerminal drives the engine and draws each generation to the terminal
// until ctx is cancelled or the generation limit is reached
func runTerminal(
	ctx context.Context,
	config utils.Config,
	seed []model.Cell,
	engine *model.Engine,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
) error {
	var (
		gate          = utils.NewFrameGate(config.GenerationsPerSecond)
		history       = model.NewHistory(0)
		status        = "Active"
		stagnantCount = 0
		restarts      = 0
		generations   = 0
		lastFrameTime = time.Now()
		out           = renderer.Writer()
	)

	for {
		now := time.Now()
		if !gate.Ready(now) {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(gate.Remaining(now)):
			}
			continue
		}
		if ctx.Err() != nil {
			return nil
		}

		vertices := engine.EmitMesh()
		if err := renderer.Clear(); err != nil {
			return err
		}
		if err := renderer.Display(vertices, engine.Size()); err != nil {
			return err
		}
		stats.Update(generations, engine.Population(), len(vertices), now.Sub(lastFrameTime))
		lastFrameTime = now
		displayGameStatus(out, engine, status, stats, restarts)

		if config.MaxGenerations > 0 && generations >= config.MaxGenerations {
			fmt.Fprintf(out, "\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			return nil
		}

		engine.Advance()
		generations++

		if history.Observe(engine) {
			stagnantCount++
			status = fmt.Sprintf("Stagnant (%d)", stagnantCount)
		} else {
			stagnantCount = 0
			status = "Active"
		}
		if engine.Population() == 0 {
			status = "Extinct"
		}

		if !config.AutoRestart {
			continue
		}
		if shouldRestart, reason := checkRestartConditions(engine.Population(), stagnantCount, config); shouldRestart {
			restarts++
			fmt.Fprintf(out, "🔄 Restarting due to %s...\n", reason)
			if err := restartGame(engine, config, seed, restarts); err != nil {
				return err
			}
			history.Clear()
			stagnantCount = 0
			status = "Active"
		}
	}
}
