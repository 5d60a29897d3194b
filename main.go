package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-mesh/model"
	"github.com/sheikhrachel/go-gol-mesh/utils"
	"github.com/sheikhrachel/go-gol-mesh/view"
)

const windowTitle = "Game of Life"

func main() {
	config, err := loadConfiguration(os.Args[1:], os.Stdout)
	if err != nil {
		log.Fatalf("config: %+v", err)
	}

	seed, err := loadSeed(config, os.Stdout)
	if err != nil {
		log.Fatalf("pattern: %+v", err)
	}

	engine, err := model.New(config.Dimension, seed, config.EngineOptions())
	if err != nil {
		log.Fatalf("engine: %+v", err)
	}
	displayGameInfo(os.Stdout, config, engine)

	parent, stop := context.WithCancel(context.Background())
	defer stop()
	eg, ctx := errgroup.WithContext(parent)

	// Handle Ctrl+C gracefully
	eg.Go(func() error {
		return watchSignals(ctx, stop)
	})

	stats := utils.NewStats()
	switch config.Renderer {
	case utils.RendererEbiten:
		err = view.RunEbiten(ctx, engine, windowOptions(config))
	case utils.RendererGL:
		err = view.RunGL(ctx, engine, windowOptions(config))
	default:
		renderer := model.NewTerminalRenderer()
		renderer.Viewport = config.Viewport
		err = runTerminal(ctx, config, seed, engine, renderer, stats)
	}
	stop()

	if waitErr := eg.Wait(); err == nil {
		err = waitErr
	}
	displayFinalStats(os.Stdout, engine, stats)
	if err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func watchSignals(ctx context.Context, stop context.CancelFunc) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-sigChan:
		fmt.Println("\n🛑 Shutting down gracefully...")
		stop()
	case <-ctx.Done():
	}
	return nil
}

func windowOptions(config utils.Config) view.WindowOptions {
	return view.WindowOptions{
		Title:                windowTitle,
		Size:                 config.WindowSize,
		GenerationsPerSecond: config.GenerationsPerSecond,
		MaxGenerations:       config.MaxGenerations,
	}
}
