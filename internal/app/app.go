package app

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/vk/mklandgo/internal/codomain"
	"github.com/vk/mklandgo/internal/landscape"
	"github.com/vk/mklandgo/internal/pipeline"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	pipeline *pipeline.Pipeline
	seed     uint64
}

// NewApp is the constructor for the main application. It builds an isolated
// logger, seeds the shared random source (from the configured seed, or the
// clock when none was given), and wires the concrete codomain and clique-tree
// collaborators into the pipeline.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)

	seed := cfg.Seed
	if !cfg.SeedSet {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	return &App{
		outW:     outW,
		logger:   logger,
		pipeline: pipeline.New(codomain.Source{}, landscape.Builder{}, rng),
		seed:     seed,
	}
}

// Pipeline returns the app's pipeline. This is primarily for testing.
func (a *App) Pipeline() *pipeline.Pipeline {
	return a.pipeline
}
