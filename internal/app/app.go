package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/readmegen/internal/config"
	"github.com/vk/readmegen/internal/ctxlog"
	"github.com/vk/readmegen/internal/gitops"
	"github.com/vk/readmegen/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *config.Model
	appCfg   *Config

	// newPublisher is swapped out in tests to avoid touching a real git
	// repository.
	newPublisher func(dir string) *gitops.Publisher
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load all configuration into the format-agnostic model first.
	cfgModel, err := loader.Load(ctx, appConfig.ConfigPath)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded and translated into unified model.")

	if appConfig.OutputPath != "" {
		cfgModel.Output.Path = appConfig.OutputPath
	}

	// Create and populate the registry with section handlers.
	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All section modules registered.", "count", len(modules))

	// Validate that every configured section resolves to a handler.
	if err := reg.ValidateSections(ctx, cfgModel); err != nil {
		// A mismatch between config and compiled-in sections is fatal.
		panic(err)
	}
	logger.Debug("Section validation passed.")

	return &App{
		outW:         outW,
		logger:       logger,
		registry:     reg,
		config:       cfgModel,
		appCfg:       appConfig,
		newPublisher: gitops.NewPublisher,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Model returns the loaded configuration model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.config
}
