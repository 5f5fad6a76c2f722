package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/vk/readmegen/internal/ctxlog"
	"github.com/vk/readmegen/internal/github"
	"github.com/vk/readmegen/internal/render"
	"github.com/vk/readmegen/internal/schedule"
)

// Run executes the main application logic. In daemon mode the pipeline is
// driven by the configured cron schedule until the context is cancelled;
// otherwise it runs exactly once.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.appCfg.HealthcheckPort > 0 {
		a.startHealthcheckServer(ctx, a.appCfg.HealthcheckPort)
	}

	if a.appCfg.Daemon {
		a.logger.Info("Running in daemon mode.", "cron", a.config.Schedule.Cron)
		return schedule.Run(ctx, a.config.Schedule.Cron, func() {
			if err := a.runOnce(ctx); err != nil {
				a.logger.Error("Scheduled run failed.", "error", err)
			}
		})
	}

	return a.runOnce(ctx)
}

// runOnce executes one full pipeline pass: fetch and render every configured
// section, compose the document, write it, and publish.
func (a *App) runOnce(ctx context.Context) error {
	logger := a.logger.With("run_id", uuid.NewString())
	ctx = ctxlog.WithLogger(ctx, logger)

	logger.Info("🚀 Starting README generation.", "user", a.config.Profile.Username, "sections", len(a.config.Sections))
	client := github.NewClient(a.config.Profile, a.appCfg.WorkerCount)

	blocks := make([]render.Block, 0, len(a.config.Sections)+1)
	for _, section := range a.config.Sections {
		sectionLogger := logger.With("section", section.Name)
		sectionLogger.Debug("Rendering section.")

		// Existence was validated at startup.
		registered, _ := a.registry.Lookup(section.Name)
		opts, err := a.registry.DecodeOptions(section, a.config.EvalCtx)
		if err != nil {
			return err
		}

		block, err := registered.Fn(ctxlog.WithLogger(ctx, sectionLogger), client, opts)
		if err != nil {
			return fmt.Errorf("section %q failed: %w", section.Name, err)
		}
		blocks = append(blocks, block)
	}
	blocks = append(blocks, render.Footer())

	doc := render.Compose(blocks...)
	logger.Debug("Document composed.", "bytes", len(doc))

	if a.appCfg.DryRun {
		fmt.Fprint(a.outW, doc)
		logger.Info("Dry run, skipping write and publish.")
		return nil
	}

	if err := os.WriteFile(a.config.Output.Path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", a.config.Output.Path, err)
	}
	logger.Info("README written.", "path", a.config.Output.Path, "bytes", len(doc))

	if a.config.Output.Push {
		publisher := a.newPublisher(filepath.Dir(a.config.Output.Path))
		publisher.Publish(ctx, a.config.Output)
	}

	logger.Info("🏁 Run finished.")
	return nil
}
