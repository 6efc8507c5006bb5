// Package app implements the application layer for yango.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/yango/internal/core/domain"
	"go.trai.ch/yango/internal/core/ports"
	"go.trai.ch/yango/internal/engine/batch"
	"go.trai.ch/yango/internal/engine/probe"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	discoverer   ports.Discoverer
	orchestrator *batch.Orchestrator
	store        ports.HashCacheStore
	runner       ports.Runner
	reporter     ports.Reporter
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	discoverer ports.Discoverer,
	orchestrator *batch.Orchestrator,
	store ports.HashCacheStore,
	runner ports.Runner,
	reporter ports.Reporter,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		discoverer:   discoverer,
		orchestrator: orchestrator,
		store:        store,
		runner:       runner,
		reporter:     reporter,
		logger:       log,
	}
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// ConfigPath is the configuration file to load. Empty means yango.yaml in
	// the working directory.
	ConfigPath string
	Overrides  domain.ConfigOverrides
	NoCache    bool
}

// Run applies op to every discovered source file and reports the outcome.
//
// A missing tool or a missing source directory is logged and ends the run
// without an error. A fatal per-file failure is returned and no summary is
// printed.
func (a *App) Run(ctx context.Context, op domain.Operation, opts RunOptions) error {
	if !op.IsBatch() {
		return zerr.With(domain.ErrUnsupportedOperation, "operation", op.String())
	}

	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	a.logger.Info("GOAL is " + op.String())
	for _, exclude := range cfg.Excludes {
		a.logger.Info("Excluding file " + exclude)
	}

	if _, err := probe.NewProber(a.runner, a.logger, cfg).Probe(ctx); err != nil {
		a.logger.Error(zerr.Wrap(err, fmt.Sprintf("%s is not installed, skipping %s", cfg.Tool, op)))
		return nil
	}

	if len(cfg.Directories) == 0 {
		a.logger.Info("Using source directory " + cfg.SourceDir)
	}
	files, err := a.discoverer.Discover(cfg.Roots(), cfg.Includes, cfg.Excludes)
	if err != nil {
		if errors.Is(err, domain.ErrNoSourceDirectory) {
			a.logger.Error(err)
			files = nil
		} else {
			return err
		}
	}

	a.logger.Info(fmt.Sprintf("Number of files for %s %d", op, len(files)))
	if len(files) == 0 {
		return nil
	}

	summary, err := a.orchestrator.Run(ctx, cfg, op, files, batch.Options{NoCache: opts.NoCache})
	if err != nil {
		return err
	}

	a.reporter.Report(summary, len(files))
	return nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	ConfigPath string
	// Operations whose hash cache store is removed. Empty means all.
	Operations []domain.Operation
}

// Clean removes hash cache stores so the next run processes every file.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	cfg, err := a.loadConfig(RunOptions{ConfigPath: opts.ConfigPath})
	if err != nil {
		return err
	}

	ops := opts.Operations
	if len(ops) == 0 {
		ops = domain.BatchOperations
	}

	var errs error
	for _, op := range ops {
		path := domain.CacheStorePath(cfg.TargetDir, op)
		removed, err := a.store.Remove(path)
		if err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to remove "+op.String()+" cache"), "operation", op.String()))
			continue
		}
		if removed {
			a.logger.Info(fmt.Sprintf("removed %s cache %s", op, path))
		} else {
			a.logger.Debug(fmt.Sprintf("no %s cache at %s", op, path))
		}
	}
	return errs
}

// Doctor runs the tool's version probe and returns what it found.
func (a *App) Doctor(ctx context.Context, configPath string) (probe.Result, error) {
	cfg, err := a.loadConfig(RunOptions{ConfigPath: configPath})
	if err != nil {
		return probe.Result{}, err
	}
	return probe.NewProber(a.runner, a.logger, cfg).Probe(ctx)
}

func (a *App) loadConfig(opts RunOptions) (*domain.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = domain.ConfigFileName
	}
	cfg, err := a.configLoader.Load(path, opts.Overrides)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}
