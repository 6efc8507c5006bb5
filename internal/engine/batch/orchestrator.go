// Package batch runs one operation over a set of source files, skipping files
// whose content has not changed since the last successful run.
package batch

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/yango/internal/core/domain"
	"go.trai.ch/yango/internal/core/ports"
	"go.trai.ch/yango/internal/engine/operation"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options adjust a single run.
type Options struct {
	// NoCache processes every file regardless of the recorded digests.
	// Digests are still recorded.
	NoCache bool
}

// Orchestrator drives the per-file state machine over a batch.
type Orchestrator struct {
	store   ports.HashCacheStore
	hasher  ports.Hasher
	sources ports.SourceStore
	runner  ports.Runner
	logger  ports.Logger
	tracer  ports.Tracer
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(
	store ports.HashCacheStore,
	hasher ports.Hasher,
	sources ports.SourceStore,
	runner ports.Runner,
	logger ports.Logger,
	tracer ports.Tracer,
) *Orchestrator {
	return &Orchestrator{
		store:   store,
		hasher:  hasher,
		sources: sources,
		runner:  runner,
		logger:  logger,
		tracer:  tracer,
	}
}

// Run applies op to every file in paths, in order, and returns the counters.
//
// The cache is loaded before the first file and persisted after the last,
// including when the batch is aborted. A non-nil error wraps
// domain.ErrBatchAborted and means the batch stopped early because of a
// fatal tool failure or cancellation; the returned summary still counts the
// files that reached a terminal state.
func (o *Orchestrator) Run(
	ctx context.Context,
	cfg *domain.Config,
	op domain.Operation,
	paths []string,
	opts Options,
) (domain.Summary, error) {
	start := time.Now()

	if !op.IsBatch() {
		return domain.Summary{Operation: op}, zerr.With(domain.ErrUnsupportedOperation, "operation", op.String())
	}

	ctx, span := o.tracer.Start(ctx, "batch "+op.String())
	defer span.End()
	span.SetAttribute("operation", op.String())
	span.SetAttribute("files", len(paths))

	storePath := domain.CacheStorePath(cfg.TargetDir, op)
	cache, err := o.store.Load(storePath)
	if err != nil {
		o.logger.Warn(err.Error())
	}

	run := NewContext(op, cache, storePath)
	o.tracer.EmitPlan(ctx, op.String(), paths)

	exec := operation.NewExecutor(o.runner, o.sources, o.logger, cfg)
	fatal := o.dispatch(ctx, cfg, run, exec, paths, opts)

	if err := o.store.Persist(run.Cache, run.StorePath); err != nil {
		o.logger.Warn(err.Error())
	}

	summary := run.Summary()
	summary.Elapsed = time.Since(start)

	if fatal != nil {
		span.RecordError(fatal)
		return summary, errors.Join(fatal, domain.ErrBatchAborted)
	}
	return summary, nil
}

func (o *Orchestrator) dispatch(
	ctx context.Context,
	cfg *domain.Config,
	run *Context,
	exec *operation.Executor,
	paths []string,
	opts Options,
) error {
	if cfg.Jobs < 2 {
		for _, path := range paths {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := o.processFile(ctx, cfg, run, exec, path, opts); err != nil {
				return err
			}
		}
		return ctx.Err()
	}

	// Files already running are allowed to finish after a fatal error; only
	// the group context is cancelled, which stops new files from starting.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Jobs)
	for _, path := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			return o.processFile(ctx, cfg, run, exec, path, opts)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func (o *Orchestrator) processFile(
	ctx context.Context,
	cfg *domain.Config,
	run *Context,
	exec *operation.Executor,
	path string,
	opts Options,
) error {
	file, err := domain.NewSourceFile(cfg.BaseDir, path)
	if err != nil {
		o.logger.Warn(err.Error())
		if !run.claim(path) {
			return nil
		}
		return run.advance(path, domain.FileFailed)
	}
	if !run.claim(file.RelPath) {
		o.logger.Debug("Ignoring duplicate file " + file.Path)
		return nil
	}

	ctx, span := o.tracer.Start(ctx, file.RelPath)
	defer span.End()

	o.logger.Debug("Processing file " + file.Path)

	digest, err := o.digest(file, cfg.Encoding)
	if err != nil {
		o.logger.Warn(err.Error())
		span.SetAttribute("state", string(domain.FileFailed))
		return run.advance(file.RelPath, domain.FileFailed)
	}
	if err := run.advance(file.RelPath, domain.FileHashComputed); err != nil {
		return err
	}

	if !opts.NoCache {
		if prev, ok := run.Cache.Lookup(file.RelPath); ok && prev == digest {
			span.SetAttribute("state", string(domain.FileSkipped))
			return run.advance(file.RelPath, domain.FileSkipped)
		}
	}

	if err := run.advance(file.RelPath, domain.FileDispatched); err != nil {
		return err
	}

	res, fatal := exec.Execute(ctx, run.Operation, file)

	if err := run.advance(file.RelPath, res.State); err != nil {
		return errors.Join(fatal, err)
	}
	span.SetAttribute("state", string(res.State))

	switch {
	case res.State == domain.FileSucceeded && run.Operation == domain.OperationFormat:
		// The formatted file is what the next run will see.
		formatted, err := o.digest(file, cfg.Encoding)
		if err != nil {
			o.logger.Warn(err.Error())
			break
		}
		run.Cache.Update(file.RelPath, formatted)
	case res.State == domain.FileSucceeded:
		run.Cache.Update(file.RelPath, digest)
	case fatal == nil && res.ToolFailed && cfg.CacheFailedAttempts:
		run.Cache.Update(file.RelPath, digest)
	}

	if fatal != nil {
		span.RecordError(fatal)
		return fatal
	}
	return nil
}

func (o *Orchestrator) digest(file domain.SourceFile, encoding string) (domain.Digest, error) {
	content, err := o.sources.ReadFile(file.Path)
	if err != nil {
		return "", err
	}
	digest, err := o.hasher.Digest(content, encoding)
	if err != nil {
		return "", zerr.With(err, "file", file.Path)
	}
	return digest, nil
}
