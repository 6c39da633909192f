package render

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"glyphgen/internal/logging"
	"glyphgen/internal/manifest"
	"glyphgen/internal/resolve"
)

// Engine is one external rendering backend.
type Engine interface {
	Name() string
	Render(ctx context.Context, job resolve.Job, outputPath string) error
}

// Summary counts the outcome of a generation run.
type Summary struct {
	Rendered         int
	Failed           int
	SkippedUnchanged int
	SkippedRendition int
}

// RunnerOptions configures a sequential render run.
type RunnerOptions struct {
	Engine     Engine
	OutputRoot string
	Logger     *slog.Logger
	// Store is optional; when nil no history is recorded and skip-unchanged
	// is unavailable.
	Store         *manifest.Store
	SkipUnchanged bool
	RunID         string
}

// Runner dispatches resolved jobs to an engine one at a time. Job N completes
// (or fails) before job N+1 begins; per-job failures never abort the run.
type Runner struct {
	opts   RunnerOptions
	logger *slog.Logger
}

// NewRunner validates options and builds a runner.
func NewRunner(opts RunnerOptions) (*Runner, error) {
	if opts.Engine == nil {
		return nil, errors.New("render engine required")
	}
	if opts.OutputRoot == "" {
		return nil, errors.New("output root required")
	}
	logger := logging.NewComponentLogger(opts.Logger, "render")
	return &Runner{opts: opts, logger: logger}, nil
}

// Run reports resolver skips, then renders every job in order. The returned
// summary reflects exactly what happened; errors inside individual jobs are
// logged and counted, not returned.
func (r *Runner) Run(ctx context.Context, jobs []resolve.Job, skips []resolve.Skip) Summary {
	start := time.Now()
	summary := Summary{SkippedRendition: len(skips)}

	for _, skip := range skips {
		r.logger.Warn("rendition skipped",
			logging.String(logging.FieldSubset, skip.Subset),
			logging.String(logging.FieldEntry, skip.Entry),
			logging.Int(logging.FieldRendition, skip.Rendition),
			logging.String("reason", skip.Reason),
		)
	}

	for _, job := range jobs {
		if ctx.Err() != nil {
			r.logger.Warn("run canceled", logging.Error(ctx.Err()))
			break
		}
		outcome := r.renderOne(ctx, job)
		switch outcome {
		case manifest.StatusRendered:
			summary.Rendered++
		case manifest.StatusFailed:
			summary.Failed++
		default:
			summary.SkippedUnchanged++
		}
	}

	r.logger.Info("run finished",
		logging.Int("rendered", summary.Rendered),
		logging.Int("failed", summary.Failed),
		logging.Int("skipped_unchanged", summary.SkippedUnchanged),
		logging.Duration("elapsed", time.Since(start)),
	)
	return summary
}

const statusUnchanged = "unchanged"

func (r *Runner) renderOne(ctx context.Context, job resolve.Job) string {
	jobLogger := r.logger.With(
		logging.String(logging.FieldSubset, job.Subset),
		logging.String(logging.FieldEntry, job.Entry),
		logging.Int(logging.FieldRendition, job.Rendition),
		logging.String(logging.FieldOutput, job.OutputPath),
	)

	outputPath := filepath.Join(r.opts.OutputRoot, job.OutputPath)
	checksum := manifest.Checksum(r.opts.Engine.Name(), job.RenderString, job.Flip, job.Flop)

	if r.opts.SkipUnchanged && r.unchanged(ctx, job, outputPath, checksum) {
		jobLogger.Debug("output unchanged, skipping")
		return statusUnchanged
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		jobLogger.Error("create output directory failed", logging.Error(err))
		return manifest.StatusFailed
	}

	status := manifest.StatusRendered
	if err := r.opts.Engine.Render(ctx, job, outputPath); err != nil {
		jobLogger.Error("render failed", logging.Error(err))
		status = manifest.StatusFailed
	} else {
		jobLogger.Info("rendered")
	}

	r.record(ctx, job, checksum, status)
	return status
}

func (r *Runner) unchanged(ctx context.Context, job resolve.Job, outputPath, checksum string) bool {
	if r.opts.Store == nil {
		return false
	}
	if _, err := os.Stat(outputPath); err != nil {
		return false
	}
	last, found, err := r.opts.Store.LastChecksum(ctx, job.OutputPath)
	if err != nil {
		r.logger.Warn("manifest lookup failed", logging.Error(err))
		return false
	}
	return found && last == checksum
}

func (r *Runner) record(ctx context.Context, job resolve.Job, checksum, status string) {
	if r.opts.Store == nil {
		return
	}
	err := r.opts.Store.Record(ctx, manifest.Record{
		RunID:      r.opts.RunID,
		Engine:     r.opts.Engine.Name(),
		OutputPath: job.OutputPath,
		Subset:     job.Subset,
		Entry:      job.Entry,
		Rendition:  job.Rendition,
		Checksum:   checksum,
		Status:     status,
	})
	if err != nil {
		r.logger.Warn("manifest record failed", logging.Error(err))
	}
}
