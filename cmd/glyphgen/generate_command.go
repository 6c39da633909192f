package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"glyphgen/internal/config"
	"glyphgen/internal/deps"
	"glyphgen/internal/glyphspec"
	"glyphgen/internal/logging"
	"glyphgen/internal/manifest"
	"glyphgen/internal/render"
	"glyphgen/internal/resolve"
	"glyphgen/internal/runlock"
	"glyphgen/internal/services"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var engineFlag string
	var outputDirFlag string
	var skipUnchanged bool

	cmd := &cobra.Command{
		Use:   "generate <spec.json>",
		Short: "Render every glyph in a specification to PNG files",
		Long: "Generate resolves the specification for the selected engine and drives the\n" +
			"external tools one job at a time. Renditions that cannot be rendered for the\n" +
			"selected engine are skipped with a warning; only configuration problems abort\n" +
			"the run.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			mode, err := resolve.ParseMode(engineFlag)
			if err != nil {
				return err
			}

			doc, err := glyphspec.Load(args[0])
			if err != nil {
				return err
			}
			jobs, skips, err := resolve.Resolve(doc, mode)
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Requirements(cfg, mode))
			if missing := deps.MissingRequired(statuses); len(missing) > 0 {
				names := make([]string, 0, len(missing))
				for _, status := range missing {
					names = append(names, fmt.Sprintf("%s (%s)", status.Name, status.Detail))
				}
				return fmt.Errorf("missing required tools: %s", strings.Join(names, ", "))
			}

			outputRoot := cfg.Paths.OutputDir
			if strings.TrimSpace(outputDirFlag) != "" {
				outputRoot, err = config.ExpandPath(outputDirFlag)
				if err != nil {
					return fmt.Errorf("resolve output directory: %w", err)
				}
			}

			lock, err := runlock.Acquire(cfg.LockPath())
			if err != nil {
				return err
			}
			defer lock.Release()

			logger, closeLogs, err := ctx.newLogger(cfg)
			if err != nil {
				return err
			}
			defer closeLogs()

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			runID := uuid.NewString()
			runCtx = services.WithRunID(runCtx, runID)
			runCtx = services.WithEngine(runCtx, string(mode))
			logger = logging.WithContext(runCtx, logger)

			var store *manifest.Store
			if cfg.Manifest.Enabled {
				store, err = manifest.Open(cfg.ManifestPath())
				if err != nil {
					logger.Warn("render manifest unavailable", logging.Error(err))
					store = nil
				} else {
					defer store.Close()
				}
			}

			engine, cleanup, err := buildEngine(cfg, mode)
			if err != nil {
				return err
			}
			defer cleanup()

			runner, err := render.NewRunner(render.RunnerOptions{
				Engine:        engine,
				OutputRoot:    outputRoot,
				Logger:        logger,
				Store:         store,
				SkipUnchanged: skipUnchanged,
				RunID:         runID,
			})
			if err != nil {
				return err
			}

			logger.Info("run starting",
				logging.String("spec", args[0]),
				logging.Int("jobs", len(jobs)),
				logging.Int("skipped_renditions", len(skips)),
				logging.String("output_root", outputRoot),
				logging.Bool("skip_unchanged", skipUnchanged),
			)
			summary := runner.Run(runCtx, jobs, skips)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Rendered %d of %d jobs\n", summary.Rendered, len(jobs))
			if summary.SkippedUnchanged > 0 {
				fmt.Fprintf(out, "Skipped %d unchanged outputs\n", summary.SkippedUnchanged)
			}
			if summary.SkippedRendition > 0 {
				fmt.Fprintf(out, "Warning: %d renditions were not renderable with the %s engine\n", summary.SkippedRendition, mode)
			}
			if summary.Failed > 0 {
				fmt.Fprintf(out, "Warning: %d jobs failed; see the log for details\n", summary.Failed)
			}
			return runCtx.Err()
		},
	}

	cmd.Flags().StringVarP(&engineFlag, "engine", "e", "", "Rendering engine (pango or xelatex)")
	_ = cmd.MarkFlagRequired("engine")
	cmd.Flags().StringVarP(&outputDirFlag, "output-dir", "o", "", "Override the configured output directory")
	cmd.Flags().BoolVar(&skipUnchanged, "skip-unchanged", false, "Skip jobs whose output exists and whose inputs match the last recorded render")
	return cmd
}

// buildEngine constructs the engine for the mode. The xelatex engine gets a
// scratch directory for intermediate files; the cleanup removes it.
func buildEngine(cfg *config.Config, mode resolve.Mode) (render.Engine, func(), error) {
	switch mode {
	case resolve.ModePango:
		engine, err := render.NewPango(cfg.Tools.Magick, cfg.Render.PangoDensity, cfg.Render.PangoResize)
		if err != nil {
			return nil, nil, err
		}
		return engine, func() {}, nil
	case resolve.ModeXelatex:
		workDir, err := os.MkdirTemp("", "glyphgen-xelatex-")
		if err != nil {
			return nil, nil, fmt.Errorf("create xelatex working directory: %w", err)
		}
		engine, err := render.NewXelatex(cfg.Tools.Xelatex, cfg.Tools.Magick, cfg.Render.XelatexDensity, workDir)
		if err != nil {
			_ = os.RemoveAll(workDir)
			return nil, nil, err
		}
		return engine, func() { _ = os.RemoveAll(workDir) }, nil
	default:
		return nil, nil, fmt.Errorf("no engine for mode %q", mode)
	}
}
