package render

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"glyphgen/internal/resolve"
	"glyphgen/internal/services"
)

// PangoOption configures the pango engine.
type PangoOption func(*PangoEngine)

// WithPangoExecutor injects a custom executor (primarily for tests).
func WithPangoExecutor(exec Executor) PangoOption {
	return func(e *PangoEngine) {
		if exec != nil {
			e.exec = exec
		}
	}
}

// PangoEngine renders markup straight to a PNG via ImageMagick's pango coder.
type PangoEngine struct {
	binary  string
	density int
	resize  string
	exec    Executor
}

// NewPango constructs the markup engine.
func NewPango(binary string, density int, resize string, opts ...PangoOption) (*PangoEngine, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("magick binary required")
	}
	engine := &PangoEngine{
		binary:  binary,
		density: density,
		resize:  resize,
		exec:    commandExecutor{},
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine, nil
}

// Name identifies the engine in logs and manifest rows.
func (e *PangoEngine) Name() string { return string(resolve.ModePango) }

// Render produces outputPath from the job's render string. The pango coder
// does not antialias, so the glyph renders oversized on a white background and
// is resized down before the background is made transparent and trimmed.
func (e *PangoEngine) Render(ctx context.Context, job resolve.Job, outputPath string) error {
	args := []string{
		"-background", "white",
		"-density", strconv.Itoa(e.density),
		job.RenderString,
		"-transparent", "white",
		"-antialias",
		"-resize", e.resize,
		"-trim",
	}
	if job.Flip {
		args = append(args, "-flip")
	}
	if job.Flop {
		args = append(args, "-flop")
	}
	args = append(args, outputPath)

	if _, err := e.exec.Run(ctx, e.binary, args, ""); err != nil {
		return services.Wrap(services.ErrExternalTool, "render", "magick pango", job.OutputPath, err)
	}
	return nil
}
