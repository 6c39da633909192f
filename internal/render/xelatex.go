package render

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"glyphgen/internal/resolve"
	"glyphgen/internal/services"
)

// XelatexOption configures the xelatex engine.
type XelatexOption func(*XelatexEngine)

// WithXelatexExecutor injects a custom executor (primarily for tests).
func WithXelatexExecutor(exec Executor) XelatexOption {
	return func(e *XelatexEngine) {
		if exec != nil {
			e.exec = exec
		}
	}
}

// XelatexEngine typesets the render string to a PDF in a scratch directory,
// then rasterizes that PDF to the output PNG with ImageMagick.
type XelatexEngine struct {
	xelatex string
	magick  string
	density int
	workDir string
	exec    Executor
}

// NewXelatex constructs the typesetting engine. workDir receives xelatex's
// intermediate files (texput.pdf and friends) and must already exist.
func NewXelatex(xelatexBinary, magickBinary string, density int, workDir string, opts ...XelatexOption) (*XelatexEngine, error) {
	xelatexBinary = strings.TrimSpace(xelatexBinary)
	if xelatexBinary == "" {
		return nil, errors.New("xelatex binary required")
	}
	magickBinary = strings.TrimSpace(magickBinary)
	if magickBinary == "" {
		return nil, errors.New("magick binary required")
	}
	if strings.TrimSpace(workDir) == "" {
		return nil, errors.New("working directory required")
	}
	engine := &XelatexEngine{
		xelatex: xelatexBinary,
		magick:  magickBinary,
		density: density,
		workDir: workDir,
		exec:    commandExecutor{},
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine, nil
}

// Name identifies the engine in logs and manifest rows.
func (e *XelatexEngine) Name() string { return string(resolve.ModeXelatex) }

// Render typesets the job's render string and rasterizes the resulting PDF.
// The document is fed on stdin, so xelatex writes its output as texput.pdf.
func (e *XelatexEngine) Render(ctx context.Context, job resolve.Job, outputPath string) error {
	typesetArgs := []string{"-output-directory=" + e.workDir}
	if _, err := e.exec.Run(ctx, e.xelatex, typesetArgs, job.RenderString); err != nil {
		return services.Wrap(services.ErrExternalTool, "render", "xelatex", job.OutputPath, err)
	}

	rasterArgs := []string{
		"-antialias",
		"-density", strconv.Itoa(e.density),
		filepath.Join(e.workDir, "texput.pdf"),
		"-trim",
		outputPath,
	}
	if _, err := e.exec.Run(ctx, e.magick, rasterArgs, ""); err != nil {
		return services.Wrap(services.ErrExternalTool, "render", "magick rasterize", job.OutputPath, err)
	}
	return nil
}
