// Package render mediates access to the external rendering tools and drives
// resolved jobs through them sequentially.
//
// Two engines exist: pango (ImageMagick's pango coder producing a PNG
// directly) and xelatex (typesetting to texput.pdf, then rasterizing with
// ImageMagick). Both normalize command invocation behind a testable Executor
// interface, so tests can run without the binaries installed.
//
// Prefer this package over ad-hoc exec.Command usage when invoking the
// renderers so argument construction and failure reporting stay consistent.
package render
