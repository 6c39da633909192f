// Package services defines shared utilities consumed by the rendering
// pipeline and the CLI commands.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers and engine names for logging.
//   - Structured error markers plus the Wrap helper that classify failures
//     into fatal configuration errors, per-rendition skips, and external tool
//     failures.
//
// Use these helpers when wiring new pipeline logic so error handling and
// observability stay uniform across commands.
package services
