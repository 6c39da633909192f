// Package resolve turns a parsed glyph specification into a flat list of
// rendering jobs for the selected engine.
//
// Resolution is pure and deterministic: no I/O, and identical documents
// always produce identical, identically-ordered job lists (subset order, then
// entry order, then rendition order). Renditions that cannot produce content
// for the selected engine are reported as skips, never as run failures.
package resolve
