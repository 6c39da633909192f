// Package glyphspec models the JSON glyph specification documents glyphgen
// consumes.
//
// A document carries global settings (output name, default font, and the
// per-engine render templates) plus named subsets of character entries, each
// with one or more renditions. Subset order is significant for output
// ordering, so decoding preserves the order subsets appear in the source
// document rather than relying on Go map iteration.
//
// Schema violations (missing settings, unnamed entries, entries without
// renditions) are rejected at load time so resolution never has to guess.
package glyphspec
