// Package textutil provides filename escaping for glyph specification names.
//
// Subset and entry names arrive from free-form JSON and routinely contain
// punctuation or whitespace that is unsafe in file paths. EscapeName keeps
// letters and digits in any script so non-Latin entry names stay
// distinguishable, and maps everything else onto underscores.
package textutil
