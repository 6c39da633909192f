// Package manifest persists render history in a SQLite database.
//
// Each produced (or failed) output file is recorded with its run id, engine,
// provenance, and a checksum of the resolved render invocation. The history
// backs the `glyphgen history` command and lets repeat runs skip outputs
// whose inputs have not changed.
//
// The manifest is an optimization, never a correctness dependency: callers
// degrade to rendering everything when it is unavailable.
package manifest
