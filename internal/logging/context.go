package logging

import (
	"context"
	"log/slog"

	"glyphgen/internal/services"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for generation run identifiers.
	FieldRunID = "run_id"
	// FieldEngine is the standardized structured logging key for the selected rendering engine.
	FieldEngine = "engine"
	// FieldSubset is the standardized structured logging key for subset names.
	FieldSubset = "subset"
	// FieldEntry is the standardized structured logging key for character entry names.
	FieldEntry = "entry"
	// FieldRendition is the standardized structured logging key for zero-based rendition indexes.
	FieldRendition = "rendition"
	// FieldOutput is the standardized structured logging key for output file paths.
	FieldOutput = "output"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if id, ok := services.RunIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRunID, id))
	}
	if engine, ok := services.EngineFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldEngine, engine))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from
// the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
