package log

import (
	"context"
	"io"
	"log/slog"
)

// MaxValueLen is the maximum length of a string attribute value before
// truncation. Long enough to keep a useful HTML or JSON snippet, short
// enough that one log line stays one terminal screen.
const MaxValueLen = 256

// truncationMarker is appended to truncated values so readers know the
// value continued.
const truncationMarker = "...(truncated)"

// CompactHandler wraps an slog.Handler to truncate oversized attribute
// values. It intercepts log records and shortens string values that exceed
// MaxValueLen before passing them to the underlying handler.
//
// Design decision: We use a handler wrapper rather than truncating at each
// call site because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Call sites stay free of formatting concerns
type CompactHandler struct {
	// handler is the underlying slog handler that receives shortened records.
	handler slog.Handler
}

// NewCompactHandler creates a new CompactHandler wrapping the given handler.
// If handler is nil, the returned CompactHandler uses slog.Default().Handler().
func NewCompactHandler(handler slog.Handler) *CompactHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &CompactHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *CompactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle truncates the record's attributes and passes it to the underlying
// handler.
func (h *CompactHandler) Handle(ctx context.Context, r slog.Record) error {
	shortened := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		shortened.AddAttrs(h.truncateAttr(a))
		return true
	})

	return h.handler.Handle(ctx, shortened)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are truncated before being added.
func (h *CompactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	shortened := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		shortened[i] = h.truncateAttr(a)
	}
	return &CompactHandler{handler: h.handler.WithAttrs(shortened)}
}

// WithGroup returns a new handler with the given group name.
func (h *CompactHandler) WithGroup(name string) slog.Handler {
	return &CompactHandler{handler: h.handler.WithGroup(name)}
}

// truncateAttr shortens a single attribute, recursively handling groups.
func (h *CompactHandler) truncateAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		shortened := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			shortened[i] = h.truncateAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(shortened...)}
	}

	if a.Value.Kind() == slog.KindString {
		if s := a.Value.String(); len(s) > MaxValueLen {
			return slog.String(a.Key, s[:MaxValueLen]+truncationMarker)
		}
	}

	return a
}

// New creates a new slog.Logger with compact handling.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
//
// Returns a *slog.Logger that can be used with slog.SetDefault() or passed
// to components that accept *slog.Logger.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	return slog.New(NewCompactHandler(slog.NewTextHandler(w, opts)))
}
