// Package logging provides a custom slog handler that persists warnings
// and errors to the audit_log table for later inspection.
package logging

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
)

// AuditHandler is a slog.Handler that wraps another handler and also writes
// WARN and ERROR level records to the audit_log database table.
type AuditHandler struct {
	inner slog.Handler
	db    *sql.DB
	level slog.Level // Minimum level to persist (default: WARN)
}

// NewAuditHandler creates a new AuditHandler that wraps the given handler.
// Records at WARN level and above are written to both the wrapped handler
// and the audit log.
func NewAuditHandler(inner slog.Handler, db *sql.DB) *AuditHandler {
	return &AuditHandler{
		inner: inner,
		db:    db,
		level: slog.LevelWarn,
	}
}

// NewAuditHandlerWithLevel creates a new AuditHandler with a custom minimum level.
func NewAuditHandlerWithLevel(inner slog.Handler, db *sql.DB, level slog.Level) *AuditHandler {
	return &AuditHandler{
		inner: inner,
		db:    db,
		level: level,
	}
}

// Enabled implements slog.Handler.
func (h *AuditHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *AuditHandler) Handle(ctx context.Context, r slog.Record) error {
	// Always forward to the inner handler first
	if err := h.inner.Handle(ctx, r); err != nil {
		return err
	}

	if r.Level >= h.level {
		h.writeAuditRecord(r)
	}

	return nil
}

// WithAttrs implements slog.Handler.
func (h *AuditHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &AuditHandler{
		inner: h.inner.WithAttrs(attrs),
		db:    h.db,
		level: h.level,
	}
}

// WithGroup implements slog.Handler.
func (h *AuditHandler) WithGroup(name string) slog.Handler {
	return &AuditHandler{
		inner: h.inner.WithGroup(name),
		db:    h.db,
		level: h.level,
	}
}

// writeAuditRecord persists a log record to the audit_log table.
// A background context is used so the record is stored even when the
// request context has been cancelled. Persistence failures are swallowed:
// the audit log must never take down the logger.
func (h *AuditHandler) writeAuditRecord(r slog.Record) {
	_, _ = h.db.ExecContext(context.Background(),
		`INSERT INTO audit_log (level, message, attrs, created_at) VALUES (?, ?, ?, ?)`,
		r.Level.String(), r.Message, h.extractAttrs(r), r.Time,
	)
}

// extractAttrs collects all log attributes into a JSON string.
func (h *AuditHandler) extractAttrs(r slog.Record) string {
	if r.NumAttrs() == 0 {
		return "{}"
	}

	// Build a simple JSON object from attributes
	var sb strings.Builder
	sb.WriteString("{")
	first := true

	r.Attrs(func(a slog.Attr) bool {
		if !first {
			sb.WriteString(",")
		}
		first = false
		sb.WriteString(`"`)
		sb.WriteString(escapeJSON(a.Key))
		sb.WriteString(`":"`)
		sb.WriteString(escapeJSON(a.Value.String()))
		sb.WriteString(`"`)
		return true
	})

	sb.WriteString("}")
	return sb.String()
}

// escapeJSON escapes special characters in a string for JSON.
func escapeJSON(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
