package logger

import (
	"context"
	"time"
)

// contextKey is a private type for context keys to avoid collisions
type contextKey struct{}

// logContextKey is the key for LogContext in context.Context
var logContextKey = contextKey{}

// LogContext holds request-scoped logging context, carried alongside a
// command or event as it moves through the actor mesh.
type LogContext struct {
	TraceID   string    // correlation id for the command round-trip
	SpanID    string    // sub-operation id within the trace
	Session   string    // SessionId, rendered as decimal string
	Command   string    // Command or Event variant name
	ClientIP  string    // originating client address, if known
	StartTime time.Time // for duration calculation
}

// WithContext returns a new context with the given LogContext
func WithContext(ctx context.Context, lc *LogContext) context.Context {
	return context.WithValue(ctx, logContextKey, lc)
}

// FromContext retrieves the LogContext from context, or nil if not present
func FromContext(ctx context.Context) *LogContext {
	if ctx == nil {
		return nil
	}
	lc, _ := ctx.Value(logContextKey).(*LogContext)
	return lc
}

// NewLogContext creates a new LogContext for a session, starting its clock.
func NewLogContext(session string) *LogContext {
	return &LogContext{
		Session:   session,
		StartTime: time.Now(),
	}
}

// Clone creates a copy of the LogContext
func (lc *LogContext) Clone() *LogContext {
	if lc == nil {
		return nil
	}
	return &LogContext{
		TraceID:   lc.TraceID,
		SpanID:    lc.SpanID,
		Session:   lc.Session,
		Command:   lc.Command,
		ClientIP:  lc.ClientIP,
		StartTime: lc.StartTime,
	}
}

// WithCommand returns a copy with the command/event name set
func (lc *LogContext) WithCommand(command string) *LogContext {
	clone := lc.Clone()
	if clone != nil {
		clone.Command = command
	}
	return clone
}

// WithClientIP returns a copy with the client address set
func (lc *LogContext) WithClientIP(addr string) *LogContext {
	clone := lc.Clone()
	if clone != nil {
		clone.ClientIP = addr
	}
	return clone
}

// WithTrace returns a copy with trace info set
func (lc *LogContext) WithTrace(traceID, spanID string) *LogContext {
	clone := lc.Clone()
	if clone != nil {
		clone.TraceID = traceID
		clone.SpanID = spanID
	}
	return clone
}

// DurationMs returns the duration since StartTime in milliseconds
func (lc *LogContext) DurationMs() float64 {
	if lc == nil || lc.StartTime.IsZero() {
		return 0
	}
	return float64(time.Since(lc.StartTime).Microseconds()) / 1000.0
}
