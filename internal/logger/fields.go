package logger

import (
	"log/slog"
)

// Standard field keys for structured logging.
// Use these keys consistently across all log statements so that log
// aggregation and querying line up across the actor mesh (navigator,
// scanner, engine, http debug surface).
const (
	// ========================================================================
	// Distributed Tracing
	// ========================================================================
	KeyTraceID = "trace_id" // correlation id for one command round-trip
	KeySpanID  = "span_id"  // sub-operation id within a trace

	// ========================================================================
	// Session & Command
	// ========================================================================
	KeySessionID = "session_id" // SessionId tagging the command/event
	KeyCommand   = "command"    // Command variant name
	KeyEvent     = "event"      // Event variant name
	KeyActor     = "actor"      // actor name: navigator, scanner, engine
	KeyClientIP  = "client_ip"  // originating client address, if known

	// ========================================================================
	// Filesystem
	// ========================================================================
	KeyPath     = "path"      // canonical filesystem path
	KeyNodeID   = "node_id"   // NodeId, hex-encoded
	KeyParentID = "parent_id" // parent NodeId, hex-encoded
	KeyEntries  = "entries"   // number of directory entries
	KeySize     = "size"      // file size in bytes
	KeyType     = "type"      // node kind: file, directory, symlink

	// ========================================================================
	// Pipeline
	// ========================================================================
	KeyStage      = "stage"       // pipeline stage name
	KeyTotalCount = "total_count" // PipelineData total_count after a stage

	// ========================================================================
	// Scanner
	// ========================================================================
	KeyCancelled = "cancelled" // scan observed cancellation

	// ========================================================================
	// Operation Metadata
	// ========================================================================
	KeyDurationMs  = "duration_ms"
	KeyError       = "error"
	KeyErrorCode   = "error_code"
	KeyRecoverable = "recoverable"
)

// ============================================================================
// Field constructors for type safety
// ============================================================================

// TraceID returns a slog.Attr for the trace correlation id.
func TraceID(id string) slog.Attr {
	return slog.String(KeyTraceID, id)
}

// SpanID returns a slog.Attr for the span id.
func SpanID(id string) slog.Attr {
	return slog.String(KeySpanID, id)
}

// SessionID returns a slog.Attr for a session identifier.
func SessionID(id string) slog.Attr {
	return slog.String(KeySessionID, id)
}

// Command returns a slog.Attr for a command variant name.
func Command(name string) slog.Attr {
	return slog.String(KeyCommand, name)
}

// Event returns a slog.Attr for an event variant name.
func Event(name string) slog.Attr {
	return slog.String(KeyEvent, name)
}

// Actor returns a slog.Attr identifying the emitting actor.
func Actor(name string) slog.Attr {
	return slog.String(KeyActor, name)
}

// ClientIP returns a slog.Attr for a client address.
func ClientIP(addr string) slog.Attr {
	return slog.String(KeyClientIP, addr)
}

// Path returns a slog.Attr for a filesystem path.
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// NodeID returns a slog.Attr for a NodeId rendered as hex.
func NodeID(hex string) slog.Attr {
	return slog.String(KeyNodeID, hex)
}

// ParentID returns a slog.Attr for a parent NodeId rendered as hex.
func ParentID(hex string) slog.Attr {
	return slog.String(KeyParentID, hex)
}

// Entries returns a slog.Attr for a directory entry count.
func Entries(n int) slog.Attr {
	return slog.Int(KeyEntries, n)
}

// Size returns a slog.Attr for a file size in bytes.
func Size(s uint64) slog.Attr {
	return slog.Uint64(KeySize, s)
}

// Type returns a slog.Attr for a node kind.
func Type(t string) slog.Attr {
	return slog.String(KeyType, t)
}

// Stage returns a slog.Attr for a pipeline stage name.
func Stage(name string) slog.Attr {
	return slog.String(KeyStage, name)
}

// TotalCount returns a slog.Attr for a PipelineData total_count.
func TotalCount(n int) slog.Attr {
	return slog.Int(KeyTotalCount, n)
}

// Cancelled returns a slog.Attr for scan cancellation observation.
func Cancelled(c bool) slog.Attr {
	return slog.Bool(KeyCancelled, c)
}

// DurationMs returns a slog.Attr for a duration in milliseconds.
func DurationMs(ms float64) slog.Attr {
	return slog.Float64(KeyDurationMs, ms)
}

// Err returns a slog.Attr for an error.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// ErrorCode returns a slog.Attr for a taxonomy error code.
func ErrorCode(code string) slog.Attr {
	return slog.String(KeyErrorCode, code)
}

// Recoverable returns a slog.Attr for whether an error is recoverable.
func Recoverable(r bool) slog.Attr {
	return slog.Bool(KeyRecoverable, r)
}
