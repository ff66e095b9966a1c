// Package session defines SessionId, the opaque handle every actor uses to
// tag commands, events, and per-client state without knowing anything
// about the client itself.
package session

import (
	"strconv"
	"sync/atomic"
)

// ID is a monotonically increasing identifier, unique for the lifetime of
// the process. ID(0) is reserved for single-client mode: a caller that
// never allocates a session and only ever addresses the default one.
type ID uint64

// Default is the reserved session identifier for single-client mode.
const Default ID = 0

var counter atomic.Uint64

// init seeds the counter so the first call to Next returns 1, keeping 0
// exclusively for Default.
func init() {
	counter.Store(0)
}

// Next allocates and returns the next SessionId. It is safe for concurrent
// use by multiple goroutines.
func Next() ID {
	return ID(counter.Add(1))
}

// String renders the SessionId as a decimal string, the form logger.LogContext
// carries it in.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}
