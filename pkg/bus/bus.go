// Package bus implements the EventBus: a typed publish/subscribe layer over
// bounded channels, keyed by message type. It plays the role the original
// implementation gave a TypeId-keyed concurrent map of boxed channels;
// Go generics plus reflect.Type give the same type-erased-storage,
// type-safe-API shape without an interface{} at the call site.
package bus

import (
	"context"
	"reflect"
	"sync"

	"github.com/marmos91/filecore/pkg/corerr"
)

type entry struct {
	mu     sync.RWMutex
	ch     any // chan M, boxed
	closed bool
}

// EventBus is a type-erased registry of bounded channels, one per message
// type registered with it. The zero value is not usable; construct with
// New.
type EventBus struct {
	mu      sync.RWMutex
	entries map[reflect.Type]*entry
}

// New creates an empty EventBus.
func New() *EventBus {
	return &EventBus{entries: make(map[reflect.Type]*entry)}
}

func typeOf[M any]() reflect.Type {
	return reflect.TypeOf((*M)(nil)).Elem()
}

// Register creates the bounded channel for message type M with the given
// capacity and returns a send-only handle. Re-registration for a type
// already registered is idempotent: it returns the existing channel
// without changing its capacity.
func Register[M any](b *EventBus, capacity int) chan<- M {
	t := typeOf[M]()

	b.mu.Lock()
	defer b.mu.Unlock()
	if e, ok := b.entries[t]; ok {
		return e.ch.(chan M)
	}
	ch := make(chan M, capacity)
	b.entries[t] = &entry{ch: ch}
	return ch
}

// Subscribe returns a receive-only handle for message type M, or false if
// nothing has registered that type yet. Multiple subscribers to the same
// type compete for each published message, matching the underlying Go
// channel's fan-out-by-competition semantics.
func Subscribe[M any](b *EventBus) (<-chan M, bool) {
	t := typeOf[M]()

	b.mu.RLock()
	defer b.mu.RUnlock()
	e, ok := b.entries[t]
	if !ok {
		return nil, false
	}
	return e.ch.(chan M), true
}

// Publish sends msg on the M channel, blocking if it is at capacity. It
// returns ErrChannelClosed if M was never registered, or ErrChannelError
// if the channel has been closed by Close.
func Publish[M any](b *EventBus, msg M) error {
	e, ok := lookup[M](b)
	if !ok {
		return corerr.NewChannelClosedError()
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.closed {
		return corerr.NewChannelError("channel closed")
	}
	e.ch.(chan M) <- msg
	return nil
}

// PublishCtx behaves as Publish but aborts the blocking send if ctx is
// cancelled first, returning ctx.Err().
func PublishCtx[M any](ctx context.Context, b *EventBus, msg M) error {
	e, ok := lookup[M](b)
	if !ok {
		return corerr.NewChannelClosedError()
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.closed {
		return corerr.NewChannelError("channel closed")
	}

	select {
	case e.ch.(chan M) <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close closes the channel registered for M, if any. Subsequent Publish
// calls for M return ErrChannelError; subscribers observe the close when
// ranging over their receive handle.
func Close[M any](b *EventBus) {
	e, ok := lookup[M](b)
	if !ok {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	close(e.ch.(chan M))
}

func lookup[M any](b *EventBus) (*entry, bool) {
	t := typeOf[M]()
	b.mu.RLock()
	defer b.mu.RUnlock()
	e, ok := b.entries[t]
	return e, ok
}
