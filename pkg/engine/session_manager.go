package engine

import (
	"sync"

	"github.com/marmos91/filecore/pkg/event"
	"github.com/marmos91/filecore/pkg/session"
)

// SessionManager fans the engine's single event stream out to one channel
// per session, so each client only ever observes events tagged with its
// own SessionId. It also tracks which sessions are alive for the debug
// surface and for metrics.
type SessionManager struct {
	bufferSize int

	mu       sync.RWMutex
	sessions map[session.ID]chan event.Event
}

func newSessionManager(bufferSize int) *SessionManager {
	if bufferSize <= 0 {
		bufferSize = 64
	}
	return &SessionManager{
		bufferSize: bufferSize,
		sessions:   make(map[session.ID]chan event.Event),
	}
}

// Create registers a new session's event channel, a no-op if the session
// already exists, matching the Navigator's NewSession idempotency.
func (m *SessionManager) Create(id session.ID) <-chan event.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ch, ok := m.sessions[id]; ok {
		return ch
	}
	ch := make(chan event.Event, m.bufferSize)
	m.sessions[id] = ch
	return ch
}

// Destroy closes and removes a session's event channel.
func (m *SessionManager) Destroy(id session.ID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch, ok := m.sessions[id]
	if !ok {
		return
	}
	delete(m.sessions, id)
	close(ch)
}

// Route delivers e to its session's channel, if that session is still
// alive. Events for unknown or already-destroyed sessions are dropped.
func (m *SessionManager) Route(e event.Event) {
	sess := event.SessionOf(e)

	m.mu.RLock()
	ch, ok := m.sessions[sess]
	m.mu.RUnlock()
	if !ok {
		return
	}

	select {
	case ch <- e:
	default:
		// Full channel: the client is not keeping up. Dropping here
		// matches the bus's "no implicit coalescing; dropping is the
		// publisher's policy" contract at the fan-out layer.
	}
}

// Active returns the SessionIds currently alive, for the debug surface.
func (m *SessionManager) Active() []session.ID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]session.ID, 0, len(m.sessions))
	for id := range m.sessions {
		out = append(out, id)
	}
	return out
}

// Count returns the number of active sessions, for the metrics gauge.
func (m *SessionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
