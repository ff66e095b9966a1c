package httpapi

import (
	"net/http"
	"time"

	"github.com/marmos91/filecore/pkg/engine"
)

// HealthHandler serves the liveness probe.
type HealthHandler struct {
	startTime time.Time
}

// NewHealthHandler creates a health handler timestamped at construction.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startTime: time.Now()}
}

// Liveness handles GET /healthz.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	uptime := time.Since(h.startTime)
	writeJSON(w, http.StatusOK, okResponse(map[string]interface{}{
		"service":    "filecore",
		"started_at": h.startTime.UTC().Format(time.RFC3339),
		"uptime_sec": int64(uptime.Seconds()),
	}))
}

// SessionsHandler serves the operational debug surface.
type SessionsHandler struct {
	engine *engine.Engine
}

// NewSessionsHandler creates a debug sessions handler backed by eng.
func NewSessionsHandler(eng *engine.Engine) *SessionsHandler {
	return &SessionsHandler{engine: eng}
}

// sessionSnapshot is the JSON-friendly shape of a single session's NavState,
// rendering session and node ids as plain numbers (nodeid.NodeId would
// otherwise marshal as a hex string).
type sessionSnapshot struct {
	SessionID  uint64   `json:"session_id"`
	Current    *uint64  `json:"current,omitempty"`
	CanBack    bool     `json:"can_back"`
	CanForward bool     `json:"can_forward"`
	CanUp      bool     `json:"can_up"`
	Selected   []uint64 `json:"selected,omitempty"`
}

// List handles GET /debug/sessions - a read-only snapshot of every
// session's navigation state.
func (h *SessionsHandler) List(w http.ResponseWriter, r *http.Request) {
	snaps := h.engine.DebugSnapshots()

	out := make([]sessionSnapshot, 0, len(snaps))
	for id, snap := range snaps {
		s := sessionSnapshot{
			SessionID:  uint64(id),
			CanBack:    snap.CanBack,
			CanForward: snap.CanForward,
			CanUp:      snap.CanUp,
		}
		if snap.Current != nil {
			c := uint64(*snap.Current)
			s.Current = &c
		}
		for _, sel := range snap.Selected {
			s.Selected = append(s.Selected, uint64(sel))
		}
		out = append(out, s)
	}

	writeJSON(w, http.StatusOK, okResponse(map[string]interface{}{
		"sessions":       out,
		"active_count":   h.engine.Sessions().Count(),
		"registry_count": h.engine.Registry().Len(),
	}))
}
