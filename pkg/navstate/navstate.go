// Package navstate implements the per-session navigation state machine:
// history with back/forward/up semantics, selection, and the active
// pipeline configuration. It holds no channels and does no I/O, so it can
// be unit-tested without a running Navigator actor.
package navstate

import (
	"github.com/marmos91/filecore/pkg/nodeid"
	"github.com/marmos91/filecore/pkg/pipeline"
)

// DefaultHistoryLimit is the history capacity used when a session does not
// override it.
const DefaultHistoryLimit = 100

// State is one session's navigation state. History is kept oldest-first;
// HistoryIndex counts back from the newest entry, so HistoryIndex == 0
// means the cursor sits on the most recent entry.
type State struct {
	History      []nodeid.NodeId
	HistoryIndex int
	HistoryLimit int
	Pipeline     pipeline.PipelineConfig
	Selected     map[nodeid.NodeId]struct{}
}

// New creates a State with an empty history and the given capacity. A
// non-positive limit falls back to DefaultHistoryLimit.
func New(historyLimit int) *State {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &State{
		HistoryLimit: historyLimit,
		Selected:     make(map[nodeid.NodeId]struct{}),
	}
}

// Current returns the node the cursor is on, or false if history is empty.
func (s *State) Current() (nodeid.NodeId, bool) {
	if len(s.History) == 0 {
		return nodeid.Zero, false
	}
	return s.History[len(s.History)-1-s.HistoryIndex], true
}

// CanBack reports whether Back would succeed.
func (s *State) CanBack() bool {
	return len(s.History) > s.HistoryIndex+1
}

// CanForward reports whether Forward would succeed.
func (s *State) CanForward() bool {
	return s.HistoryIndex > 0
}

// Navigate pushes node as the new current entry. If the cursor was not on
// the newest entry, the forward history (everything newer than the
// cursor) is discarded first. The oldest entry is evicted when the
// history is at capacity.
func (s *State) Navigate(node nodeid.NodeId) {
	if s.HistoryIndex > 0 {
		s.History = s.History[:len(s.History)-s.HistoryIndex]
		s.HistoryIndex = 0
	}

	s.History = append(s.History, node)
	if len(s.History) > s.HistoryLimit {
		s.History = s.History[1:]
	}
}

// Back moves the cursor one entry toward the oldest and returns the node
// now current. ok is false (no-op) when already at the oldest entry.
func (s *State) Back() (nodeid.NodeId, bool) {
	if !s.CanBack() {
		return nodeid.Zero, false
	}
	s.HistoryIndex++
	node, _ := s.Current()
	return node, true
}

// Forward moves the cursor one entry toward the newest and returns the
// node now current. ok is false (no-op) when already at the newest entry.
func (s *State) Forward() (nodeid.NodeId, bool) {
	if !s.CanForward() {
		return nodeid.Zero, false
	}
	s.HistoryIndex--
	node, _ := s.Current()
	return node, true
}

// SetSelected unions nodes into the selection set.
func (s *State) SetSelected(nodes []nodeid.NodeId) {
	for _, n := range nodes {
		s.Selected[n] = struct{}{}
	}
}

// SelectedSlice returns the current selection as a slice; iteration order
// over a Go map is not stable, so callers needing stable output should sort.
func (s *State) SelectedSlice() []nodeid.NodeId {
	out := make([]nodeid.NodeId, 0, len(s.Selected))
	for n := range s.Selected {
		out = append(out, n)
	}
	return out
}

// Snapshot is the read-only view returned to a client by GetState.
type Snapshot struct {
	Current    *nodeid.NodeId
	CanBack    bool
	CanForward bool
	CanUp      bool
	Pipeline   pipeline.PipelineConfig
	Selected   []nodeid.NodeId
}
