// Package navigator implements the Navigator actor: per-session
// navigation state, history with back/forward/up semantics, and
// coordination with the Scanner.
package navigator

import (
	"sync"

	"github.com/marmos91/filecore/internal/logger"
	"github.com/marmos91/filecore/pkg/event"
	"github.com/marmos91/filecore/pkg/navstate"
	"github.com/marmos91/filecore/pkg/nodeid"
	"github.com/marmos91/filecore/pkg/registry"
	"github.com/marmos91/filecore/pkg/scanner"
	"github.com/marmos91/filecore/pkg/session"
)

// entry pairs a session's state with the lock that serializes commands
// targeting it, so commands for the same session never interleave while
// commands for different sessions run fully in parallel.
type entry struct {
	mu    sync.Mutex
	state *navstate.State
}

// Navigator owns a concurrent SessionId->NavigatorState map and a shared
// NodeRegistry reference; it never holds the map's lock across a state
// mutation, only while looking the entry up or inserting it.
type Navigator struct {
	registry   *registry.NodeRegistry
	scanOut    chan<- scanner.Command
	events     chan<- event.Event
	historyCap int

	mapMu    sync.RWMutex
	sessions map[session.ID]*entry

	// openNodes is the fast-path membership set from §9's supplemented
	// Invalidate behavior: skip the full session scan when no session
	// currently has a node open.
	openMu    sync.Mutex
	openNodes map[nodeid.NodeId]map[session.ID]struct{}

	commands chan Command
	done     chan struct{}
}

// New creates a Navigator. historyCap is the per-session history capacity
// (navstate.DefaultHistoryLimit if <= 0).
func New(reg *registry.NodeRegistry, scanOut chan<- scanner.Command, events chan<- event.Event, historyCap, cmdBufferSize int) *Navigator {
	if cmdBufferSize <= 0 {
		cmdBufferSize = 64
	}
	return &Navigator{
		registry:   reg,
		scanOut:    scanOut,
		events:     events,
		historyCap: historyCap,
		sessions:   make(map[session.ID]*entry),
		openNodes:  make(map[nodeid.NodeId]map[session.ID]struct{}),
		commands:   make(chan Command, cmdBufferSize),
		done:       make(chan struct{}),
	}
}

// Commands returns the send side of the Navigator's inbound channel.
func (n *Navigator) Commands() chan<- Command {
	return n.commands
}

// Done is closed once Run has returned.
func (n *Navigator) Done() <-chan struct{} {
	return n.done
}

// Run reads commands until the channel is closed, dispatching each to its
// own goroutine so that a slow command for one session never delays
// another. Per-session exclusive locking (not this loop) provides
// ordering within a session.
func (n *Navigator) Run() {
	defer close(n.done)
	for cmd := range n.commands {
		go n.handle(cmd)
	}
}

func (n *Navigator) handle(cmd Command) {
	switch c := cmd.(type) {
	case NewSession:
		n.newSession(c.Session)
	case Navigate:
		n.withSession(c.Session, func(e *entry) { n.doNavigate(c.Session, e, c.Node) })
	case NavigateToPath:
		node := n.registry.Register(c.Path)
		n.withSession(c.Session, func(e *entry) { n.doNavigate(c.Session, e, node) })
	case Back:
		n.withSession(c.Session, func(e *entry) { n.doBackForward(c.Session, e, e.state.Back) })
	case Forward:
		n.withSession(c.Session, func(e *entry) { n.doBackForward(c.Session, e, e.state.Forward) })
	case Up:
		n.withSession(c.Session, func(e *entry) { n.doUp(c.Session, e) })
	case Refresh:
		n.withSession(c.Session, func(e *entry) { n.doRefresh(c.Session, e) })
	case SetPipeline:
		n.withSession(c.Session, func(e *entry) { e.state.Pipeline = c.Config })
	case SetSelected:
		n.withSession(c.Session, func(e *entry) { e.state.SetSelected(c.Nodes) })
	case GetState:
		n.withSession(c.Session, func(e *entry) { n.emitState(c.Session, e) })
	case Invalidate:
		n.invalidate(c.Node)
	default:
		logger.Warn("navigator received unknown command", "type", Name(cmd))
	}
}

// newSession inserts a fresh NavigatorState, a no-op if one already
// exists for id.
func (n *Navigator) newSession(id session.ID) {
	n.mapMu.Lock()
	defer n.mapMu.Unlock()
	if _, ok := n.sessions[id]; ok {
		return
	}
	n.sessions[id] = &entry{state: navstate.New(n.historyCap)}
}

// withSession locks the target session's entry and runs fn, creating the
// entry on first use so a client need not always send NewSession first.
func (n *Navigator) withSession(id session.ID, fn func(e *entry)) {
	n.mapMu.RLock()
	e, ok := n.sessions[id]
	n.mapMu.RUnlock()

	if !ok {
		n.mapMu.Lock()
		e, ok = n.sessions[id]
		if !ok {
			e = &entry{state: navstate.New(n.historyCap)}
			n.sessions[id] = e
		}
		n.mapMu.Unlock()
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e)
}

func (n *Navigator) doNavigate(sess session.ID, e *entry, node nodeid.NodeId) {
	if old, ok := e.state.Current(); ok {
		n.untrackOpen(old, sess)
	}
	e.state.Navigate(node)
	n.trackOpen(node, sess)
	n.triggerScan(sess, node, e.state)
}

func (n *Navigator) doBackForward(sess session.ID, e *entry, move func() (nodeid.NodeId, bool)) {
	old, hadCurrent := e.state.Current()
	node, ok := move()
	if !ok {
		n.emitError(sess, "no history entry in that direction", true)
		return
	}
	if hadCurrent {
		n.untrackOpen(old, sess)
	}
	n.trackOpen(node, sess)
	n.triggerScan(sess, node, e.state)
}

func (n *Navigator) doUp(sess session.ID, e *entry) {
	cur, ok := e.state.Current()
	if !ok {
		n.emitError(sess, "no current node to go up from", true)
		return
	}
	parent, ok := n.registry.Parent(cur)
	if !ok {
		n.emitError(sess, "current node has no parent", true)
		return
	}
	n.doNavigate(sess, e, parent)
}

func (n *Navigator) doRefresh(sess session.ID, e *entry) {
	cur, ok := e.state.Current()
	if !ok {
		n.emitError(sess, "no current node to refresh", true)
		return
	}
	n.triggerScan(sess, cur, e.state)
}

func (n *Navigator) emitState(sess session.ID, e *entry) {
	n.emit(event.CurrentNavigateState{Session: sess, State: n.snapshotLocked(e)})
}

// snapshotLocked builds a Snapshot from e, which the caller must already
// hold e.mu for.
func (n *Navigator) snapshotLocked(e *entry) navstate.Snapshot {
	cur, hasCurrent := e.state.Current()
	snap := navstate.Snapshot{
		CanBack:    e.state.CanBack(),
		CanForward: e.state.CanForward(),
		Pipeline:   e.state.Pipeline,
		Selected:   e.state.SelectedSlice(),
	}
	if hasCurrent {
		c := cur
		snap.Current = &c
		if _, ok := n.registry.Parent(cur); ok {
			snap.CanUp = true
		}
	}
	return snap
}

// Snapshots returns a point-in-time Snapshot for every known session, for
// the debug HTTP surface. Unlike GetState it is synchronous and bypasses
// the command channel, since it serves a read-only operational view rather
// than a client-facing navigation response.
func (n *Navigator) Snapshots() map[session.ID]navstate.Snapshot {
	n.mapMu.RLock()
	ids := make([]session.ID, 0, len(n.sessions))
	entries := make([]*entry, 0, len(n.sessions))
	for id, e := range n.sessions {
		ids = append(ids, id)
		entries = append(entries, e)
	}
	n.mapMu.RUnlock()

	out := make(map[session.ID]navstate.Snapshot, len(ids))
	for i, e := range entries {
		e.mu.Lock()
		out[ids[i]] = n.snapshotLocked(e)
		e.mu.Unlock()
	}
	return out
}

// triggerScan emits a ScanNode command on the Scanner's inbound channel.
// The Navigator never awaits the scan's result.
func (n *Navigator) triggerScan(sess session.ID, node nodeid.NodeId, state *navstate.State) {
	select {
	case n.scanOut <- scanner.ScanNode{Node: node, Session: sess, Pipeline: state.Pipeline}:
	default:
		logger.Warn("navigator dropped scan trigger, scanner channel full", "session_id", uint64(sess))
	}
}

// invalidate rescans every session currently viewing node, using the
// openNodes fast-path set to skip entirely when nothing references it. Each
// affected session also receives an FsChanged event, so a client that reads
// events without diffing scan results still learns the change happened.
func (n *Navigator) invalidate(node nodeid.NodeId) {
	n.openMu.Lock()
	sessions := n.openNodes[node]
	if len(sessions) == 0 {
		n.openMu.Unlock()
		return
	}
	targets := make([]session.ID, 0, len(sessions))
	for s := range sessions {
		targets = append(targets, s)
	}
	n.openMu.Unlock()

	for _, sess := range targets {
		n.emit(event.FsChanged{Node: node, Kind: event.FsChangeModified, Session: sess})
		n.withSession(sess, func(e *entry) {
			if cur, ok := e.state.Current(); ok && cur == node {
				n.triggerScan(sess, cur, e.state)
			}
		})
	}
}

func (n *Navigator) trackOpen(node nodeid.NodeId, sess session.ID) {
	n.openMu.Lock()
	defer n.openMu.Unlock()
	set, ok := n.openNodes[node]
	if !ok {
		set = make(map[session.ID]struct{})
		n.openNodes[node] = set
	}
	set[sess] = struct{}{}
}

func (n *Navigator) untrackOpen(node nodeid.NodeId, sess session.ID) {
	n.openMu.Lock()
	defer n.openMu.Unlock()
	set, ok := n.openNodes[node]
	if !ok {
		return
	}
	delete(set, sess)
	if len(set) == 0 {
		delete(n.openNodes, node)
	}
}

func (n *Navigator) emitError(sess session.ID, message string, recoverable bool) {
	n.emit(event.Error{Message: message, Recoverable: recoverable, Session: sess})
}

func (n *Navigator) emit(e event.Event) {
	select {
	case n.events <- e:
	default:
		logger.Warn("navigator dropped event, channel full", "event", event.Name(e))
	}
}
