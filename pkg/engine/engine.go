// Package engine wires the EventBus, NodeRegistry, Navigator, and Scanner
// into a single handle, dispatching external commands to the actor that
// owns them and fanning events out per session.
package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/marmos91/filecore/internal/logger"
	"github.com/marmos91/filecore/pkg/bus"
	"github.com/marmos91/filecore/pkg/command"
	"github.com/marmos91/filecore/pkg/event"
	"github.com/marmos91/filecore/pkg/fsprovider"
	"github.com/marmos91/filecore/pkg/metrics"
	"github.com/marmos91/filecore/pkg/navigator"
	"github.com/marmos91/filecore/pkg/navstate"
	"github.com/marmos91/filecore/pkg/nodeid"
	"github.com/marmos91/filecore/pkg/registry"
	"github.com/marmos91/filecore/pkg/scanner"
	"github.com/marmos91/filecore/pkg/session"
)

// Config controls the actor channel capacities and history limit. Zero
// values fall back to each component's own defaults.
type Config struct {
	CommandBuffer int
	EventBuffer   int
	SessionBuffer int
	HistoryLimit  int
}

// Engine is the top-level handle a transport (HTTP, IPC, CLI) drives: one
// Dispatch call per inbound Command, one Subscribe call per connecting
// client.
type Engine struct {
	registry *registry.NodeRegistry
	bus      *bus.EventBus
	nav      *navigator.Navigator
	scan     *scanner.Scanner
	sessions *SessionManager
	metrics  *metrics.Metrics

	events <-chan event.Event
}

// New builds an Engine around provider, the one FsProvider it scans
// through. m may be nil to disable metrics entirely.
func New(provider fsprovider.FsProvider, cfg Config, m *metrics.Metrics) *Engine {
	reg := registry.New()
	b := bus.New()

	eventBuffer := cfg.EventBuffer
	if eventBuffer <= 0 {
		eventBuffer = 256
	}
	eventsIn := bus.Register[event.Event](b, eventBuffer)
	eventsOut, _ := bus.Subscribe[event.Event](b)

	scan := scanner.New(provider, reg, eventsIn, cfg.CommandBuffer, m)
	nav := navigator.New(reg, scan.Commands(), eventsIn, cfg.HistoryLimit, cfg.CommandBuffer)

	return &Engine{
		registry: reg,
		bus:      b,
		nav:      nav,
		scan:     scan,
		sessions: newSessionManager(cfg.SessionBuffer),
		metrics:  m,
		events:   eventsOut,
	}
}

// Run starts the Navigator and Scanner actor loops and the event
// fan-out loop. It blocks until ctx is cancelled or the event stream
// closes.
func (e *Engine) Run(ctx context.Context) {
	go e.nav.Run()
	go e.scan.Run(ctx)
	go e.reportGauges(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-e.events:
			if !ok {
				return
			}
			e.sessions.Route(evt)
		}
	}
}

// reportGauges periodically samples session count and registry size into
// the active-session and registry-size gauges, a no-op when e.metrics is
// nil.
func (e *Engine) reportGauges(ctx context.Context) {
	if e.metrics == nil {
		return
	}
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.metrics.SetActiveSessions(e.sessions.Count())
			e.metrics.SetRegistrySize(e.registry.Len())
		}
	}
}

// Dispatch routes an external Command to the actor that owns it.
func (e *Engine) Dispatch(cmd command.Command) {
	sess := command.SessionOf(cmd)
	e.metrics.RecordCommand(command.Name(cmd))

	lc := logger.NewLogContext(sess.String()).WithCommand(command.Name(cmd)).WithTrace(uuid.NewString(), "")
	ctx := logger.WithContext(context.Background(), lc)
	logger.DebugCtx(ctx, "dispatching command")

	switch c := cmd.(type) {
	case command.Handshake:
		e.sessions.Create(sess)
		e.nav.Commands() <- navigator.NewSession{Session: sess}
		bus.Publish[event.Event](e.bus, event.SessionCreated{Session: sess})

	case command.DestroySession:
		e.sessions.Destroy(sess)
		bus.Publish[event.Event](e.bus, event.SessionDestroyed{Session: sess})

	case command.Navigate:
		e.nav.Commands() <- navigator.NavigateToPath{Session: sess, Path: c.Path}

	case command.NavigateToNode:
		e.nav.Commands() <- navigator.Navigate{Session: sess, Node: c.Node}

	case command.NavigateUp:
		e.nav.Commands() <- navigator.Up{Session: sess}

	case command.Refresh:
		e.nav.Commands() <- navigator.Refresh{Session: sess}

	case command.SetPipeline:
		e.nav.Commands() <- navigator.SetPipeline{Session: sess, Config: c.Config}

	case command.Cancel:
		e.scan.Commands() <- scanner.Cancel{Session: sess}

	default:
		logger.Warn("engine has no route for command", "command", command.Name(cmd))
	}
}

// Subscribe returns the per-session event channel created by Handshake.
func (e *Engine) Subscribe(sess session.ID) <-chan event.Event {
	return e.sessions.Create(sess)
}

// Invalidate notifies the Navigator that node changed on disk, triggering
// a rescan and an FsChanged event for every session currently viewing it.
func (e *Engine) Invalidate(node nodeid.NodeId) {
	e.nav.Commands() <- navigator.Invalidate{Node: node}
}

// Registry exposes the shared NodeRegistry, for the debug HTTP surface.
func (e *Engine) Registry() *registry.NodeRegistry {
	return e.registry
}

// Sessions exposes the SessionManager, for the debug HTTP surface.
func (e *Engine) Sessions() *SessionManager {
	return e.sessions
}

// DebugSnapshots returns a point-in-time NavState snapshot for every known
// session, for the debug HTTP surface.
func (e *Engine) DebugSnapshots() map[session.ID]navstate.Snapshot {
	return e.nav.Snapshots()
}
