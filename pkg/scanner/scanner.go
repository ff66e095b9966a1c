// Package scanner implements the Scanner actor: cancellable directory
// traversal with single-flight-per-session semantics and pipeline-driven
// post-processing, per the control plane's scan algorithm.
package scanner

import (
	"context"
	"sync"
	"time"

	"github.com/marmos91/filecore/internal/logger"
	"github.com/marmos91/filecore/pkg/corerr"
	"github.com/marmos91/filecore/pkg/event"
	"github.com/marmos91/filecore/pkg/fsprovider"
	"github.com/marmos91/filecore/pkg/metrics"
	"github.com/marmos91/filecore/pkg/nodeid"
	"github.com/marmos91/filecore/pkg/pipeline"
	"github.com/marmos91/filecore/pkg/registry"
	"github.com/marmos91/filecore/pkg/session"
)

// Scanner owns a cancellation token per in-flight scan, keyed by session,
// and emits DirectoryLoaded/Error events for every scan it completes or
// fails.
type Scanner struct {
	provider fsprovider.FsProvider
	registry *registry.NodeRegistry
	events   chan<- event.Event
	metrics  *metrics.Metrics

	mu     sync.Mutex
	tokens map[session.ID]*cancelToken

	commands chan Command
	done     chan struct{}
}

// New creates a Scanner reading commands from its own inbound channel
// (capacity cmdBufferSize) and publishing events to events. m may be nil,
// in which case scan metrics are simply not recorded.
func New(provider fsprovider.FsProvider, reg *registry.NodeRegistry, events chan<- event.Event, cmdBufferSize int, m *metrics.Metrics) *Scanner {
	if cmdBufferSize <= 0 {
		cmdBufferSize = 64
	}
	return &Scanner{
		provider: provider,
		registry: reg,
		events:   events,
		metrics:  m,
		tokens:   make(map[session.ID]*cancelToken),
		commands: make(chan Command, cmdBufferSize),
		done:     make(chan struct{}),
	}
}

// Commands returns the send side of the Scanner's inbound channel, for the
// engine's dispatcher to route scan commands onto.
func (s *Scanner) Commands() chan<- Command {
	return s.commands
}

// Run reads commands until the channel is closed or a Shutdown command is
// received, spawning one goroutine per scan so the loop itself never
// blocks on provider I/O.
func (s *Scanner) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			s.cancelAll()
			close(s.done)
			return
		case cmd, ok := <-s.commands:
			if !ok {
				s.cancelAll()
				close(s.done)
				return
			}
			s.dispatch(ctx, cmd)
			if _, ok := cmd.(Shutdown); ok {
				close(s.done)
				return
			}
		}
	}
}

// Done is closed once Run has returned.
func (s *Scanner) Done() <-chan struct{} {
	return s.done
}

func (s *Scanner) dispatch(ctx context.Context, cmd Command) {
	switch c := cmd.(type) {
	case Scan:
		tok := s.beginScan(c.Session)
		go s.scan(ctx, c.Path, c.Session, c.Pipeline, tok)
	case ScanNode:
		tok := s.beginScan(c.Session)
		go s.scanNode(ctx, c.Node, c.Session, c.Pipeline, tok)
	case Cancel:
		s.cancel(c.Session)
	case Shutdown:
		s.cancelAll()
	default:
		logger.Warn("scanner received unknown command", "type", Name(cmd))
	}
}

// beginScan implements single-flight-per-session: any existing token for
// session is cancelled and replaced atomically.
func (s *Scanner) beginScan(sess session.ID) *cancelToken {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.tokens[sess]; ok {
		prev.cancel()
	}
	tok := newCancelToken()
	s.tokens[sess] = tok
	return tok
}

func (s *Scanner) cancel(sess session.ID) {
	s.mu.Lock()
	tok, ok := s.tokens[sess]
	s.mu.Unlock()
	if ok {
		tok.cancel()
	}
}

func (s *Scanner) cancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tok := range s.tokens {
		tok.cancel()
	}
}

// endScan removes session's token only if it still equals tok — a
// superseded scan must never clear the token of the scan that replaced it.
func (s *Scanner) endScan(sess session.ID, tok *cancelToken) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tokens[sess] == tok {
		delete(s.tokens, sess)
	}
}

func (s *Scanner) scanNode(ctx context.Context, node nodeid.NodeId, sess session.ID, cfg pipeline.PipelineConfig, tok *cancelToken) {
	defer s.endScan(sess, tok)

	path, ok := s.registry.Resolve(node)
	if !ok {
		logger.Warn("scanner could not resolve node", "node_id", node.String())
		s.emit(event.Error{Message: "node no longer resolves to a path", Recoverable: false, Session: sess})
		return
	}
	s.runScan(ctx, path, sess, cfg, tok)
}

func (s *Scanner) scan(ctx context.Context, path string, sess session.ID, cfg pipeline.PipelineConfig, tok *cancelToken) {
	defer s.endScan(sess, tok)
	s.runScan(ctx, path, sess, cfg, tok)
}

// runScan is the 9-step scan algorithm (steps 1 and 9 are handled by the
// two scanNode/scan wrappers and endScan respectively).
func (s *Scanner) runScan(ctx context.Context, path string, sess session.ID, cfg pipeline.PipelineConfig, tok *cancelToken) {
	started := time.Now()

	nodes, err := s.provider.List(ctx, path)
	if err != nil {
		s.recordScan("error", started)
		s.emit(event.Error{Message: corerr.FromOSError(path, err).Error(), Recoverable: true, Session: sess})
		return
	}

	if tok.isCancelled() {
		s.recordScan("cancelled", started)
		return
	}

	paths := make([]string, 0, len(nodes)+1)
	paths = append(paths, path)
	for _, n := range nodes {
		paths = append(paths, n.CanonicalPath)
	}
	ids := s.registry.RegisterBatch(paths)
	parentID := ids[0]
	for i, n := range nodes {
		nodes[i].ID = ids[i+1]
	}

	built, err := pipeline.Build(cfg)
	if err != nil {
		s.recordScan("error", started)
		s.emit(event.Error{Message: err.Error(), Recoverable: true, Session: sess})
		return
	}
	data := built.Execute(pipeline.NewFlat(nodes))
	entries := data.Flatten()

	if tok.isCancelled() {
		s.recordScan("cancelled", started)
		return
	}

	s.recordScan("completed", started)
	s.emit(event.DirectoryLoaded{ParentID: parentID, Path: path, Entries: entries, Session: sess})
}

func (s *Scanner) recordScan(outcome string, started time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordScan(outcome, time.Since(started).Seconds())
}

func (s *Scanner) emit(e event.Event) {
	select {
	case s.events <- e:
	default:
		logger.Warn("scanner dropped event, channel full", "event", event.Name(e))
	}
}

// Name returns a stable short name for an unrecognized Command, for
// logging only.
func Name(c Command) string {
	switch c.(type) {
	case Scan:
		return "scan"
	case ScanNode:
		return "scan_node"
	case Cancel:
		return "cancel"
	case Shutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}
