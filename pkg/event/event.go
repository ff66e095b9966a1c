// Package event defines the external event surface: the tagged union of
// notifications the engine publishes, each tagged with the SessionId it
// concerns. Events are published on the EventBus and fanned out per
// session by the engine's SessionManager.
package event

import (
	"github.com/marmos91/filecore/pkg/navstate"
	"github.com/marmos91/filecore/pkg/node"
	"github.com/marmos91/filecore/pkg/nodeid"
	"github.com/marmos91/filecore/pkg/session"
)

// Event is implemented by every event variant.
type Event interface {
	isEvent()
}

type DirectoryLoaded struct {
	ParentID nodeid.NodeId
	Path     string
	Entries  []node.FileNode
	Session  session.ID
}

type ScanProgress struct {
	Scanned int
	Current string
	Session session.ID
}

type FilesBatch struct {
	Entries []node.FileNode
	Session session.ID
}

type SearchResults struct {
	Query    string
	Matches  []node.FileNode
	Complete bool
	Session  session.ID
}

// FsChangeKind classifies what kind of filesystem change FsChanged reports.
type FsChangeKind int

const (
	FsChangeCreated FsChangeKind = iota
	FsChangeModified
	FsChangeRemoved
	FsChangeRenamed
)

type FsChanged struct {
	Node    nodeid.NodeId
	Kind    FsChangeKind
	Session session.ID
}

type OperationComplete struct {
	Op       string
	Success  bool
	Affected []nodeid.NodeId
	Session  session.ID
}

type Error struct {
	Message     string
	Recoverable bool
	Session     session.ID
}

type MetadataLoaded struct {
	Node    nodeid.NodeId
	Basic   node.FileNode
	Session session.ID
}

type ExtendedMetadataLoaded struct {
	Node     nodeid.NodeId
	Extended map[string]string
	Session  session.ID
}

type PreviewReady struct {
	Node    nodeid.NodeId
	Preview []byte
	Session session.ID
}

type PreviewFailed struct {
	Node    nodeid.NodeId
	Reason  string
	Session session.ID
}

type SessionCreated struct {
	Session session.ID
}

type SessionDestroyed struct {
	Session session.ID
}

type CurrentNavigateState struct {
	Session session.ID
	State   navstate.Snapshot
}

func (DirectoryLoaded) isEvent()       {}
func (ScanProgress) isEvent()          {}
func (FilesBatch) isEvent()            {}
func (SearchResults) isEvent()         {}
func (FsChanged) isEvent()             {}
func (OperationComplete) isEvent()     {}
func (Error) isEvent()                 {}
func (MetadataLoaded) isEvent()        {}
func (ExtendedMetadataLoaded) isEvent() {}
func (PreviewReady) isEvent()          {}
func (PreviewFailed) isEvent()         {}
func (SessionCreated) isEvent()        {}
func (SessionDestroyed) isEvent()      {}
func (CurrentNavigateState) isEvent()  {}

// SessionOf returns the SessionId every Event variant carries.
func SessionOf(e Event) session.ID {
	switch v := e.(type) {
	case DirectoryLoaded:
		return v.Session
	case ScanProgress:
		return v.Session
	case FilesBatch:
		return v.Session
	case SearchResults:
		return v.Session
	case FsChanged:
		return v.Session
	case OperationComplete:
		return v.Session
	case Error:
		return v.Session
	case MetadataLoaded:
		return v.Session
	case ExtendedMetadataLoaded:
		return v.Session
	case PreviewReady:
		return v.Session
	case PreviewFailed:
		return v.Session
	case SessionCreated:
		return v.Session
	case SessionDestroyed:
		return v.Session
	case CurrentNavigateState:
		return v.Session
	default:
		return session.Default
	}
}

// Name returns a stable short name for logging and metrics labels.
func Name(e Event) string {
	switch e.(type) {
	case DirectoryLoaded:
		return "directory_loaded"
	case ScanProgress:
		return "scan_progress"
	case FilesBatch:
		return "files_batch"
	case SearchResults:
		return "search_results"
	case FsChanged:
		return "fs_changed"
	case OperationComplete:
		return "operation_complete"
	case Error:
		return "error"
	case MetadataLoaded:
		return "metadata_loaded"
	case ExtendedMetadataLoaded:
		return "extended_metadata_loaded"
	case PreviewReady:
		return "preview_ready"
	case PreviewFailed:
		return "preview_failed"
	case SessionCreated:
		return "session_created"
	case SessionDestroyed:
		return "session_destroyed"
	case CurrentNavigateState:
		return "current_navigate_state"
	default:
		return "unknown"
	}
}
