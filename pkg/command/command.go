// Package command defines the external command surface: the tagged union
// of operations a client may send into the engine, each tagged with the
// SessionId it targets. The engine's dispatcher routes each variant to the
// actor that owns it; Command itself carries no behavior.
package command

import (
	"github.com/marmos91/filecore/pkg/nodeid"
	"github.com/marmos91/filecore/pkg/pipeline"
	"github.com/marmos91/filecore/pkg/session"
)

// Command is implemented by every command variant. The marker method is
// unexported so the union is closed to this package.
type Command interface {
	isCommand()
}

type Navigate struct {
	Session session.ID
	Path    string
}

type NavigateToNode struct {
	Session session.ID
	Node    nodeid.NodeId
}

type NavigateUp struct {
	Session session.ID
}

type Refresh struct {
	Session session.ID
}

type Search struct {
	Session session.ID
	Query   string
	Root    nodeid.NodeId
}

type Cancel struct {
	Session session.ID
}

type LoadPreview struct {
	Session session.ID
	Node    nodeid.NodeId
	Options map[string]string
}

type CancelPreview struct {
	Session session.ID
	Node    nodeid.NodeId
}

type Copy struct {
	Session session.ID
	Src     nodeid.NodeId
	Dst     nodeid.NodeId
}

type Move struct {
	Session session.ID
	Src     nodeid.NodeId
	Dst     nodeid.NodeId
}

type Delete struct {
	Session session.ID
	Node    nodeid.NodeId
}

type Rename struct {
	Session session.ID
	Node    nodeid.NodeId
	NewName string
}

type CreateFolder struct {
	Session session.ID
	Parent  nodeid.NodeId
	Name    string
}

type CreateFile struct {
	Session session.ID
	Parent  nodeid.NodeId
	Name    string
}

type LoadMetadata struct {
	Session session.ID
	Node    nodeid.NodeId
}

type Watch struct {
	Session session.ID
	Node    nodeid.NodeId
}

type Unwatch struct {
	Session session.ID
	Node    nodeid.NodeId
}

type Handshake struct {
	Session session.ID
}

type DestroySession struct {
	Session session.ID
}

// SetPipeline replaces a session's pipeline configuration. It is part of
// the external view-command surface even though its effect is entirely
// internal to the Navigator.
type SetPipeline struct {
	Session session.ID
	Config  pipeline.PipelineConfig
}

func (Navigate) isCommand()       {}
func (NavigateToNode) isCommand() {}
func (NavigateUp) isCommand()     {}
func (Refresh) isCommand()        {}
func (Search) isCommand()         {}
func (Cancel) isCommand()         {}
func (LoadPreview) isCommand()    {}
func (CancelPreview) isCommand()  {}
func (Copy) isCommand()           {}
func (Move) isCommand()           {}
func (Delete) isCommand()         {}
func (Rename) isCommand()         {}
func (CreateFolder) isCommand()   {}
func (CreateFile) isCommand()     {}
func (LoadMetadata) isCommand()   {}
func (Watch) isCommand()          {}
func (Unwatch) isCommand()        {}
func (Handshake) isCommand()      {}
func (DestroySession) isCommand() {}
func (SetPipeline) isCommand()    {}

// SessionOf returns the SessionId every Command variant carries, for
// logging and metrics without a type switch.
func SessionOf(c Command) session.ID {
	switch v := c.(type) {
	case Navigate:
		return v.Session
	case NavigateToNode:
		return v.Session
	case NavigateUp:
		return v.Session
	case Refresh:
		return v.Session
	case Search:
		return v.Session
	case Cancel:
		return v.Session
	case LoadPreview:
		return v.Session
	case CancelPreview:
		return v.Session
	case Copy:
		return v.Session
	case Move:
		return v.Session
	case Delete:
		return v.Session
	case Rename:
		return v.Session
	case CreateFolder:
		return v.Session
	case CreateFile:
		return v.Session
	case LoadMetadata:
		return v.Session
	case Watch:
		return v.Session
	case Unwatch:
		return v.Session
	case Handshake:
		return v.Session
	case DestroySession:
		return v.Session
	case SetPipeline:
		return v.Session
	default:
		return session.Default
	}
}

// Name returns a stable short name for logging and metrics labels.
func Name(c Command) string {
	switch c.(type) {
	case Navigate:
		return "navigate"
	case NavigateToNode:
		return "navigate_to_node"
	case NavigateUp:
		return "navigate_up"
	case Refresh:
		return "refresh"
	case Search:
		return "search"
	case Cancel:
		return "cancel"
	case LoadPreview:
		return "load_preview"
	case CancelPreview:
		return "cancel_preview"
	case Copy:
		return "copy"
	case Move:
		return "move"
	case Delete:
		return "delete"
	case Rename:
		return "rename"
	case CreateFolder:
		return "create_folder"
	case CreateFile:
		return "create_file"
	case LoadMetadata:
		return "load_metadata"
	case Watch:
		return "watch"
	case Unwatch:
		return "unwatch"
	case Handshake:
		return "handshake"
	case DestroySession:
		return "destroy_session"
	case SetPipeline:
		return "set_pipeline"
	default:
		return "unknown"
	}
}
