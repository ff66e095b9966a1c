package navigator

import (
	"github.com/marmos91/filecore/pkg/nodeid"
	"github.com/marmos91/filecore/pkg/pipeline"
	"github.com/marmos91/filecore/pkg/session"
)

// Command is the Navigator actor's inbound message type, per spec.md §4.4.
type Command interface {
	isCommand()
}

type NewSession struct {
	Session session.ID
}

type Navigate struct {
	Session session.ID
	Node    nodeid.NodeId
}

type NavigateToPath struct {
	Session session.ID
	Path    string
}

type Back struct {
	Session session.ID
}

type Forward struct {
	Session session.ID
}

type Up struct {
	Session session.ID
}

type Refresh struct {
	Session session.ID
}

type SetPipeline struct {
	Session session.ID
	Config  pipeline.PipelineConfig
}

type SetSelected struct {
	Session session.ID
	Nodes   []nodeid.NodeId
}

type GetState struct {
	Session session.ID
}

// Invalidate triggers a rescan for every session whose current node is
// node, using the openNodes fast-path set to skip entirely when no
// session has it open.
type Invalidate struct {
	Node nodeid.NodeId
}

func (NewSession) isCommand()     {}
func (Navigate) isCommand()       {}
func (NavigateToPath) isCommand() {}
func (Back) isCommand()           {}
func (Forward) isCommand()        {}
func (Up) isCommand()             {}
func (Refresh) isCommand()        {}
func (SetPipeline) isCommand()    {}
func (SetSelected) isCommand()    {}
func (GetState) isCommand()       {}
func (Invalidate) isCommand()     {}

// Name returns a stable short name for logging.
func Name(c Command) string {
	switch c.(type) {
	case NewSession:
		return "new_session"
	case Navigate:
		return "navigate"
	case NavigateToPath:
		return "navigate_to_path"
	case Back:
		return "back"
	case Forward:
		return "forward"
	case Up:
		return "up"
	case Refresh:
		return "refresh"
	case SetPipeline:
		return "set_pipeline"
	case SetSelected:
		return "set_selected"
	case GetState:
		return "get_state"
	case Invalidate:
		return "invalidate"
	default:
		return "unknown"
	}
}
