package scanner

import (
	"github.com/marmos91/filecore/pkg/nodeid"
	"github.com/marmos91/filecore/pkg/pipeline"
	"github.com/marmos91/filecore/pkg/session"
)

// Command is the Scanner actor's inbound message type.
type Command interface {
	isCommand()
}

// Scan requests a directory listing of path for session, post-processed
// by pipeline.
type Scan struct {
	Path     string
	Session  session.ID
	Pipeline pipeline.PipelineConfig
}

// ScanNode is Scan addressed by a previously registered NodeId instead of
// a raw path.
type ScanNode struct {
	Node     nodeid.NodeId
	Session  session.ID
	Pipeline pipeline.PipelineConfig
}

// Cancel marks session's in-flight scan, if any, as cancelled. It emits no
// event.
type Cancel struct {
	Session session.ID
}

// Shutdown cancels every in-flight scan and terminates the actor loop.
type Shutdown struct{}

func (Scan) isCommand()     {}
func (ScanNode) isCommand() {}
func (Cancel) isCommand()   {}
func (Shutdown) isCommand() {}
