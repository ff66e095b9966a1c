// Package fsprovider defines the capability interface the Scanner uses to
// reach an actual filesystem backend. Concrete backends (local disk, S3,
// WebDAV, FTP, FUSE) are collaborators outside this core; pkg/localfs is
// the one concrete implementation built to exercise it end-to-end.
package fsprovider

import (
	"context"

	"github.com/marmos91/filecore/pkg/node"
)

// Capabilities reports which optional operations a provider supports. A
// provider that reports Watch == false never appears on the Watch/Unwatch
// command path.
type Capabilities struct {
	Read   bool
	Write  bool
	Watch  bool
	Search bool
}

// FsProvider is the capability set a concrete filesystem backend exposes
// to the Scanner. Every method is asynchronous and context-cancellable;
// implementations must return a *corerr.CoreError so the Scanner can
// classify failures without type-asserting on backend-specific errors.
type FsProvider interface {
	// Scheme is the URI scheme this provider serves, e.g. "file" or "s3".
	Scheme() string

	Capabilities() Capabilities

	// List returns the immediate children of path, unsorted and
	// unfiltered — the Pipeline is responsible for ordering and shaping.
	List(ctx context.Context, path string) ([]node.FileNode, error)

	Read(ctx context.Context, path string) ([]byte, error)

	ReadRange(ctx context.Context, path string, start, length int64) ([]byte, error)

	Exists(ctx context.Context, path string) (bool, error)

	Metadata(ctx context.Context, path string) (node.FileNode, error)
}
