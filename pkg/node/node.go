// Package node defines the immutable snapshot of a filesystem entry that
// flows through the pipeline and out to clients as part of a
// DirectoryLoaded event.
package node

import (
	"time"

	"github.com/marmos91/filecore/pkg/nodeid"
)

// Kind discriminates the three shapes a FileNode can take. Exactly one of
// File, Directory, or Symlink is populated, selected by Kind.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
	KindSymlink
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symlink"
	default:
		return "unknown"
	}
}

// FileInfo carries the File-kind payload.
type FileInfo struct {
	Extension string // empty when the name carries no extension
}

// DirectoryInfo carries the Directory-kind payload.
type DirectoryInfo struct {
	ChildCount *int // nil when the count was not computed by the provider
}

// SymlinkInfo carries the Symlink-kind payload.
type SymlinkInfo struct {
	TargetPath string
}

// Meta carries permission and visibility bits, orthogonal to Kind.
type Meta struct {
	Hidden         bool
	Readonly       bool
	PermissionBits *uint32 // nil on platforms/providers that don't expose POSIX bits
}

// FileNode is an immutable snapshot of a directory entry. Staleness is
// acceptable by design: a stale FileNode is replaced wholesale by the next
// DirectoryLoaded event, never patched in place.
type FileNode struct {
	ID            nodeid.NodeId
	Name          string
	CanonicalPath string
	Kind          Kind
	File          FileInfo
	Directory     DirectoryInfo
	Symlink       SymlinkInfo
	SizeBytes     uint64
	ModifiedTime  *time.Time
	CreatedTime   *time.Time
	Meta          Meta
}

// IsDir reports whether the node is a directory, the one fact the sort
// stage's directories_first rule needs without unpacking Kind.
func (n FileNode) IsDir() bool {
	return n.Kind == KindDirectory
}

// Extension returns the node's recorded extension, or "" if it has none.
// Only File nodes carry an extension; directories and symlinks never do.
func (n FileNode) Extension() string {
	if n.Kind != KindFile {
		return ""
	}
	return n.File.Extension
}
