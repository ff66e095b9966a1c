// Package localfs is the concrete FsProvider backed by the local disk: a
// base path, a small Config, and paths resolved relative to the base.
package localfs

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/marmos91/filecore/pkg/corerr"
	"github.com/marmos91/filecore/pkg/fsprovider"
	"github.com/marmos91/filecore/pkg/node"
)

// Config controls how Provider resolves and restricts filesystem access.
type Config struct {
	// Root is the directory treated as the provider's scheme root. Paths
	// handed to List/Read/etc. are absolute paths already rooted here;
	// Root only bounds what resolve will accept.
	Root string
}

// Provider is a local-disk FsProvider. It does not sandbox Root the way a
// chroot would: it only refuses to resolve paths that escape Root via "..".
type Provider struct {
	root string
}

// New creates a Provider rooted at cfg.Root. The root must already exist.
func New(cfg Config) (*Provider, error) {
	if cfg.Root == "" {
		return nil, corerr.NewInvalidPathError("")
	}
	abs, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, corerr.FromOSError(cfg.Root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, corerr.FromOSError(abs, err)
	}
	if !info.IsDir() {
		return nil, corerr.NewInvalidPathError(abs)
	}
	return &Provider{root: abs}, nil
}

// Scheme identifies this provider's FsProvider registration key.
func (p *Provider) Scheme() string { return "file" }

// Root returns the absolute directory this provider is rooted at, for
// callers that need to watch it directly (see pkg/watch).
func (p *Provider) Root() string { return p.root }

// Capabilities reports what the local disk supports: everything but Search,
// which belongs to a dedicated index-backed provider.
func (p *Provider) Capabilities() fsprovider.Capabilities {
	return fsprovider.Capabilities{Read: true, Write: true, Watch: true, Search: false}
}

// resolve rejects paths that escape the provider's root.
func (p *Provider) resolve(path string) (string, error) {
	clean := filepath.Clean(path)
	if !filepath.IsAbs(clean) {
		clean = filepath.Join(p.root, clean)
	}
	rel, err := filepath.Rel(p.root, clean)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", corerr.NewInvalidPathError(path)
	}
	return clean, nil
}

// List returns the immediate children of path as FileNodes with Id left
// zero; the Scanner assigns real node IDs via the registry after List
// returns, since listing never allocates identity on its own.
func (p *Provider) List(ctx context.Context, path string) ([]node.FileNode, error) {
	resolved, err := p.resolve(path)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(resolved)
	if err != nil {
		return nil, corerr.FromOSError(resolved, err)
	}

	out := make([]node.FileNode, 0, len(entries))
	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return nil, corerr.NewCancelledError()
		default:
		}

		childPath := filepath.Join(resolved, entry.Name())
		n, err := describe(childPath, entry.Name())
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

// Read returns the full contents of the file at path.
func (p *Provider) Read(ctx context.Context, path string) ([]byte, error) {
	resolved, err := p.resolve(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, corerr.FromOSError(resolved, err)
	}
	return data, nil
}

// ReadRange returns length bytes starting at start. A short read at EOF
// returns the bytes actually available rather than an error.
func (p *Provider) ReadRange(ctx context.Context, path string, start, length int64) ([]byte, error) {
	resolved, err := p.resolve(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(resolved)
	if err != nil {
		return nil, corerr.FromOSError(resolved, err)
	}
	defer f.Close()

	if _, err := f.Seek(start, io.SeekStart); err != nil {
		return nil, corerr.FromOSError(resolved, err)
	}

	buf := make([]byte, length)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, corerr.FromOSError(resolved, err)
	}
	return buf[:n], nil
}

// Exists reports whether path names a file, directory, or symlink.
func (p *Provider) Exists(ctx context.Context, path string) (bool, error) {
	resolved, err := p.resolve(path)
	if err != nil {
		return false, err
	}
	if _, err := os.Lstat(resolved); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, corerr.FromOSError(resolved, err)
	}
	return true, nil
}

// Metadata returns a single FileNode describing path itself, rather than
// its children.
func (p *Provider) Metadata(ctx context.Context, path string) (node.FileNode, error) {
	resolved, err := p.resolve(path)
	if err != nil {
		return node.FileNode{}, err
	}
	return describe(resolved, filepath.Base(resolved))
}

// describe stats path and builds the matching FileNode, classifying it as
// File, Directory, or Symlink per node.Kind's contract that exactly one of
// the three payload structs is populated.
func describe(path, name string) (node.FileNode, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return node.FileNode{}, corerr.FromOSError(path, err)
	}

	n := node.FileNode{
		Name:          name,
		CanonicalPath: path,
		SizeBytes:     uint64(info.Size()),
		Meta: node.Meta{
			Hidden: strings.HasPrefix(name, "."),
		},
	}
	modified := info.ModTime()
	n.ModifiedTime = &modified

	switch {
	case info.Mode()&os.ModeSymlink != 0:
		target, err := os.Readlink(path)
		if err != nil {
			target = ""
		}
		n.Kind = node.KindSymlink
		n.Symlink = node.SymlinkInfo{TargetPath: target}
	case info.IsDir():
		n.Kind = node.KindDirectory
	default:
		n.Kind = node.KindFile
		n.File = node.FileInfo{Extension: extensionOf(name)}
	}

	if bits := uint32(info.Mode().Perm()); bits != 0 {
		n.Meta.PermissionBits = &bits
	}
	n.Meta.Readonly = info.Mode().Perm()&0o200 == 0

	return n, nil
}

// extensionOf returns a file name's extension without the leading dot, or
// "" if the name has none. A dotfile with no further suffix (".gitignore")
// has no extension, matching the originating system's path-extension rule.
func extensionOf(name string) string {
	ext := filepath.Ext(name)
	if ext == "" || ext == name {
		return ""
	}
	return strings.TrimPrefix(ext, ".")
}
