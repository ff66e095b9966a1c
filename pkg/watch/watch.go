// Package watch bridges local-disk change notifications into the engine's
// Invalidate path, so a directory a session is currently viewing gets
// rescanned without the client having to poll or manually Refresh.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/marmos91/filecore/internal/logger"
	"github.com/marmos91/filecore/pkg/nodeid"
)

// Invalidator is the subset of *engine.Engine the Watcher needs. Engine
// satisfies it directly; the interface exists so this package doesn't need
// to import pkg/engine.
type Invalidator interface {
	Invalidate(node nodeid.NodeId)
}

// Watcher recursively watches a root directory and invalidates the
// registry NodeId of every directory that changes.
type Watcher struct {
	fsw  *fsnotify.Watcher
	root string
	inv  Invalidator
}

// New creates a Watcher rooted at root. It adds a watch on root and every
// subdirectory found at construction time; directories created later are
// picked up as their parent's Create event arrives.
func New(root string, inv Invalidator) (*Watcher, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &os.PathError{Op: "watch", Path: root, Err: os.ErrInvalid}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{fsw: fsw, root: root, inv: inv}
	if err := w.addTree(root); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// addTree walks dir and adds a watch on every directory found, including
// dir itself.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if err := w.fsw.Add(path); err != nil {
				logger.Warn("watch: failed to add directory watch", "path", path, "error", err)
			}
		}
		return nil
	})
}

// Run consumes filesystem events until ctx is cancelled, invalidating the
// NodeId of the directory that contains each changed path (its listing
// changed) and, for create/remove/rename, the NodeId of the changed path
// itself.
func (w *Watcher) Run(ctx context.Context) {
	defer w.fsw.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("watch: fsnotify error", "error", err)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	dir := filepath.Dir(ev.Name)
	w.inv.Invalidate(nodeid.FromPath(dir))

	if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
		if ev.Op&fsnotify.Create != 0 {
			if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
				_ = w.addTree(ev.Name)
			}
		}
		w.inv.Invalidate(nodeid.FromPath(ev.Name))
	}
}
