// Package registry provides the NodeRegistry, a stable NodeId-to-path
// mapping shared by every actor in the control plane. It has no fallible
// operations: absent keys return the zero value, never an error.
package registry

import (
	"sync"

	"github.com/marmos91/filecore/pkg/nodeid"
)

// NodeRegistry is a concurrent NodeId<->canonical-path mapping. It grows on
// registration; entries are removed only by explicit Unregister or Clear.
// The zero value is not usable; construct with New.
type NodeRegistry struct {
	mu     sync.RWMutex
	toPath map[nodeid.NodeId]string
	toID   map[string]nodeid.NodeId
}

// New creates an empty NodeRegistry.
func New() *NodeRegistry {
	return &NodeRegistry{
		toPath: make(map[nodeid.NodeId]string),
		toID:   make(map[string]nodeid.NodeId),
	}
}

// Register hashes the canonical path, inserts (NodeId, path) if absent, and
// returns the NodeId. Calling Register twice with the same path is a
// no-op the second time and returns the same NodeId both times.
func (r *NodeRegistry) Register(path string) nodeid.NodeId {
	canonical := nodeid.Canonicalize(path)
	id := nodeid.FromPath(path)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.toPath[id] = canonical
	r.toID[canonical] = id
	return id
}

// RegisterBatch registers many paths at once. The returned slice of
// NodeIds is aligned with paths by index.
func (r *NodeRegistry) RegisterBatch(paths []string) []nodeid.NodeId {
	ids := make([]nodeid.NodeId, len(paths))

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, path := range paths {
		canonical := nodeid.Canonicalize(path)
		id := nodeid.FromPath(path)
		r.toPath[id] = canonical
		r.toID[canonical] = id
		ids[i] = id
	}
	return ids
}

// Resolve returns the path registered for id, and whether it was present.
func (r *NodeRegistry) Resolve(id nodeid.NodeId) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	path, ok := r.toPath[id]
	return path, ok
}

// ResolveBatch resolves many ids at once. The returned slice is aligned
// with ids by index; unresolved entries are "".
func (r *NodeRegistry) ResolveBatch(ids []nodeid.NodeId) []string {
	paths := make([]string, len(ids))

	r.mu.RLock()
	defer r.mu.RUnlock()
	for i, id := range ids {
		paths[i] = r.toPath[id]
	}
	return paths
}

// GetID returns the NodeId registered for path, and whether it was
// present. Unlike Register, it never inserts.
func (r *NodeRegistry) GetID(path string) (nodeid.NodeId, bool) {
	canonical := nodeid.Canonicalize(path)

	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.toID[canonical]
	return id, ok
}

// Unregister removes id from the registry and returns its path, if it was
// present.
func (r *NodeRegistry) Unregister(id nodeid.NodeId) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	path, ok := r.toPath[id]
	if !ok {
		return "", false
	}
	delete(r.toPath, id)
	delete(r.toID, path)
	return path, true
}

// Clear removes every entry from the registry.
func (r *NodeRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toPath = make(map[nodeid.NodeId]string)
	r.toID = make(map[string]nodeid.NodeId)
}

// Len returns the number of registered entries.
func (r *NodeRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.toPath)
}

// IsEmpty reports whether the registry has no entries.
func (r *NodeRegistry) IsEmpty() bool {
	return r.Len() == 0
}

// Parent resolves the parent path of id's registered path and returns its
// NodeId. Ok is false when id is unregistered, or its path is already a
// filesystem root (so it has no parent to navigate Up to).
func (r *NodeRegistry) Parent(id nodeid.NodeId) (nodeid.NodeId, bool) {
	path, ok := r.Resolve(id)
	if !ok {
		return nodeid.Zero, false
	}
	parent := parentOf(path)
	if parent == "" {
		return nodeid.Zero, false
	}
	return r.Register(parent), true
}
