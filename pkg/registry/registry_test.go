package registry

import (
	"sync"
	"testing"

	"github.com/marmos91/filecore/pkg/nodeid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterResolveRoundTrip(t *testing.T) {
	r := New()
	id := r.Register("/tmp/a/b.txt")

	path, ok := r.Resolve(id)
	require.True(t, ok)
	assert.Equal(t, nodeid.Canonicalize("/tmp/a/b.txt"), path)
}

func TestRegisterIdempotent(t *testing.T) {
	r := New()
	id1 := r.Register("/tmp/a")
	id2 := r.Register("/tmp/a")
	assert.Equal(t, id1, id2)
	assert.Equal(t, 1, r.Len())
}

func TestRegisterBatchPreservesOrder(t *testing.T) {
	r := New()
	paths := []string{"/tmp/a", "/tmp/b", "/tmp/c"}
	ids := r.RegisterBatch(paths)
	require.Len(t, ids, 3)
	for i, p := range paths {
		assert.Equal(t, nodeid.FromPath(p), ids[i])
	}
}

func TestResolveBatchAlignsWithInput(t *testing.T) {
	r := New()
	a := r.Register("/tmp/a")
	missing := nodeid.FromPath("/does/not/exist")

	paths := r.ResolveBatch([]nodeid.NodeId{a, missing})
	assert.Equal(t, nodeid.Canonicalize("/tmp/a"), paths[0])
	assert.Equal(t, "", paths[1])
}

func TestGetIDOnlyReturnsRegistered(t *testing.T) {
	r := New()
	_, ok := r.GetID("/tmp/unregistered")
	assert.False(t, ok)

	r.Register("/tmp/a")
	id, ok := r.GetID("/tmp/a")
	require.True(t, ok)
	assert.Equal(t, nodeid.FromPath("/tmp/a"), id)
}

func TestUnregister(t *testing.T) {
	r := New()
	id := r.Register("/tmp/a")

	path, ok := r.Unregister(id)
	require.True(t, ok)
	assert.Equal(t, nodeid.Canonicalize("/tmp/a"), path)

	_, ok = r.Resolve(id)
	assert.False(t, ok)
	assert.True(t, r.IsEmpty())
}

func TestUnregisterAbsent(t *testing.T) {
	r := New()
	_, ok := r.Unregister(nodeid.FromPath("/nope"))
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	r := New()
	r.Register("/tmp/a")
	r.Register("/tmp/b")
	r.Clear()
	assert.Equal(t, 0, r.Len())
	assert.True(t, r.IsEmpty())
}

func TestParent(t *testing.T) {
	r := New()
	child := r.Register("/tmp/a/b")

	parent, ok := r.Parent(child)
	require.True(t, ok)
	path, _ := r.Resolve(parent)
	assert.Equal(t, nodeid.Canonicalize("/tmp/a"), path)
}

func TestParentAtRootHasNone(t *testing.T) {
	r := New()
	root := r.Register("/")
	_, ok := r.Parent(root)
	assert.False(t, ok)
}

func TestParentUnregisteredNode(t *testing.T) {
	r := New()
	_, ok := r.Parent(nodeid.FromPath("/unregistered"))
	assert.False(t, ok)
}

func TestConcurrentReadersWriters(t *testing.T) {
	r := New()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			r.Register("/tmp/concurrent")
		}(i)
		go func(i int) {
			defer wg.Done()
			r.Resolve(nodeid.FromPath("/tmp/concurrent"))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, r.Len())
}
