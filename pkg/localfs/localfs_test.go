package localfs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/filecore/pkg/node"
)

func newTestProvider(t *testing.T) (*Provider, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello world"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	p, err := New(Config{Root: dir})
	require.NoError(t, err)
	return p, dir
}

func TestListReturnsChildrenWithExtensionsWithoutDot(t *testing.T) {
	p, dir := newTestProvider(t)
	entries, err := p.List(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	byName := map[string]node.FileNode{}
	for _, e := range entries {
		byName[e.Name] = e
	}

	txt := byName["a.txt"]
	assert.Equal(t, node.KindFile, txt.Kind)
	assert.Equal(t, "txt", txt.File.Extension)

	hidden := byName[".hidden"]
	assert.True(t, hidden.Meta.Hidden)
	assert.Equal(t, "", hidden.File.Extension)

	sub := byName["sub"]
	assert.Equal(t, node.KindDirectory, sub.Kind)
}

func TestReadReturnsFileContents(t *testing.T) {
	p, dir := newTestProvider(t)
	data, err := p.Read(context.Background(), filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))
}

func TestReadRangeReturnsSlice(t *testing.T) {
	p, dir := newTestProvider(t)
	data, err := p.ReadRange(context.Background(), filepath.Join(dir, "a.txt"), 6, 5)
	require.NoError(t, err)
	assert.Equal(t, "world", string(data))
}

func TestExistsReportsFalseForMissingPath(t *testing.T) {
	p, dir := newTestProvider(t)
	ok, err := p.Exists(context.Background(), filepath.Join(dir, "nope"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = p.Exists(context.Background(), filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestResolveRejectsPathEscapingRoot(t *testing.T) {
	p, dir := newTestProvider(t)
	_, err := p.List(context.Background(), filepath.Join(dir, "..", "..", "etc"))
	assert.Error(t, err)
}

func TestMetadataDescribesPathItself(t *testing.T) {
	p, dir := newTestProvider(t)
	n, err := p.Metadata(context.Background(), filepath.Join(dir, "sub"))
	require.NoError(t, err)
	assert.Equal(t, "sub", n.Name)
	assert.Equal(t, node.KindDirectory, n.Kind)
}
