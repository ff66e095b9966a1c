package navstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/filecore/pkg/nodeid"
)

func nid(path string) nodeid.NodeId {
	return nodeid.FromPath(path)
}

func TestBackForwardRoundTrip(t *testing.T) {
	s := New(0)
	s.Navigate(nid("/a"))
	s.Navigate(nid("/b"))
	s.Navigate(nid("/c"))

	_, ok := s.Back()
	require.True(t, ok)
	cur, ok := s.Back()
	require.True(t, ok)
	assert.Equal(t, nid("/a"), cur)
	assert.False(t, s.CanBack())
	assert.True(t, s.CanForward())

	cur, ok = s.Forward()
	require.True(t, ok)
	assert.Equal(t, nid("/b"), cur)
}

func TestNavigateTruncatesForwardHistory(t *testing.T) {
	s := New(0)
	s.Navigate(nid("/a"))
	s.Navigate(nid("/b"))
	s.Navigate(nid("/c"))
	s.Back()
	s.Back()

	s.Navigate(nid("/d"))

	assert.Equal(t, []nodeid.NodeId{nid("/a"), nid("/d")}, s.History)
	assert.False(t, s.CanForward())
	cur, _ := s.Current()
	assert.Equal(t, nid("/d"), cur)
}

func TestBackAtOldestIsNoop(t *testing.T) {
	s := New(0)
	s.Navigate(nid("/a"))

	_, ok := s.Back()
	assert.False(t, ok)
	cur, _ := s.Current()
	assert.Equal(t, nid("/a"), cur)
}

func TestForwardAtNewestIsNoop(t *testing.T) {
	s := New(0)
	s.Navigate(nid("/a"))

	_, ok := s.Forward()
	assert.False(t, ok)
}

func TestHistoryEvictsOldestAtCapacity(t *testing.T) {
	s := New(2)
	s.Navigate(nid("/a"))
	s.Navigate(nid("/b"))
	s.Navigate(nid("/c"))

	assert.Len(t, s.History, 2)
	assert.Equal(t, []nodeid.NodeId{nid("/b"), nid("/c")}, s.History)
}

func TestCanBackCanForwardMatchPredicates(t *testing.T) {
	s := New(0)
	assert.False(t, s.CanBack())
	assert.False(t, s.CanForward())

	s.Navigate(nid("/a"))
	s.Navigate(nid("/b"))
	assert.True(t, s.CanBack())
	assert.False(t, s.CanForward())

	s.Back()
	assert.False(t, s.CanBack())
	assert.True(t, s.CanForward())
}

func TestSetSelectedUnions(t *testing.T) {
	s := New(0)
	s.SetSelected([]nodeid.NodeId{nid("/a"), nid("/b")})
	s.SetSelected([]nodeid.NodeId{nid("/b"), nid("/c")})

	assert.Len(t, s.Selected, 3)
}
