package navigator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/filecore/pkg/event"
	"github.com/marmos91/filecore/pkg/nodeid"
	"github.com/marmos91/filecore/pkg/registry"
	"github.com/marmos91/filecore/pkg/scanner"
	"github.com/marmos91/filecore/pkg/session"
)

func newTestNavigator(t *testing.T) (*Navigator, chan scanner.Command, chan event.Event) {
	t.Helper()
	reg := registry.New()
	scanOut := make(chan scanner.Command, 32)
	events := make(chan event.Event, 32)
	n := New(reg, scanOut, events, 0, 0)
	go n.Run()
	return n, scanOut, events
}

func drainScan(t *testing.T, ch chan scanner.Command) scanner.ScanNode {
	t.Helper()
	select {
	case c := <-ch:
		sn, ok := c.(scanner.ScanNode)
		require.True(t, ok)
		return sn
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for scan trigger")
		return scanner.ScanNode{}
	}
}

func TestBasicNavigationTriggersScan(t *testing.T) {
	n, scanOut, _ := newTestNavigator(t)
	sess := session.Next()

	n.Commands() <- NavigateToPath{Session: sess, Path: "/tmp/a"}

	sn := drainScan(t, scanOut)
	assert.Equal(t, sess, sn.Session)
	assert.Equal(t, nodeid.FromPath("/tmp/a"), sn.Node)
}

func TestBackForwardScenario(t *testing.T) {
	n, scanOut, _ := newTestNavigator(t)
	sess := session.Next()

	n.Commands() <- NavigateToPath{Session: sess, Path: "/a"}
	drainScan(t, scanOut)
	n.Commands() <- NavigateToPath{Session: sess, Path: "/b"}
	drainScan(t, scanOut)
	n.Commands() <- NavigateToPath{Session: sess, Path: "/c"}
	drainScan(t, scanOut)

	n.Commands() <- Back{Session: sess}
	drainScan(t, scanOut)
	n.Commands() <- Back{Session: sess}
	backTo := drainScan(t, scanOut)
	assert.Equal(t, nodeid.FromPath("/a"), backTo.Node)

	n.Commands() <- Forward{Session: sess}
	fwdTo := drainScan(t, scanOut)
	assert.Equal(t, nodeid.FromPath("/b"), fwdTo.Node)
}

func TestForwardHistoryTruncation(t *testing.T) {
	n, scanOut, events := newTestNavigator(t)
	sess := session.Next()

	n.Commands() <- NavigateToPath{Session: sess, Path: "/a"}
	drainScan(t, scanOut)
	n.Commands() <- NavigateToPath{Session: sess, Path: "/b"}
	drainScan(t, scanOut)
	n.Commands() <- NavigateToPath{Session: sess, Path: "/c"}
	drainScan(t, scanOut)
	n.Commands() <- Back{Session: sess}
	drainScan(t, scanOut)
	n.Commands() <- Back{Session: sess}
	drainScan(t, scanOut)

	n.Commands() <- NavigateToPath{Session: sess, Path: "/d"}
	drainScan(t, scanOut)

	n.Commands() <- GetState{Session: sess}
	// Navigating to /d dropped /b and /c, so history is [/a, /d] and
	// Forward now fails. GetState and Forward are handled concurrently, so
	// their events may arrive in either order.
	n.Commands() <- Forward{Session: sess}

	var sawState, sawError bool
	for i := 0; i < 2; i++ {
		select {
		case e := <-events:
			switch v := e.(type) {
			case event.CurrentNavigateState:
				sawState = true
				require.NotNil(t, v.State.Current)
				assert.Equal(t, nodeid.FromPath("/d"), *v.State.Current)
				assert.True(t, v.State.CanBack)
				assert.False(t, v.State.CanForward)
			case event.Error:
				sawError = true
				assert.True(t, v.Recoverable)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for events")
		}
	}
	assert.True(t, sawState)
	assert.True(t, sawError)
}

func TestBackAtOldestEmitsRecoverableError(t *testing.T) {
	n, scanOut, events := newTestNavigator(t)
	sess := session.Next()

	n.Commands() <- NavigateToPath{Session: sess, Path: "/a"}
	drainScan(t, scanOut)

	n.Commands() <- Back{Session: sess}

	select {
	case e := <-events:
		errEvt, ok := e.(event.Error)
		require.True(t, ok)
		assert.True(t, errEvt.Recoverable)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for Error event")
	}
}

func TestRefreshWithNoCurrentEmitsRecoverableError(t *testing.T) {
	n, _, events := newTestNavigator(t)
	sess := session.Next()

	n.Commands() <- Refresh{Session: sess}

	select {
	case e := <-events:
		errEvt, ok := e.(event.Error)
		require.True(t, ok)
		assert.True(t, errEvt.Recoverable)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for Error event")
	}
}

func TestGetStateReflectsHistoryPredicates(t *testing.T) {
	n, scanOut, events := newTestNavigator(t)
	sess := session.Next()

	n.Commands() <- NavigateToPath{Session: sess, Path: "/a"}
	drainScan(t, scanOut)

	n.Commands() <- GetState{Session: sess}

	select {
	case e := <-events:
		st, ok := e.(event.CurrentNavigateState)
		require.True(t, ok)
		require.NotNil(t, st.State.Current)
		assert.False(t, st.State.CanBack)
		assert.False(t, st.State.CanForward)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for CurrentNavigateState")
	}
}

func TestInvalidateEmitsFsChangedAndTriggersRescan(t *testing.T) {
	n, scanOut, events := newTestNavigator(t)
	sess := session.Next()

	n.Commands() <- NavigateToPath{Session: sess, Path: "/a"}
	sn := drainScan(t, scanOut)

	n.Commands() <- Invalidate{Node: sn.Node}

	select {
	case e := <-events:
		changed, ok := e.(event.FsChanged)
		require.True(t, ok)
		assert.Equal(t, sn.Node, changed.Node)
		assert.Equal(t, sess, changed.Session)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for FsChanged event")
	}

	rescan := drainScan(t, scanOut)
	assert.Equal(t, sn.Node, rescan.Node)
}

func TestInvalidateIsNoopWhenNodeNotOpen(t *testing.T) {
	n, _, events := newTestNavigator(t)

	n.Commands() <- Invalidate{Node: nodeid.FromPath("/never-opened")}

	select {
	case e := <-events:
		t.Fatalf("expected no event, got %v", event.Name(e))
	case <-time.After(50 * time.Millisecond):
	}
}

func TestNewSessionIsIdempotent(t *testing.T) {
	n, scanOut, _ := newTestNavigator(t)
	sess := session.Next()

	n.Commands() <- NewSession{Session: sess}
	n.Commands() <- NewSession{Session: sess}
	time.Sleep(20 * time.Millisecond)
	// No crash, no duplicate-state divergence: a subsequent Navigate still
	// works correctly.
	n.Commands() <- NavigateToPath{Session: sess, Path: "/x"}
	sn := drainScan(t, scanOut)
	assert.Equal(t, sess, sn.Session)
	assert.Equal(t, nodeid.FromPath("/x"), sn.Node)
}
