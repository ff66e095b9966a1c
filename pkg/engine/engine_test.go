package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/filecore/pkg/command"
	"github.com/marmos91/filecore/pkg/event"
	"github.com/marmos91/filecore/pkg/fsprovider"
	"github.com/marmos91/filecore/pkg/node"
	"github.com/marmos91/filecore/pkg/session"
)

type stubProvider struct {
	listings map[string][]node.FileNode
}

func (s *stubProvider) Scheme() string { return "stub" }
func (s *stubProvider) Capabilities() fsprovider.Capabilities {
	return fsprovider.Capabilities{Read: true}
}
func (s *stubProvider) List(ctx context.Context, path string) ([]node.FileNode, error) {
	return s.listings[path], nil
}
func (s *stubProvider) Read(ctx context.Context, path string) ([]byte, error) { return nil, nil }
func (s *stubProvider) ReadRange(ctx context.Context, path string, start, length int64) ([]byte, error) {
	return nil, nil
}
func (s *stubProvider) Exists(ctx context.Context, path string) (bool, error) { return true, nil }
func (s *stubProvider) Metadata(ctx context.Context, path string) (node.FileNode, error) {
	return node.FileNode{}, nil
}

func TestEngineHandshakeNavigateDeliversDirectoryLoaded(t *testing.T) {
	p := &stubProvider{listings: map[string][]node.FileNode{
		"/root": {{Name: "child", CanonicalPath: "/root/child", Kind: node.KindFile}},
	}}
	e := New(p, Config{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go e.Run(ctx)

	sess := session.Next()
	events := e.Subscribe(sess)

	e.Dispatch(command.Handshake{Session: sess})
	e.Dispatch(command.Navigate{Session: sess, Path: "/root"})

	var created, loaded bool
	deadline := time.After(time.Second)
	for !loaded {
		select {
		case ev := <-events:
			switch v := ev.(type) {
			case event.SessionCreated:
				created = true
			case event.DirectoryLoaded:
				loaded = true
				assert.Equal(t, "/root", v.Path)
			}
		case <-deadline:
			t.Fatal("timed out waiting for DirectoryLoaded")
		}
	}
	assert.True(t, created)
}

func TestEngineDestroySessionStopsRouting(t *testing.T) {
	p := &stubProvider{listings: map[string][]node.FileNode{}}
	e := New(p, Config{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go e.Run(ctx)

	sess := session.Next()
	e.Subscribe(sess)
	e.Dispatch(command.Handshake{Session: sess})
	e.Dispatch(command.DestroySession{Session: sess})

	require.Eventually(t, func() bool {
		for _, s := range e.Sessions().Active() {
			if s == sess {
				return false
			}
		}
		return true
	}, time.Second, 10*time.Millisecond)
}
