package bus

import (
	"context"
	"testing"
	"time"

	"github.com/marmos91/filecore/pkg/corerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingMsg struct{ N int }
type pongMsg struct{ N int }

func TestRegisterSubscribePublish(t *testing.T) {
	b := New()
	Register[pingMsg](b, 4)

	rx, ok := Subscribe[pingMsg](b)
	require.True(t, ok)

	require.NoError(t, Publish(b, pingMsg{N: 1}))

	select {
	case msg := <-rx:
		assert.Equal(t, 1, msg.N)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestSubscribeUnregisteredType(t *testing.T) {
	b := New()
	_, ok := Subscribe[pongMsg](b)
	assert.False(t, ok)
}

func TestPublishUnregisteredTypeFails(t *testing.T) {
	b := New()
	err := Publish(b, pongMsg{N: 1})
	require.Error(t, err)
	var ce *corerr.CoreError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, corerr.ChannelClosed, ce.Code)
}

func TestRegisterIsIdempotent(t *testing.T) {
	b := New()
	Register[pingMsg](b, 2)
	Register[pingMsg](b, 99) // should not replace the first channel

	require.NoError(t, Publish(b, pingMsg{N: 1}))
	require.NoError(t, Publish(b, pingMsg{N: 2}))

	rx, _ := Subscribe[pingMsg](b)
	assert.Equal(t, 2, len(rx))
}

func TestCompetingSubscribersEachGetDistinctMessages(t *testing.T) {
	b := New()
	Register[pingMsg](b, 4)
	rx1, _ := Subscribe[pingMsg](b)
	rx2, _ := Subscribe[pingMsg](b)

	require.NoError(t, Publish(b, pingMsg{N: 1}))
	require.NoError(t, Publish(b, pingMsg{N: 2}))

	seen := map[int]bool{}
	seen[(<-rx1).N] = true
	seen[(<-rx2).N] = true
	assert.True(t, seen[1])
	assert.True(t, seen[2])
}

func TestCloseCausesChannelErrorOnPublish(t *testing.T) {
	b := New()
	Register[pingMsg](b, 1)
	Close[pingMsg](b)

	err := Publish(b, pingMsg{N: 1})
	require.Error(t, err)
	var ce *corerr.CoreError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, corerr.ChannelError, ce.Code)
}

func TestPublishCtxAbortsOnCancellation(t *testing.T) {
	b := New()
	Register[pingMsg](b, 1)
	require.NoError(t, Publish(b, pingMsg{N: 1})) // fill the buffer

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := PublishCtx(ctx, b, pingMsg{N: 2})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
