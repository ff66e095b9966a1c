package scanner

import "sync/atomic"

// cancelToken is a shared, one-way boolean cell: once set, it never
// resets. Each outstanding scan owns exactly one; superseding a scan sets
// the previous owner's token.
type cancelToken struct {
	cancelled atomic.Bool
}

func newCancelToken() *cancelToken {
	return &cancelToken{}
}

func (t *cancelToken) cancel() {
	t.cancelled.Store(true)
}

func (t *cancelToken) isCancelled() bool {
	return t.cancelled.Load()
}
