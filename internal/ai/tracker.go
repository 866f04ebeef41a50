package ai

import (
	"context"
	"sync"
)

// Tracker keys in-flight advisory requests by task id. Starting a new
// request for a task cancels the previous one, and an edit to a task
// can cancel its pending suggestion, so a stale result can never land
// on top of a newer write.
type Tracker struct {
	mu       sync.Mutex
	inflight map[string]context.CancelFunc
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{inflight: make(map[string]context.CancelFunc)}
}

// Begin registers a request for the task id and returns a context that
// is cancelled when the request is superseded. Any prior in-flight
// request for the same id is cancelled.
func (t *Tracker) Begin(ctx context.Context, taskID string) context.Context {
	ctx, cancel := context.WithCancel(ctx)

	t.mu.Lock()
	if prev, ok := t.inflight[taskID]; ok {
		prev()
	}
	t.inflight[taskID] = cancel
	t.mu.Unlock()

	return ctx
}

// End clears the in-flight entry for the task id after completion.
func (t *Tracker) End(taskID string) {
	t.mu.Lock()
	if cancel, ok := t.inflight[taskID]; ok {
		cancel()
		delete(t.inflight, taskID)
	}
	t.mu.Unlock()
}

// Cancel aborts any in-flight request for the task id. Edit paths call
// this before writing so a superseded suggestion cannot race the edit.
func (t *Tracker) Cancel(taskID string) {
	t.mu.Lock()
	if cancel, ok := t.inflight[taskID]; ok {
		cancel()
		delete(t.inflight, taskID)
	}
	t.mu.Unlock()
}

// Pending reports whether a request is in flight for the task id.
func (t *Tracker) Pending(taskID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.inflight[taskID]
	return ok
}
