package usecase

import (
	"context"
	"sync"
	"time"
)

// Debouncer coalesces bursts of calls that share a key (one typing session).
//
// Semantics:
//   - Each call waits for the debounce window before running.
//   - A newer call for the same key cancels the older one, whether it is still waiting
//     or already running. The older call reports superseded=true.
//   - Calls with an empty key run immediately.
type Debouncer struct {
	wait time.Duration

	mu      sync.Mutex
	seq     uint64
	pending map[string]debounceEntry
}

type debounceEntry struct {
	seq    uint64
	cancel context.CancelFunc
}

func NewDebouncer(wait time.Duration) *Debouncer {
	return &Debouncer{wait: wait, pending: make(map[string]debounceEntry)}
}

// Do runs fn after the window unless a newer call for key arrives first.
// The context passed to fn is cancelled when the call is superseded.
func (d *Debouncer) Do(ctx context.Context, key string, fn func(ctx context.Context) error) (superseded bool, err error) {
	if key == "" || d.wait <= 0 {
		return false, fn(ctx)
	}

	callCtx, cancel := context.WithCancel(ctx)
	seq := d.register(key, cancel)
	defer d.release(key, seq, cancel)

	timer := time.NewTimer(d.wait)
	defer timer.Stop()

	select {
	case <-callCtx.Done():
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return true, nil
	case <-timer.C:
	}

	err = fn(callCtx)
	if callCtx.Err() != nil && ctx.Err() == nil {
		return true, nil
	}
	return false, err
}

// Cancel drops the pending or in-flight call for key, if any.
func (d *Debouncer) Cancel(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if e, ok := d.pending[key]; ok {
		e.cancel()
		delete(d.pending, key)
	}
}

func (d *Debouncer) register(key string, cancel context.CancelFunc) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if prev, ok := d.pending[key]; ok {
		prev.cancel()
	}
	d.pending[key] = debounceEntry{seq: d.seq, cancel: cancel}
	return d.seq
}

func (d *Debouncer) release(key string, seq uint64, cancel context.CancelFunc) {
	cancel()
	d.mu.Lock()
	defer d.mu.Unlock()
	if e, ok := d.pending[key]; ok && e.seq == seq {
		delete(d.pending, key)
	}
}
