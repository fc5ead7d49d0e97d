package resilience

import (
	"context"
	stderrors "errors"
	"sync"
)

// SingleFlight collapses concurrent fetches for the same page key into one
// backend round trip. List screens cancel superseded fetches, so callers
// carry their own context: a joiner stops waiting when its context ends, and
// a winner that was canceled never poisons joiners still interested in the
// key.
type SingleFlight struct {
	mu    sync.Mutex
	calls map[string]*flightCall
}

type flightCall struct {
	done chan struct{}
	val  any
	err  error
}

// Do runs fn once per key across concurrent callers and reports whether the
// result came from another caller's round trip. A joiner whose ctx ends while
// waiting returns ctx.Err(). When the winning call failed with its own
// cancellation, joiners that are still live rerun fn instead of inheriting
// the stale error.
func (g *SingleFlight) Do(ctx context.Context, key string, fn func() (any, error)) (any, error, bool) {
	for {
		g.mu.Lock()
		if g.calls == nil {
			g.calls = make(map[string]*flightCall)
		}
		if c, ok := g.calls[key]; ok {
			g.mu.Unlock()
			select {
			case <-ctx.Done():
				return nil, ctx.Err(), true
			case <-c.done:
			}
			if isCancellation(c.err) && ctx.Err() == nil {
				continue
			}
			return c.val, c.err, true
		}

		c := &flightCall{done: make(chan struct{})}
		g.calls[key] = c
		g.mu.Unlock()

		c.val, c.err = fn()

		// Drop the key before waking joiners so a retrying joiner starts a
		// fresh call instead of rejoining this one.
		g.mu.Lock()
		delete(g.calls, key)
		g.mu.Unlock()
		close(c.done)

		return c.val, c.err, false
	}
}

func isCancellation(err error) bool {
	return stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded)
}
