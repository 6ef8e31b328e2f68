// Package search is the reference implementation of the list pages'
// live-search contract: a trigger per keystroke, a fixed quiet period before
// any request is issued, and a generation counter so a response from a
// superseded request can never overwrite a newer one. The browser-side copy
// in web/static/js/app.js mirrors this behavior and reads its quiet period
// from DefaultDelay via the data-busca-delay attribute; changes to the
// contract land here first, backed by this package's tests.
package search

import (
	"context"
	"sync"
	"time"
)

// DefaultDelay is the quiet period between the last keystroke and the
// dispatched request. The embedded page scripts follow the same constant.
const DefaultDelay = 500 * time.Millisecond

// Debouncer coalesces rapid triggers. Each Trigger restarts the delay timer;
// when the timer fires, the most recent query is handed to the dispatch
// function. Triggers superseded before the timer fires never dispatch.
type Debouncer struct {
	mu       sync.Mutex
	delay    time.Duration
	timer    *time.Timer
	dispatch func(query string)
	stopped  bool
}

// NewDebouncer builds a Debouncer with the given quiet period. A
// non-positive delay falls back to DefaultDelay.
func NewDebouncer(delay time.Duration, dispatch func(query string)) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay, dispatch: dispatch}
}

// Trigger records a keystroke. The pending dispatch, if any, is discarded
// and a new one is scheduled for delay from now.
func (d *Debouncer) Trigger(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		stopped := d.stopped
		d.mu.Unlock()
		if !stopped {
			d.dispatch(query)
		}
	})
}

// Stop cancels any pending dispatch and disables the debouncer.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Session combines a Debouncer with a generation-counted fetch. Every
// dispatched fetch carries a monotonically increasing generation; a result
// is delivered only while no newer fetch has been issued, closing the
// stale-response ordering race of the timer-only scheme.
type Session[T any] struct {
	mu        sync.Mutex
	gen       uint64
	ctx       context.Context
	debouncer *Debouncer
	fetch     func(ctx context.Context, query string) (T, error)
	deliver   func(query string, result T, err error)
}

// NewSession builds a live-search session. fetch runs on its own goroutine
// per dispatched query; deliver is invoked at most once per dispatch, and
// never for a generation that has been superseded.
func NewSession[T any](
	ctx context.Context,
	delay time.Duration,
	fetch func(ctx context.Context, query string) (T, error),
	deliver func(query string, result T, err error),
) *Session[T] {
	s := &Session[T]{ctx: ctx, fetch: fetch, deliver: deliver}
	s.debouncer = NewDebouncer(delay, s.issue)
	return s
}

// Query records a keystroke.
func (s *Session[T]) Query(q string) {
	s.debouncer.Trigger(q)
}

// Close cancels any pending dispatch. In-flight fetches finish but their
// results are dropped.
func (s *Session[T]) Close() {
	s.debouncer.Stop()
	s.mu.Lock()
	s.gen++
	s.mu.Unlock()
}

func (s *Session[T]) issue(query string) {
	s.mu.Lock()
	s.gen++
	seq := s.gen
	s.mu.Unlock()

	go func() {
		result, err := s.fetch(s.ctx, query)

		s.mu.Lock()
		stale := seq != s.gen
		s.mu.Unlock()
		if stale {
			return
		}
		s.deliver(query, result, err)
	}()
}
