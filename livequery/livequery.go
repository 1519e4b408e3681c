// Package livequery keeps a view's query result fresh: the query runs once
// on subscribe and again after every write that touches one of its dependent
// tables, without the view re-issuing it manually. Re-runs coalesce, so a
// burst of writes yields one delivery computed from state at least as new as
// the last write; a superseded result that was never read is replaced, never
// delivered late.
package livequery

import (
	"context"
	"sync"

	"github.com/brunakoch/auto-estetica-agenda/store"
)

// Result is one delivery to the subscriber. A failing query delivers its
// error once and the subscription keeps observing future writes.
type Result[T any] struct {
	Value T
	Err   error
}

// Subscription is a live query owned by a single view. Read deliveries from
// Updates and call Close on teardown.
type Subscription[T any] struct {
	mu      sync.Mutex
	closed  bool
	updates chan Result[T]
	done    chan struct{}
	watch   *store.TableWatch
}

// Watch subscribes query to writes on the given tables. The initial result
// is computed synchronously and waits in Updates before Watch returns.
// Cancelling ctx tears the subscription down the same way Close does.
func Watch[T any](ctx context.Context, n *store.Notifier, query func(context.Context) (T, error), tables ...string) *Subscription[T] {
	s := &Subscription[T]{
		updates: make(chan Result[T], 1),
		done:    make(chan struct{}),
		watch:   n.Subscribe(tables...),
	}

	value, err := query(ctx)
	s.deliver(Result[T]{Value: value, Err: err})

	go s.run(ctx, query)
	return s
}

// Updates delivers the freshest result. An unread stale result is replaced
// in place when a newer one arrives (last write wins).
func (s *Subscription[T]) Updates() <-chan Result[T] {
	return s.updates
}

// Close stops the subscription. It is synchronous and idempotent; once it
// returns, no further result is delivered even if a re-run is in flight.
func (s *Subscription[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.watch.Close()
	close(s.done)
}

func (s *Subscription[T]) run(ctx context.Context, query func(context.Context) (T, error)) {
	for {
		select {
		case <-s.done:
			return
		case <-ctx.Done():
			s.Close()
			return
		case <-s.watch.Changes():
			value, err := query(ctx)
			s.deliver(Result[T]{Value: value, Err: err})
		}
	}
}

// deliver holds the same lock Close takes, so a result can never land in
// updates once Close has returned.
func (s *Subscription[T]) deliver(r Result[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	// Drop an unread stale result so only the freshest one is observable.
	select {
	case <-s.updates:
	default:
	}
	// updates has capacity one and deliver is the sole sender; after the
	// drain above the send cannot block.
	s.updates <- r
}
