// Package blockingqueue wraps cancelqueue.Queue with locking and a blocking,
// context-aware Take.
package blockingqueue

import (
	"context"
	"errors"
	"sync"

	base "github.com/xyhelper/cancelqueue"
)

// Queue is a blocking, concurrency-safe FIFO with lazy removal built on
// cancelqueue. Values marked by RemoveMatching are never handed to a taker.
//
// All methods are safe for concurrent use by multiple goroutines.
type Queue[T any] struct {
	mu sync.Mutex
	cv *sync.Cond
	q  *base.Queue[T]
}

// New creates a new blocking queue.
func New[T any]() *Queue[T] {
	b := &Queue[T]{q: base.New[T]()}
	b.cv = sync.NewCond(&b.mu)
	return b
}

// NewWithCapacity creates a new blocking queue with initial capacity.
func NewWithCapacity[T any](capacity int) *Queue[T] {
	b := &Queue[T]{q: base.NewWithCapacity[T](capacity)}
	b.cv = sync.NewCond(&b.mu)
	return b
}

// Put appends v to the tail and wakes waiters.
func (b *Queue[T]) Put(v T) {
	b.mu.Lock()
	b.q.Enqueue(v)
	b.cv.Broadcast()
	b.mu.Unlock()
}

// PutMany appends items in order. Broadcasts once if any item is given.
func (b *Queue[T]) PutMany(items ...T) {
	if len(items) == 0 {
		return
	}
	b.mu.Lock()
	b.q.EnqueueMany(items...)
	b.cv.Broadcast()
	b.mu.Unlock()
}

// TryTake removes and returns the first live value without blocking.
// ok is false if no live value remains.
func (b *Queue[T]) TryTake() (v T, ok bool) {
	b.mu.Lock()
	v, ok = b.q.TryDequeue()
	b.mu.Unlock()
	return
}

// Take blocks until a live value is available or ctx is done. On success
// returns (value, nil). On cancellation returns the zero value and ctx.Err().
func (b *Queue[T]) Take(ctx context.Context) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	b.mu.Lock()
	// Fast path
	if v, ok := b.q.TryDequeue(); ok {
		b.mu.Unlock()
		return v, nil
	}
	if err := ctx.Err(); err != nil {
		b.mu.Unlock()
		var zero T
		return zero, err
	}
	for {
		// The watcher broadcasts on cancellation to wake Wait.
		done := make(chan struct{})
		go func() {
			select {
			case <-ctx.Done():
				b.mu.Lock()
				b.cv.Broadcast()
				b.mu.Unlock()
			case <-done:
			}
		}()

		b.cv.Wait() // releases and re-acquires b.mu
		close(done)

		// Everything put since the last wakeup may already be removed, so
		// only a live value ends the wait.
		if v, ok := b.q.TryDequeue(); ok {
			b.mu.Unlock()
			return v, nil
		}
		if err := ctx.Err(); err != nil {
			b.mu.Unlock()
			var zero T
			return zero, err
		}
	}
}

// RemoveMatching marks every queued value matching pred as removed and
// returns how many were newly marked. pred runs with the lock held and must
// not call methods on b.
func (b *Queue[T]) RemoveMatching(pred func(T) bool) int {
	b.mu.Lock()
	n := b.q.RemoveMatching(pred)
	b.mu.Unlock()
	return n
}

// Peek returns the first live value without removing it. ok is false when
// no live value remains.
func (b *Queue[T]) Peek() (v T, ok bool) {
	b.mu.Lock()
	v, ok = b.q.Peek()
	b.mu.Unlock()
	return
}

// Len returns the number of live values currently queued.
func (b *Queue[T]) Len() int {
	b.mu.Lock()
	n := b.q.Len()
	b.mu.Unlock()
	return n
}

// Removed returns the number of removed entries not yet discarded.
func (b *Queue[T]) Removed() int {
	b.mu.Lock()
	n := b.q.Removed()
	b.mu.Unlock()
	return n
}

// IsEmpty reports whether no live value remains.
func (b *Queue[T]) IsEmpty() bool { return b.Len() == 0 }

// Compact discards removed entries now and returns how many were dropped.
func (b *Queue[T]) Compact() int {
	b.mu.Lock()
	n := b.q.Compact()
	b.mu.Unlock()
	return n
}

// Clear discards every entry.
func (b *Queue[T]) Clear() {
	b.mu.Lock()
	b.q.Clear()
	b.mu.Unlock()
}

// ErrCanceled is returned by Take when the context is canceled.
var ErrCanceled = context.Canceled

// ErrDeadlineExceeded is returned by Take when the context deadline expires.
var ErrDeadlineExceeded = context.DeadlineExceeded

// IsContextError reports whether err equals context.Canceled or context.DeadlineExceeded.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
