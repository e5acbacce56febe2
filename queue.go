package cancelqueue

// entry pairs a queued value with its tombstone flag.
type entry[T any] struct {
	value   T
	removed bool
}

// Queue is a generic FIFO queue whose values can be removed lazily.
// RemoveMatching only flags entries; flagged entries are skipped and dropped
// by the dequeue that reaches them. The zero value is an empty queue ready for
// use. A Queue must not be copied after first use.
type Queue[T any] struct {
	data []entry[T]
	// head is the sequence number of data[0]. Every entry ever enqueued gets
	// the next sequence number, and entries leave only from the front, so
	// entry seq lives at data[seq-head] while it is still queued.
	head       uint64
	tombstones int
}

// New creates a new empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{
		data: make([]entry[T], 0),
	}
}

// NewWithCapacity creates a new queue with the given initial capacity.
// Capacity preallocates internal storage; behavior is otherwise identical to
// New.
func NewWithCapacity[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue[T]{
		data: make([]entry[T], 0, capacity),
	}
}

// Enqueue appends v to the tail. Amortized complexity: O(1).
func (q *Queue[T]) Enqueue(v T) {
	q.data = append(q.data, entry[T]{value: v})
}

// EnqueueMany appends items to the tail in the order given.
func (q *Queue[T]) EnqueueMany(items ...T) {
	for _, v := range items {
		q.data = append(q.data, entry[T]{value: v})
	}
}

// TryDequeue removes and returns the first value that has not been removed.
//
// Removed entries popped on the way are discarded. The second result is false
// when the queue runs out before a live value is found. Amortized complexity:
// O(1), each tombstone being paid for once.
func (q *Queue[T]) TryDequeue() (T, bool) {
	for len(q.data) > 0 {
		e := q.pop()
		if !e.removed {
			return e.value, true
		}
	}
	var zero T
	return zero, false
}

// Dequeue is like TryDequeue but returns ErrEmptyQueue when no live value
// remains.
func (q *Queue[T]) Dequeue() (T, error) {
	v, ok := q.TryDequeue()
	if !ok {
		return v, ErrEmptyQueue
	}
	return v, nil
}

// RemoveMatching marks every queued value for which pred returns true as
// removed, and returns how many entries it newly marked.
//
// The scan covers the entries present when the call starts. Matches are
// collected first and flagged afterwards, so values enqueued later, including
// by pred itself, are never marked. Entries already removed are not passed to
// pred again. Nothing is moved; removed entries are dropped by later dequeues.
// pred should be a pure function of its argument. Complexity: O(n).
func (q *Queue[T]) RemoveMatching(pred func(T) bool) int {
	snapshot, start := q.data, q.head
	var matched []uint64
	for i, e := range snapshot {
		if e.removed {
			continue
		}
		if pred(e.value) {
			matched = append(matched, start+uint64(i))
		}
	}

	flagged := 0
	for _, seq := range matched {
		// pred may have dequeued or cleared entries from under the scan.
		if seq < q.head || seq-q.head >= uint64(len(q.data)) {
			continue
		}
		e := &q.data[seq-q.head]
		if e.removed {
			continue
		}
		e.removed = true
		q.tombstones++
		flagged++
	}
	return flagged
}

// Peek returns the first live value without removing it.
// The second result is false when no live value remains. Complexity: O(k) in
// the number of tombstones at the front.
func (q *Queue[T]) Peek() (T, bool) {
	for _, e := range q.data {
		if !e.removed {
			return e.value, true
		}
	}
	var zero T
	return zero, false
}

// Len returns the number of live values, excluding removed entries that are
// still physically queued. Complexity: O(1).
func (q *Queue[T]) Len() int {
	return len(q.data) - q.tombstones
}

// Removed returns the number of removed entries not yet discarded.
func (q *Queue[T]) Removed() int {
	return q.tombstones
}

// IsEmpty reports whether no live value remains.
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Clear discards every entry, live or removed.
func (q *Queue[T]) Clear() {
	q.head += uint64(len(q.data))
	clear(q.data)
	q.data = q.data[:0]
	q.tombstones = 0
}

// Compact discards all removed entries now instead of waiting for dequeues to
// reach them, and returns how many were dropped. Order of live values is
// preserved. Complexity: O(n).
func (q *Queue[T]) Compact() int {
	dropped := q.tombstones
	if dropped == 0 {
		return 0
	}
	live := make([]entry[T], 0, len(q.data)-dropped)
	for _, e := range q.data {
		if !e.removed {
			live = append(live, e)
		}
	}
	// Renumber past every old sequence so stale handles cannot alias.
	q.head += uint64(len(q.data))
	q.data = live
	q.tombstones = 0
	return dropped
}

// ToSlice returns a copy of the live values in FIFO order.
// Complexity: O(n). The returned slice is independent of the queue.
func (q *Queue[T]) ToSlice() []T {
	out := make([]T, 0, q.Len())
	for _, e := range q.data {
		if !e.removed {
			out = append(out, e.value)
		}
	}
	return out
}

func (q *Queue[T]) pop() entry[T] {
	e := q.data[0]
	// Reslice to avoid moving elements; clear the slot so the value can be
	// collected.
	q.data[0] = entry[T]{}
	q.data = q.data[1:]
	q.head++
	if e.removed {
		q.tombstones--
	}
	return e
}
