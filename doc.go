// Package cancelqueue provides a generic FIFO queue with lazy removal.
//
// Values can be marked as removed with RemoveMatching without splicing the
// middle of the queue. A removed value stays in place as a tombstone and is
// discarded when it reaches the front during a dequeue, so it is never
// returned to the caller. Construct a queue with New or NewWithCapacity; the
// zero value is also ready for use.
//
// The queue is not safe for concurrent use. Callers that share a queue
// between goroutines must synchronize access themselves, or use the
// blockingqueue subpackage.
package cancelqueue
