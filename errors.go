package cancelqueue

import "errors"

// ErrEmptyQueue is returned by Dequeue when no live value remains.
var ErrEmptyQueue = errors.New("cancelqueue: queue is empty")
