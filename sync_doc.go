package cancelqueue

// Sharing a Queue between goroutines
//
// Queue performs no locking. A queue shared by several goroutines needs a
// mutex around every call, including RemoveMatching, whose scan and flag
// phases must not interleave with a dequeue from elsewhere. The blockingqueue
// subpackage does exactly that and adds a context-aware Take.
//
// Design notes for hand-rolled wrappers:
//   - Hold the lock for the whole RemoveMatching call. Do not call back into
//     the wrapper from the predicate; it runs with the lock held.
//   - Wake waiters after Enqueue, not after RemoveMatching: removal never
//     makes a value available.
//   - A waiter must loop on TryDequeue, since the entries that woke it may
//     have been removed before it got the lock.
//
// Minimal outline:
//
//  type SharedQueue struct {
//      mu sync.Mutex
//      cv *sync.Cond
//      q  cancelqueue.Queue[string]
//  }
//
//  func (s *SharedQueue) Put(v string) {
//      s.mu.Lock()
//      s.q.Enqueue(v)
//      s.mu.Unlock()
//      s.cv.Broadcast()
//  }
//
//  func (s *SharedQueue) Cancel(v string) int {
//      s.mu.Lock()
//      defer s.mu.Unlock()
//      return s.q.RemoveMatching(func(x string) bool { return x == v })
//  }
//
//  func (s *SharedQueue) Take() string {
//      s.mu.Lock()
//      defer s.mu.Unlock()
//      for {
//          if v, ok := s.q.TryDequeue(); ok {
//              return v
//          }
//          s.cv.Wait()
//      }
//  }
