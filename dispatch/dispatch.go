// Package dispatch provides the serial execution context that the
// screen orchestrators mutate their state on. It replaces the mobile
// app's main-thread hop with an explicit queue: every repository and
// network completion is delivered as a function on the owning queue,
// so orchestrator state never needs locking.
package dispatch

import "sync"

// Queue delivers functions onto a designated execution context.
type Queue interface {
	// Dispatch schedules fn to run on the queue. Functions run in
	// submission order, one at a time.
	Dispatch(fn func())
}

// Serial is a single-goroutine FIFO queue. The backlog is unbounded,
// so dispatching from within a running job never blocks and preserves
// ordering.
type Serial struct {
	mu      sync.Mutex
	cond    *sync.Cond
	backlog []func()
	closed  bool
	done    chan struct{}
}

// NewSerial creates a Serial queue and starts its loop.
func NewSerial() *Serial {
	s := &Serial{done: make(chan struct{})}
	s.cond = sync.NewCond(&s.mu)
	go s.run()
	return s
}

// Dispatch implements Queue. Dispatching on a closed queue drops the
// function; the owning module only closes after its consumers stop.
func (s *Serial) Dispatch(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.backlog = append(s.backlog, fn)
	s.cond.Signal()
}

// Close drains the backlog and stops the loop. It blocks until every
// already-dispatched function has run.
func (s *Serial) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		<-s.done
		return
	}
	s.closed = true
	s.cond.Signal()
	s.mu.Unlock()
	<-s.done
}

func (s *Serial) run() {
	defer close(s.done)
	for {
		s.mu.Lock()
		for len(s.backlog) == 0 && !s.closed {
			s.cond.Wait()
		}
		if len(s.backlog) == 0 && s.closed {
			s.mu.Unlock()
			return
		}
		fn := s.backlog[0]
		s.backlog = s.backlog[1:]
		s.mu.Unlock()

		fn()
	}
}

// Direct runs dispatched functions inline on the caller's goroutine.
// Used where the caller already is the designated context, and by
// tests that need deterministic delivery.
type Direct struct{}

// Dispatch implements Queue.
func (Direct) Dispatch(fn func()) { fn() }
