package dispatch

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestSerial_FIFOOrder(t *testing.T) {
	q := NewSerial()

	const n = 100
	results := make([]int, 0, n)
	for i := 0; i < n; i++ {
		i := i
		q.Dispatch(func() {
			results = append(results, i)
		})
	}
	q.Close()

	if len(results) != n {
		t.Fatalf("expected %d executed functions, got %d", n, len(results))
	}
	for i, got := range results {
		if got != i {
			t.Fatalf("expected position %d to hold %d, got %d", i, i, got)
		}
	}
}

func TestSerial_DispatchFromRunningJob(t *testing.T) {
	q := NewSerial()

	ran := make(chan string, 2)
	q.Dispatch(func() {
		// Must not block: the backlog is unbounded.
		q.Dispatch(func() { ran <- "inner" })
		ran <- "outer"
	})
	q.Close()

	if got := <-ran; got != "outer" {
		t.Errorf("expected outer first, got %q", got)
	}
	if got := <-ran; got != "inner" {
		t.Errorf("expected inner second, got %q", got)
	}
}

func TestSerial_CloseDrainsBacklog(t *testing.T) {
	q := NewSerial()

	var executed atomic.Int64
	for i := 0; i < 50; i++ {
		q.Dispatch(func() {
			time.Sleep(time.Microsecond)
			executed.Add(1)
		})
	}
	q.Close()

	if got := executed.Load(); got != 50 {
		t.Errorf("expected 50 executed functions after Close, got %d", got)
	}
}

func TestSerial_DispatchAfterCloseIsDropped(t *testing.T) {
	q := NewSerial()
	q.Close()

	// Must not panic or block.
	q.Dispatch(func() {
		t.Error("function dispatched after Close must not run")
	})
}

func TestDirect_RunsInline(t *testing.T) {
	var ran bool
	Direct{}.Dispatch(func() { ran = true })
	if !ran {
		t.Error("expected Direct to run the function before returning")
	}
}
