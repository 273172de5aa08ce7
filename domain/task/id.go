package task

import (
	"sync/atomic"
	"time"
)

var lastID atomic.Int64

// NextID returns a process-unique 64-bit identifier for a new task.
// IDs are seeded from the wall clock but strictly increase even when
// two creations land in the same clock tick, so concurrent creations
// cannot collide. An ID is assigned once at creation and never changes.
func NextID() int64 {
	for {
		id := time.Now().UnixNano()
		last := lastID.Load()
		if id <= last {
			id = last + 1
		}
		if lastID.CompareAndSwap(last, id) {
			return id
		}
	}
}
