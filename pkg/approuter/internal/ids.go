package internal

import "go.uber.org/atomic"

var nextID = atomic.NewUint64(0)

// NextID returns a process-unique, non-zero identifier. Router nodes and
// observer registrations draw from the same sequence.
func NextID() uint64 {
	return nextID.Inc()
}
