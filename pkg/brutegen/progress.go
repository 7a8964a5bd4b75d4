package brutegen

import (
	"sync/atomic"
)

type ProgressBar interface {
	Incr(n int64)
	AddTotal(n int64)
}

// WorkerProgressBar is implemented by progress bars that track every worker on its own.
// The engine calls these in addition to the ProgressBar methods when they are available
type WorkerProgressBar interface {
	ProgressBar
	WorkerStart(worker int, total int64)
	WorkerIncr(worker int, n int64)
	WorkerDone(worker int, err error)
}

type NullProgressBar struct {
	total int64
	hits  int64
}

func (n *NullProgressBar) Incr(v int64) {
	atomic.AddInt64(&n.hits, v)
}

func (n *NullProgressBar) AddTotal(v int64) {
	atomic.AddInt64(&n.total, v)
}

var _ ProgressBar = &NullProgressBar{}
