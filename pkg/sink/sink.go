package sink

import (
	"fmt"
	"io"
	"sync"

	errors2 "github.com/assetnote/brutegen/pkg/errors"
)

// DefaultBufferSize is the capacity of each worker's private buffer
const DefaultBufferSize = 1 << 20

// Sink is the one writer shared by every worker. Writes are serialised with a single mutex, which
// is the only point where workers synchronise. The first failed write is kept and returned by every
// later write, so a broken sink stops all workers
type Sink struct {
	mu  sync.Mutex
	w   io.Writer
	err error

	records uint64
	bytes   uint64
}

// New wraps w. w does not need to be safe for concurrent use
func New(w io.Writer) *Sink {
	return &Sink{w: w}
}

// write sends p in a single Write call while holding the lock, so the records in p are never
// interleaved with records of another worker
func (s *Sink) write(p []byte, records uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}

	n, err := s.w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		s.err = fmt.Errorf("%w: %w", errors2.ErrSinkWriteFailed, err)
		return s.err
	}
	s.records += records
	s.bytes += uint64(n)
	return nil
}

// Err returns the sticky write error, if any
func (s *Sink) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Written returns the number of records and bytes that reached the underlying writer
func (s *Sink) Written() (records uint64, bytes uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records, s.bytes
}
