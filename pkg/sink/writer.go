package sink

import (
	"github.com/valyala/bytebufferpool"
)

// FlushFunc is called after every successful flush with the number of records and bytes written
type FlushFunc func(records int, bytes int)

// Writer is the private buffered writer of one worker. Records are appended with a trailing newline
// and the buffer is flushed to the shared Sink whenever the next record would not fit.
// A Writer is owned by a single goroutine
type Writer struct {
	sink  *Sink
	alloc Allocator
	buf   *bytebufferpool.ByteBuffer
	size  int

	pending int // records in buf
	onFlush FlushFunc

	records uint64
	bytes   uint64
	flushes uint64
}

// NewWriter acquires a buffer of size bytes from alloc. The error wraps
// errors.ErrBufferAllocationFailed when no buffer could be handed out
func (s *Sink) NewWriter(alloc Allocator, size int) (*Writer, error) {
	buf, err := alloc.Acquire(size)
	if err != nil {
		return nil, err
	}
	return &Writer{
		sink:  s,
		alloc: alloc,
		buf:   buf,
		size:  size,
	}, nil
}

// OnFlush registers fn to be called after each successful flush
func (w *Writer) OnFlush(fn FlushFunc) {
	w.onFlush = fn
}

// WriteRecord appends rec and the record terminator. rec is copied and may be reused by the caller.
// A record that does not fit an empty buffer is written straight through
func (w *Writer) WriteRecord(rec []byte) error {
	need := len(rec) + 1
	if w.buf.Len()+need > w.size {
		if err := w.Flush(); err != nil {
			return err
		}
	}

	w.buf.B = append(w.buf.B, rec...)
	w.buf.B = append(w.buf.B, '\n')
	w.pending++

	if need > w.size {
		return w.Flush()
	}
	return nil
}

// Flush writes the buffered records to the sink and resets the buffer. Flushing an empty buffer
// still reports a failure of the sink caused by another worker
func (w *Writer) Flush() error {
	if w.buf == nil {
		return nil
	}
	if w.buf.Len() == 0 {
		return w.sink.Err()
	}

	n, records := w.buf.Len(), w.pending
	err := w.sink.write(w.buf.B, uint64(records))
	// flushed or not, these records are gone. Partial output is not rolled back
	w.buf.Reset()
	w.pending = 0
	if err != nil {
		return err
	}

	w.records += uint64(records)
	w.bytes += uint64(n)
	w.flushes++
	if w.onFlush != nil {
		w.onFlush(records, n)
	}
	return nil
}

// Close performs the final flush and returns the buffer to the allocator. It is safe to call more
// than once
func (w *Writer) Close() error {
	if w.buf == nil {
		return nil
	}
	err := w.Flush()
	w.alloc.Release(w.buf)
	w.buf = nil
	return err
}

// Records is the number of records this writer flushed to the sink
func (w *Writer) Records() uint64 {
	return w.records
}

// Bytes is the number of bytes this writer flushed to the sink
func (w *Writer) Bytes() uint64 {
	return w.bytes
}

// Flushes is the number of successful flushes
func (w *Writer) Flushes() uint64 {
	return w.flushes
}
