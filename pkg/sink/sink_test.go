package sink

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"testing"

	errors2 "github.com/assetnote/brutegen/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingWriter keeps every Write call separately
type recordingWriter struct {
	mu    sync.Mutex
	calls [][]byte
}

func (r *recordingWriter) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, append([]byte(nil), p...))
	return len(p), nil
}

func (r *recordingWriter) String() string {
	return string(bytes.Join(r.calls, nil))
}

type failingWriter struct {
	after int // successful writes before failing
	n     int
	err   error
}

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.n >= f.after {
		return 0, f.err
	}
	f.n++
	return len(p), nil
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	return len(p) / 2, nil
}

func TestWriter_FlushWhenFull(t *testing.T) {
	rw := &recordingWriter{}
	s := New(rw)
	w, err := s.NewWriter(NewBudget(0), 8)
	require.NoError(t, err)

	var flushed []int
	w.OnFlush(func(records, n int) {
		flushed = append(flushed, records)
	})

	for _, rec := range []string{"aa", "ab", "ba", "bb"} {
		require.NoError(t, w.WriteRecord([]byte(rec)))
	}
	// two records of 3 bytes fit an 8 byte buffer, the third forces a flush
	assert.Equal(t, []string{"aa\nab\n"}, toStrings(rw.calls))

	require.NoError(t, w.Close())
	assert.Equal(t, []string{"aa\nab\n", "ba\nbb\n"}, toStrings(rw.calls))
	assert.Equal(t, []int{2, 2}, flushed)
	assert.Equal(t, uint64(4), w.Records())
	assert.Equal(t, uint64(12), w.Bytes())
	assert.Equal(t, uint64(2), w.Flushes())

	records, n := s.Written()
	assert.Equal(t, uint64(4), records)
	assert.Equal(t, uint64(12), n)

	// closing twice is harmless
	assert.NoError(t, w.Close())
}

func TestWriter_ExactFit(t *testing.T) {
	rw := &recordingWriter{}
	w, err := New(rw).NewWriter(NewBudget(0), 6)
	require.NoError(t, err)

	require.NoError(t, w.WriteRecord([]byte("ab")))
	require.NoError(t, w.WriteRecord([]byte("cd")))
	assert.Empty(t, rw.calls, "a record that exactly fills the buffer must not flush early")

	require.NoError(t, w.WriteRecord([]byte("ef")))
	require.NoError(t, w.Close())
	assert.Equal(t, []string{"ab\ncd\n", "ef\n"}, toStrings(rw.calls))
}

func TestWriter_OversizedRecord(t *testing.T) {
	rw := &recordingWriter{}
	w, err := New(rw).NewWriter(NewBudget(0), 4)
	require.NoError(t, err)

	require.NoError(t, w.WriteRecord([]byte("a")))
	require.NoError(t, w.WriteRecord([]byte("abcdefgh")))
	require.NoError(t, w.WriteRecord([]byte("b")))
	require.NoError(t, w.Close())
	assert.Equal(t, "a\nabcdefgh\nb\n", rw.String())
}

func TestWriter_NoInterleaving(t *testing.T) {
	const (
		workers = 8
		records = 2000
	)
	var out bytes.Buffer
	s := New(&out)
	budget := NewBudget(0)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		w, err := s.NewWriter(budget, 64)
		require.NoError(t, err)

		wg.Add(1)
		go func(id int, w *Writer) {
			defer wg.Done()
			defer w.Close()
			for j := 0; j < records; j++ {
				if err := w.WriteRecord([]byte(fmt.Sprintf("w%d-%05d", id, j))); err != nil {
					t.Error(err)
					return
				}
			}
		}(i, w)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, workers*records)

	// every line is a whole record, and each worker's records keep their order
	next := make([]int, workers)
	for _, line := range lines {
		head, tail, ok := strings.Cut(line, "-")
		require.True(t, ok, "mangled record %q", line)
		id, err := strconv.Atoi(strings.TrimPrefix(head, "w"))
		require.NoError(t, err, "mangled record %q", line)
		seq, err := strconv.Atoi(tail)
		require.NoError(t, err, "mangled record %q", line)
		require.Equal(t, fmt.Sprintf("w%d-%05d", id, seq), line)
		require.Equal(t, next[id], seq, "worker %d out of order", id)
		next[id]++
	}
	assert.Zero(t, budget.Used())
}

func TestWriter_StickyError(t *testing.T) {
	boom := errors.New("disk full")
	s := New(&failingWriter{after: 1, err: boom})
	a, err := s.NewWriter(NewBudget(0), 4)
	require.NoError(t, err)
	b, err := s.NewWriter(NewBudget(0), 4)
	require.NoError(t, err)

	require.NoError(t, a.WriteRecord([]byte("x")))
	require.NoError(t, a.Flush())

	require.NoError(t, a.WriteRecord([]byte("y")))
	err = a.Flush()
	assert.ErrorIs(t, err, errors2.ErrSinkWriteFailed)
	assert.ErrorIs(t, err, boom)

	// another worker sees the failure on its next flush, even with nothing buffered
	assert.ErrorIs(t, b.Flush(), errors2.ErrSinkWriteFailed)
	require.NoError(t, b.WriteRecord([]byte("z")))
	assert.ErrorIs(t, b.Close(), errors2.ErrSinkWriteFailed)
	assert.ErrorIs(t, s.Err(), boom)

	records, _ := s.Written()
	assert.Equal(t, uint64(1), records)
}

func TestWriter_ShortWrite(t *testing.T) {
	s := New(shortWriter{})
	w, err := s.NewWriter(NewBudget(0), 16)
	require.NoError(t, err)
	require.NoError(t, w.WriteRecord([]byte("abcd")))

	err = w.Close()
	assert.ErrorIs(t, err, errors2.ErrSinkWriteFailed)
	assert.ErrorIs(t, err, io.ErrShortWrite)
}

func TestBudget(t *testing.T) {
	b := NewBudget(100)

	x, err := b.Acquire(60)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, cap(x.B), 60)
	assert.Equal(t, int64(60), b.Used())

	_, err = b.Acquire(41)
	assert.ErrorIs(t, err, errors2.ErrBufferAllocationFailed)

	y, err := b.Acquire(40)
	require.NoError(t, err)
	assert.Equal(t, int64(100), b.Used())

	b.Release(x)
	b.Release(x) // unknown buffers are ignored
	assert.Equal(t, int64(40), b.Used())
	b.Release(y)
	assert.Zero(t, b.Used())

	_, err = b.Acquire(0)
	assert.ErrorIs(t, err, errors2.ErrBufferAllocationFailed)
}

func TestSink_NewWriter_AllocationFailure(t *testing.T) {
	s := New(io.Discard)
	_, err := s.NewWriter(NewBudget(10), 11)
	assert.ErrorIs(t, err, errors2.ErrBufferAllocationFailed)
}

func toStrings(calls [][]byte) []string {
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = string(c)
	}
	return out
}
