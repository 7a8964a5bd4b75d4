package sink

import (
	"fmt"
	"sync"

	errors2 "github.com/assetnote/brutegen/pkg/errors"
	"github.com/valyala/bytebufferpool"
)

// Allocator hands out the private worker buffers
type Allocator interface {
	// Acquire returns an empty buffer able to hold size bytes without growing
	Acquire(size int) (*bytebufferpool.ByteBuffer, error)
	// Release gives the buffer back. It must not be used afterwards
	Release(b *bytebufferpool.ByteBuffer)
}

// Budget is an Allocator backed by a bytebufferpool.Pool that refuses to hand out more than limit
// bytes at the same time. A limit of 0 disables the check
type Budget struct {
	mu       sync.Mutex
	limit    int64
	used     int64
	reserved map[*bytebufferpool.ByteBuffer]int64

	pool bytebufferpool.Pool
}

// NewBudget returns an allocator with the byte limit
func NewBudget(limit int64) *Budget {
	return &Budget{
		limit:    limit,
		reserved: make(map[*bytebufferpool.ByteBuffer]int64),
	}
}

func (b *Budget) Acquire(size int) (*bytebufferpool.ByteBuffer, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: invalid buffer size %d", errors2.ErrBufferAllocationFailed, size)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	want := int64(size)
	if b.limit > 0 && b.used+want > b.limit {
		return nil, fmt.Errorf("%w: %d bytes requested, %d of %d in use",
			errors2.ErrBufferAllocationFailed, want, b.used, b.limit)
	}

	buf := b.pool.Get()
	if cap(buf.B) < size {
		buf.B = make([]byte, 0, size)
	}
	b.used += want
	b.reserved[buf] = want
	return buf, nil
}

func (b *Budget) Release(buf *bytebufferpool.ByteBuffer) {
	if buf == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	size, ok := b.reserved[buf]
	if !ok {
		return
	}
	delete(b.reserved, buf)
	b.used -= size
	b.pool.Put(buf)
}

// Used returns the number of bytes currently handed out
func (b *Budget) Used() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.used
}

func (b *Budget) Limit() int64 {
	return b.limit
}
