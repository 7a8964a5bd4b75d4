package keyspace

import (
	"fmt"
	"strconv"
)

var (
	ErrNoWorkers = fmt.Errorf("at least one worker is required")
)

// Chunk is the half-open index range [Start, End) assigned to one worker
type Chunk struct {
	Start uint64
	End   uint64
}

// Len is the number of indices in the chunk
func (c Chunk) Len() uint64 {
	return c.End - c.Start
}

// Empty chunks are handed out when there are more workers than indices
func (c Chunk) Empty() bool {
	return c.Start == c.End
}

func (c Chunk) String() string {
	return "[" + strconv.FormatUint(c.Start, 10) + ", " + strconv.FormatUint(c.End, 10) + ")"
}

// Partition splits [0, total) into workers contiguous chunks laid out in increasing order.
// Chunk sizes differ by at most one and the remainder goes to the first chunks, so when
// total < workers the trailing chunks are empty
func Partition(total uint64, workers int) ([]Chunk, error) {
	if workers < 1 {
		return nil, ErrNoWorkers
	}

	var (
		n      = uint64(workers)
		size   = total / n
		extra  = total % n
		chunks = make([]Chunk, workers)
		start  uint64
	)
	for i := range chunks {
		end := start + size
		if uint64(i) < extra {
			end++
		}
		chunks[i] = Chunk{Start: start, End: end}
		start = end
	}
	return chunks, nil
}
