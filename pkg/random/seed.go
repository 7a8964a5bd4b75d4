package random

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Seed is the 128 bit PCG seed of a single worker
type Seed struct {
	Hi uint64
	Lo uint64
}

func (s Seed) String() string {
	return fmt.Sprintf("%016x%016x", s.Hi, s.Lo)
}

// SeedSource hands out the seed for a worker. It is called once per worker while the workers are
// being started, so an error aborts the start of the whole run
type SeedSource interface {
	Seed(worker int) (Seed, error)
}

// SeedFunc adapts a plain function to a SeedSource
type SeedFunc func(worker int) (Seed, error)

func (f SeedFunc) Seed(worker int) (Seed, error) {
	return f(worker)
}

// mix is the splitmix64 finalizer. It spreads small inputs such as worker ids over the whole word
func mix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// DefaultSeeds derives every seed on its own: the high word mixes the wall clock, the worker id and
// the address of a fresh allocation, the low word is filled from a random uuid. Nothing is shared
// between workers
func DefaultSeeds() SeedSource {
	return SeedFunc(func(worker int) (Seed, error) {
		u, err := uuid.NewRandom()
		if err != nil {
			return Seed{}, fmt.Errorf("failed to read random seed for worker %d: %w", worker, err)
		}

		addr := uint64(reflect.ValueOf(new(byte)).Pointer())
		hi := uint64(time.Now().UnixNano()) ^ mix(uint64(worker)) ^ mix(addr)
		lo := binary.BigEndian.Uint64(u[:8]) ^ binary.BigEndian.Uint64(u[8:])
		return Seed{Hi: hi, Lo: lo}, nil
	})
}

// FixedSeeds returns a deterministic source. Worker i always gets the same seed for the same base,
// which makes bounded runs reproducible for a fixed worker count
func FixedSeeds(base uint64) SeedSource {
	return SeedFunc(func(worker int) (Seed, error) {
		return Seed{
			Hi: mix(base),
			Lo: mix(base ^ mix(uint64(worker)+1)),
		}, nil
	})
}
