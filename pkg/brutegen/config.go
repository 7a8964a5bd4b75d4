package brutegen

import (
	"fmt"
	"strings"

	"github.com/assetnote/brutegen/pkg/charset"
	errors2 "github.com/assetnote/brutegen/pkg/errors"
	"github.com/assetnote/brutegen/pkg/keyspace"
	"github.com/assetnote/brutegen/pkg/random"
	"github.com/assetnote/brutegen/pkg/sink"
	"github.com/segmentio/ksuid"
)

// Mode selects what the workers generate
type Mode int

const (
	// Enumerate emits every string of the space exactly once, in index order within each worker
	Enumerate Mode = iota
	// RandomBounded emits exactly Count random strings spread over the workers
	RandomBounded
	// RandomUnbounded emits random strings until the context is cancelled
	RandomUnbounded
)

func (m Mode) String() string {
	switch m {
	case Enumerate:
		return "enumerate"
	case RandomBounded:
		return "random-bounded"
	case RandomUnbounded:
		return "random-unbounded"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Random reports whether the mode draws strings instead of enumerating them
func (m Mode) Random() bool {
	return m == RandomBounded || m == RandomUnbounded
}

// Finite reports whether the mode has a known number of records
func (m Mode) Finite() bool {
	return m == Enumerate || m == RandomBounded
}

type Config struct {
	Alphabet charset.Alphabet     `json:"alphabet"`
	Lengths  keyspace.LengthRange `json:"lengths"`
	Workers  int                  `json:"workers"`
	Mode     Mode                 `json:"mode"`
	// Count is the number of samples in RandomBounded mode. In Enumerate mode a non zero Count
	// limits the run to the first Count indices of the space
	Count uint64 `json:"count"`

	// BufferSize is the capacity of each worker's private output buffer
	BufferSize int `json:"buffer_size"`
	// BufferMemoryLimit caps the bytes of all worker buffers together. 0 is unlimited.
	// Workers that cannot get a buffer contribute no output
	BufferMemoryLimit int64 `json:"buffer_memory_limit"`

	Seeds       random.SeedSource
	Allocator   sink.Allocator
	ProgressBar ProgressBar
	RunID       ksuid.KSUID
}

func NewDefaultConfig() *Config {
	return &Config{
		Alphabet:    charset.MustAlphabet(charset.ASCIIAll),
		Lengths:     keyspace.LengthRange{Min: 8, Max: 9},
		Workers:     1,
		Mode:        Enumerate,
		BufferSize:  sink.DefaultBufferSize,
		Seeds:       random.DefaultSeeds(),
		ProgressBar: &NullProgressBar{},
	}
}

type ErrBadConfig struct {
	fields []string
}

func (e *ErrBadConfig) Error() string {
	return fmt.Sprintf("config has invalid values in: %v", strings.Join(e.fields, ", "))
}

// Is lets callers match any configuration failure with errors.ErrInvalidConfig
func (e *ErrBadConfig) Is(target error) bool {
	return target == errors2.ErrInvalidConfig
}

// Fields lists the names of the invalid fields
func (e *ErrBadConfig) Fields() []string {
	return append([]string(nil), e.fields...)
}

// Validate checks every field and reports all invalid ones at once. Unset optional collaborators are
// filled with their defaults
func (c *Config) Validate() error {
	badFields := make([]string, 0)
	if c.Alphabet.Len() == 0 {
		badFields = append(badFields, "Alphabet")
	}
	if err := c.Lengths.Validate(); err != nil {
		badFields = append(badFields, "Lengths")
	}
	if c.Workers < 1 {
		badFields = append(badFields, "Workers")
	}
	switch c.Mode {
	case Enumerate, RandomUnbounded:
	case RandomBounded:
		if c.Count == 0 {
			badFields = append(badFields, "Count")
		}
	default:
		badFields = append(badFields, "Mode")
	}
	if c.BufferSize < 1 {
		badFields = append(badFields, "BufferSize")
	}
	if c.BufferMemoryLimit < 0 {
		badFields = append(badFields, "BufferMemoryLimit")
	}
	if c.Mode.Random() && c.Seeds == nil {
		badFields = append(badFields, "Seeds")
	}
	if len(badFields) != 0 {
		return &ErrBadConfig{fields: badFields}
	}

	if c.Allocator == nil {
		c.Allocator = sink.NewBudget(c.BufferMemoryLimit)
	}
	if c.ProgressBar == nil {
		c.ProgressBar = &NullProgressBar{}
	}
	if c.RunID.IsNil() {
		c.RunID = ksuid.New()
	}
	return nil
}

type ConfigOption func(*Config)

func Alphabet(a charset.Alphabet) ConfigOption {
	return func(c *Config) {
		c.Alphabet = a
	}
}

func Lengths(r keyspace.LengthRange) ConfigOption {
	return func(c *Config) {
		c.Lengths = r
	}
}

func Workers(n int) ConfigOption {
	return func(c *Config) {
		c.Workers = n
	}
}

func GenerationMode(m Mode) ConfigOption {
	return func(c *Config) {
		c.Mode = m
	}
}

func Count(n uint64) ConfigOption {
	return func(c *Config) {
		c.Count = n
	}
}

func BufferSize(n int) ConfigOption {
	return func(c *Config) {
		c.BufferSize = n
	}
}

func BufferMemoryLimit(n int64) ConfigOption {
	return func(c *Config) {
		c.BufferMemoryLimit = n
	}
}

func Seeds(s random.SeedSource) ConfigOption {
	return func(c *Config) {
		c.Seeds = s
	}
}

// Allocator replaces the budget allocator built from BufferMemoryLimit
func Allocator(a sink.Allocator) ConfigOption {
	return func(c *Config) {
		c.Allocator = a
	}
}

func Progress(p ProgressBar) ConfigOption {
	return func(c *Config) {
		c.ProgressBar = p
	}
}

func RunID(id ksuid.KSUID) ConfigOption {
	return func(c *Config) {
		c.RunID = id
	}
}
