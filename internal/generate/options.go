package generate

import (
	"fmt"
	"strings"

	"github.com/assetnote/brutegen/pkg/brutegen"
	"github.com/assetnote/brutegen/pkg/charset"
	"github.com/assetnote/brutegen/pkg/keyspace"
	"github.com/assetnote/brutegen/pkg/random"
	"github.com/assetnote/brutegen/pkg/sink"
	"github.com/dustin/go-humanize"
)

const (
	DefaultLength           = "8-9"
	DefaultThreads          = 1
	DefaultConfirmThreshold = "10GB"
	DefaultOutputFile       = "-"
)

var (
	ErrAborted            = fmt.Errorf("generation aborted")
	ErrInvalidProgressBar = fmt.Errorf("unknown progress style")
)

// ProgressStyle selects how progress is drawn on stderr
type ProgressStyle int

const (
	ProgressTotal ProgressStyle = iota
	ProgressWorkers
)

func ProgressStyleFromString(in string) (ProgressStyle, error) {
	switch strings.ToLower(in) {
	case "", "total":
		return ProgressTotal, nil
	case "workers", "worker":
		return ProgressWorkers, nil
	}
	return ProgressTotal, fmt.Errorf("%w: %s", ErrInvalidProgressBar, in)
}

type GenerateOptions struct {
	Alphabet  charset.Alphabet
	Lengths   keyspace.LengthRange
	Threads   int
	Mode      brutegen.Mode
	Count     uint64
	Seed      uint64
	HasSeed   bool
	Output    string
	StatsFile string

	BufferSize   int
	BufferMemory int64

	ProgressBar      bool
	ProgressStyle    ProgressStyle
	AssumeYes        bool
	ConfirmThreshold uint64

	// internal fields for logging
	charsetSelection string
	customSymbols    string

	// confirm asks before very large outputs. Replaced in tests
	confirm func(label string) bool
}

type GenerateOption func(o *GenerateOptions) error

func NewDefaultGenerateOptions() *GenerateOptions {
	threshold, _ := humanize.ParseBytes(DefaultConfirmThreshold)
	return &GenerateOptions{
		Alphabet:         charset.MustAlphabet(charset.ASCIIAll),
		Lengths:          keyspace.LengthRange{Min: 8, Max: 9},
		Threads:          DefaultThreads,
		Mode:             brutegen.Enumerate,
		Output:           DefaultOutputFile,
		BufferSize:       sink.DefaultBufferSize,
		ConfirmThreshold: threshold,
		charsetSelection: charset.DefaultSelection,
		confirm:          promptConfirm,
	}
}

// Validate will ensure the options are sane after all the flags have been applied
func (o *GenerateOptions) Validate() error {
	if o.Threads < 1 {
		return fmt.Errorf("thread count is too low (%d)", o.Threads)
	}
	if err := o.Lengths.Validate(); err != nil {
		return err
	}
	if o.Mode == brutegen.RandomBounded && o.Count == 0 {
		return fmt.Errorf("bounded random generation needs a count")
	}
	if o.BufferSize <= o.Lengths.Max {
		return fmt.Errorf("buffer size %d cannot hold a record of length %d", o.BufferSize, o.Lengths.Max)
	}
	if o.BufferMemory > 0 && o.BufferMemory < int64(o.BufferSize) {
		return fmt.Errorf("buffer memory %s is smaller than a single buffer of %s",
			humanize.IBytes(uint64(o.BufferMemory)), humanize.IBytes(uint64(o.BufferSize)))
	}
	if o.Mode == brutegen.RandomUnbounded && o.ProgressStyle == ProgressWorkers {
		return fmt.Errorf("per worker progress needs a bounded run")
	}
	return nil
}

// EngineOptions converts the options to engine configuration
func (o *GenerateOptions) EngineOptions() []brutegen.ConfigOption {
	ret := []brutegen.ConfigOption{
		brutegen.Alphabet(o.Alphabet),
		brutegen.Lengths(o.Lengths),
		brutegen.Workers(o.Threads),
		brutegen.GenerationMode(o.Mode),
		brutegen.Count(o.Count),
		brutegen.BufferSize(o.BufferSize),
		brutegen.BufferMemoryLimit(o.BufferMemory),
	}
	if o.HasSeed {
		ret = append(ret, brutegen.Seeds(random.FixedSeeds(o.Seed)))
	}
	return ret
}

// Charset resolves a selection of builtin charsets such as "d,u" and merges the custom symbols
// after them
func Charset(selection string, custom string) GenerateOption {
	return func(o *GenerateOptions) error {
		a, err := charset.Resolve(selection)
		if err != nil {
			return err
		}
		if custom != "" {
			a, err = a.Merge(custom)
			if err != nil {
				return fmt.Errorf("failed to add custom symbols: %w", err)
			}
		}
		o.Alphabet = a
		o.charsetSelection = strings.Join(charset.SplitSelection(selection), ",")
		if o.charsetSelection == "" {
			o.charsetSelection = charset.DefaultSelection
		}
		o.customSymbols = custom
		return nil
	}
}

// Length parses "min-max" or a single length
func Length(v string) GenerateOption {
	return func(o *GenerateOptions) error {
		r, err := keyspace.ParseLengthRange(v)
		if err != nil {
			return err
		}
		o.Lengths = r
		return nil
	}
}

func Threads(n int) GenerateOption {
	return func(o *GenerateOptions) error {
		o.Threads = n
		return nil
	}
}

// Enumeration selects enumeration. A non zero limit only emits the first limit strings
func Enumeration(limit uint64) GenerateOption {
	return func(o *GenerateOptions) error {
		o.Mode = brutegen.Enumerate
		o.Count = limit
		return nil
	}
}

// Random selects random generation. A count of 0 runs until interrupted
func Random(count uint64) GenerateOption {
	return func(o *GenerateOptions) error {
		o.Mode = brutegen.RandomBounded
		if count == 0 {
			o.Mode = brutegen.RandomUnbounded
		}
		o.Count = count
		return nil
	}
}

func Seed(v uint64) GenerateOption {
	return func(o *GenerateOptions) error {
		o.Seed = v
		o.HasSeed = true
		return nil
	}
}

// OutputFile sets the output name. It may contain {charset} {min} {max} {mode} and {run} tags,
// "-" writes to stdout
func OutputFile(name string) GenerateOption {
	return func(o *GenerateOptions) error {
		o.Output = name
		return nil
	}
}

func StatsFile(name string) GenerateOption {
	return func(o *GenerateOptions) error {
		o.StatsFile = name
		return nil
	}
}

func BufferSize(n int) GenerateOption {
	return func(o *GenerateOptions) error {
		o.BufferSize = n
		return nil
	}
}

// BufferMemory parses a human readable size such as "64MiB". Empty or "0" is unlimited
func BufferMemory(v string) GenerateOption {
	return func(o *GenerateOptions) error {
		if v == "" {
			o.BufferMemory = 0
			return nil
		}
		n, err := humanize.ParseBytes(v)
		if err != nil {
			return fmt.Errorf("invalid buffer memory %q: %w", v, err)
		}
		o.BufferMemory = int64(n)
		return nil
	}
}

func ProgressBarEnabled(v bool) GenerateOption {
	return func(o *GenerateOptions) error {
		o.ProgressBar = v
		return nil
	}
}

func Progress(style string) GenerateOption {
	return func(o *GenerateOptions) error {
		s, err := ProgressStyleFromString(style)
		if err != nil {
			return err
		}
		o.ProgressStyle = s
		return nil
	}
}

func AssumeYes(v bool) GenerateOption {
	return func(o *GenerateOptions) error {
		o.AssumeYes = v
		return nil
	}
}

// ConfirmThreshold parses the output size above which a confirmation is required
func ConfirmThreshold(v string) GenerateOption {
	return func(o *GenerateOptions) error {
		n, err := humanize.ParseBytes(v)
		if err != nil {
			return fmt.Errorf("invalid confirm threshold %q: %w", v, err)
		}
		o.ConfirmThreshold = n
		return nil
	}
}

func confirmWith(fn func(label string) bool) GenerateOption {
	return func(o *GenerateOptions) error {
		o.confirm = fn
		return nil
	}
}

// NewGenerateOptions applies opts on top of the defaults
func NewGenerateOptions(opts ...GenerateOption) (*GenerateOptions, error) {
	o := NewDefaultGenerateOptions()
	for _, v := range opts {
		if err := v(o); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return o, nil
}
