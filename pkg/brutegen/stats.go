package brutegen

import (
	"time"

	"github.com/francoispqt/gojay"
	"github.com/segmentio/ksuid"
)

// WorkerStats describes what one worker did
type WorkerStats struct {
	ID int
	// Start and End bound the chunk the worker owned. Both are 0 in RandomUnbounded mode
	Start uint64
	End   uint64

	Records uint64 // records flushed to the sink
	Bytes   uint64 // bytes flushed to the sink
	Flushes uint64

	Cancelled bool  // the worker stopped before finishing its chunk because the run was cancelled
	Err       error // set when the worker failed
}

func (w *WorkerStats) MarshalJSONObject(enc *gojay.Encoder) {
	enc.IntKey("id", w.ID)
	enc.Uint64Key("start", w.Start)
	enc.Uint64Key("end", w.End)
	enc.Uint64Key("records", w.Records)
	enc.Uint64Key("bytes", w.Bytes)
	enc.Uint64Key("flushes", w.Flushes)
	enc.BoolKey("cancelled", w.Cancelled)
	if w.Err != nil {
		enc.StringKey("error", w.Err.Error())
	}
}

func (w *WorkerStats) IsNil() bool {
	return w == nil
}

type WorkerStatsList []WorkerStats

func (l WorkerStatsList) MarshalJSONArray(enc *gojay.Encoder) {
	for i := range l {
		enc.Object(&l[i])
	}
}

func (l WorkerStatsList) IsNil() bool {
	return len(l) == 0
}

// Stats summarises a run. Statistics are valid even when Run returns a *errors.PartialError
type Stats struct {
	RunID    ksuid.KSUID
	Mode     Mode
	Charset  string
	Min      int
	Max      int
	Planned  uint64 // records the run was asked for, 0 in RandomUnbounded mode
	Records  uint64
	Bytes    uint64
	Workers  WorkerStatsList
	Started  time.Time
	Duration time.Duration
}

func newStats(c *Config) *Stats {
	return &Stats{
		RunID:   c.RunID,
		Mode:    c.Mode,
		Charset: c.Alphabet.String(),
		Min:     c.Lengths.Min,
		Max:     c.Lengths.Max,
		Workers: make(WorkerStatsList, c.Workers),
		Started: time.Now(),
	}
}

// FailedWorkers returns the ids of the workers that reported an error
func (s *Stats) FailedWorkers() []int {
	var ret []int
	for _, w := range s.Workers {
		if w.Err != nil {
			ret = append(ret, w.ID)
		}
	}
	return ret
}

// Rate is the number of records per second
func (s *Stats) Rate() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.Records) / s.Duration.Seconds()
}

func (s *Stats) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("run", s.RunID.String())
	enc.StringKey("mode", s.Mode.String())
	enc.StringKey("charset", s.Charset)
	enc.IntKey("min", s.Min)
	enc.IntKey("max", s.Max)
	enc.Uint64Key("planned", s.Planned)
	enc.Uint64Key("records", s.Records)
	enc.Uint64Key("bytes", s.Bytes)
	enc.StringKey("started", s.Started.UTC().Format(time.RFC3339))
	enc.Int64Key("duration_ms", s.Duration.Milliseconds())
	enc.ArrayKey("workers", s.Workers)
}

func (s *Stats) IsNil() bool {
	return s == nil
}
