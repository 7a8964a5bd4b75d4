package errors

import (
	"errors"
	"fmt"

	"github.com/assetnote/brutegen/pkg/log"
	"github.com/hashicorp/go-multierror"
)

// These sentinels name every failure category a run can end with. Use errors.Is against them
var (
	ErrInvalidConfig          = fmt.Errorf("invalid configuration")
	ErrCombinatorialOverflow  = fmt.Errorf("combinatorial overflow")
	ErrWorkerSpawnFailed      = fmt.Errorf("worker spawn failed")
	ErrBufferAllocationFailed = fmt.Errorf("buffer allocation failed")
	ErrSinkWriteFailed        = fmt.Errorf("sink write failed")
)

// prefixFromDepth will create the indent prefix for a certain depth
// of string, e.g. 2 will yield "  " * 2 -> "    "
func prefixFromDepth(depth int) string {
	var p []byte
	for i := 0; i < depth; i++ {
		p = append(p, "  "...)
	}
	return string(p)
}

// PrintError will attempt to traverse the nested error and
// recursively print out any nested WorkerErrors found.
// PartialErrors and multierror.Errors are unrolled one level deeper per nesting
func PrintError(err error, depth int) {
	var (
		merr *multierror.Error
		perr *PartialError
		werr *WorkerError
	)

	if errors.As(err, &perr) {
		log.Warn().Int("workers", len(perr.Errors())).Msg(prefixFromDepth(depth) + "partial output")
		PrintError(perr.Err, depth+1)
	} else if errors.As(err, &merr) {
		for _, v := range merr.Errors {
			PrintError(v, depth+1)
		}
	} else if errors.As(err, &werr) {
		werr.LogError(depth)
	} else {
		log.Error().Err(err).Msg(prefixFromDepth(depth) + "error")
	}
}

// OverflowError is returned when the number of strings of some length, or the running total up to
// that length, cannot be represented by the counting type
type OverflowError struct {
	Length     int  // Length is the string length at which the overflow was detected
	Cumulative bool // Cumulative is set when the per-length count fit but the running total did not
}

func (e *OverflowError) Error() string {
	if e.Cumulative {
		return fmt.Sprintf("combinatorial overflow: total count overflows at length %d", e.Length)
	}
	return fmt.Sprintf("combinatorial overflow: count for length %d overflows", e.Length)
}

func (e *OverflowError) Is(target error) bool {
	return target == ErrCombinatorialOverflow
}

// WorkerError attaches the worker identity and its assigned index range to a failure
type WorkerError struct {
	Worker int    // Worker is the zero based worker id
	Start  uint64 // Start is the first index of the chunk the worker owned
	End    uint64 // End is one past the last index of the chunk
	Err    error
}

func (w *WorkerError) Error() string {
	return fmt.Sprintf("worker %d [%d, %d): %s", w.Worker, w.Start, w.End, w.Err.Error())
}

func (w *WorkerError) Unwrap() error {
	return w.Err
}

// LogError will log the context surrounding the error at warn level.
// the depth argument modifies the indentation depth of the pretty printed error
func (w *WorkerError) LogError(depth int) {
	log.Warn().
		Int("worker", w.Worker).
		Uint64("start", w.Start).
		Uint64("end", w.End).
		Err(w.Err).
		Msg(prefixFromDepth(depth))
}

// PartialError is returned when the run completed but some workers contributed no output.
// The statistics returned next to it are still valid
type PartialError struct {
	Err *multierror.Error
}

// AppendPartial adds err to the partial error p, allocating p if required
func AppendPartial(p *PartialError, err error) *PartialError {
	if p == nil {
		p = &PartialError{}
	}
	p.Err = multierror.Append(p.Err, err)
	return p
}

func (p *PartialError) Errors() []error {
	if p == nil || p.Err == nil {
		return nil
	}
	return p.Err.Errors
}

func (p *PartialError) Error() string {
	return fmt.Sprintf("partial output: %d worker(s) failed: %s", len(p.Errors()), p.Err.Error())
}

func (p *PartialError) Unwrap() error {
	return p.Err
}

// Is reports whether any of the aggregated worker failures matches target
func (p *PartialError) Is(target error) bool {
	for _, v := range p.Errors() {
		if errors.Is(v, target) {
			return true
		}
	}
	return false
}

// IsPartial reports whether err only signals partial output
func IsPartial(err error) bool {
	var perr *PartialError
	return errors.As(err, &perr)
}
