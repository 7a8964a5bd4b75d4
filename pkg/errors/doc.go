/*
The errors package provides the failure taxonomy of a generation run and utilities used to
print aggregated worker failures.

Every category a run can end with has a sentinel that callers match with errors.Is:
ErrInvalidConfig, ErrCombinatorialOverflow, ErrWorkerSpawnFailed, ErrBufferAllocationFailed and
ErrSinkWriteFailed. Richer types carry the context: OverflowError names the length that overflowed,
WorkerError names the worker and its chunk, and PartialError aggregates the workers that produced
no output while the rest of the run completed.

Usage

	import errors2 "github.com/assetnote/brutegen/pkg/errors"

	...

	stats, err := brutegen.Run(ctx, w, opts...)
	if errors2.IsPartial(err) {
		errors2.PrintError(err, 0)
	} else if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

*/
package errors
