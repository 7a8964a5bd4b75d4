package brutegen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	errors2 "github.com/assetnote/brutegen/pkg/errors"
	"github.com/assetnote/brutegen/pkg/keyspace"
	"github.com/assetnote/brutegen/pkg/log"
	"github.com/assetnote/brutegen/pkg/random"
	"github.com/assetnote/brutegen/pkg/sink"
)

// Engine runs one generation with a fixed configuration. The configuration should not be modified
// while Run is in progress
type Engine struct {
	config *Config
}

// NewEngine creates an engine from the default configuration with opts applied
func NewEngine(opts ...ConfigOption) *Engine {
	e := &Engine{
		config: NewDefaultConfig(),
	}
	for _, o := range opts {
		o(e.config)
	}
	return e
}

// Config returns the config for the engine
func (e *Engine) Config() *Config {
	return e.config
}

// Run is a shorthand for NewEngine(opts...).Run(ctx, w)
func Run(ctx context.Context, w io.Writer, opts ...ConfigOption) (*Stats, error) {
	return NewEngine(opts...).Run(ctx, w)
}

// workerJob is everything a worker needs. It is copied into the worker goroutine
type workerJob struct {
	id    int
	chunk keyspace.Chunk
	seed  random.Seed
}

// plan validates the configuration and splits the work. Nothing is written before plan succeeds
func (e *Engine) plan() (*keyspace.Space, []keyspace.Chunk, error) {
	c := e.config
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}

	var (
		space *keyspace.Space
		total uint64
		err   error
	)
	switch c.Mode {
	case Enumerate:
		space, err = keyspace.NewSpace(c.Alphabet, c.Lengths)
		if err != nil {
			return nil, nil, err
		}
		total = space.Total()
		if c.Count > 0 {
			if c.Count > total {
				return nil, nil, &ErrBadConfig{fields: []string{"Count"}}
			}
			total = c.Count
		}
	case RandomBounded:
		total = c.Count
	case RandomUnbounded:
		// no domain, every worker runs until cancelled
		return nil, make([]keyspace.Chunk, c.Workers), nil
	}

	chunks, err := keyspace.Partition(total, c.Workers)
	if err != nil {
		return nil, nil, err
	}
	return space, chunks, nil
}

// Run generates into w and blocks until every worker has finished. In RandomUnbounded mode it only
// returns once ctx is cancelled, which is its normal end and is not reported as an error.
//
// Errors are distinguishable with errors.Is against errors.ErrInvalidConfig,
// errors.ErrCombinatorialOverflow, errors.ErrWorkerSpawnFailed, errors.ErrSinkWriteFailed and
// context.Canceled. Workers that could not allocate a buffer produce a *errors.PartialError, in
// which case the returned Stats are still valid
func (e *Engine) Run(ctx context.Context, w io.Writer) (*Stats, error) {
	if w == nil {
		return nil, &ErrBadConfig{fields: []string{"Sink"}}
	}
	space, chunks, err := e.plan()
	if err != nil {
		return nil, err
	}

	c := e.config
	stats := newStats(c)
	for _, ch := range chunks {
		stats.Planned += ch.Len()
	}
	c.ProgressBar.AddTotal(int64(stats.Planned))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		out = sink.New(w)
		wg  sync.WaitGroup
	)
	for i, ch := range chunks {
		job := workerJob{id: i, chunk: ch}
		if c.Mode.Random() {
			seed, err := c.Seeds.Seed(i)
			if err != nil {
				// tear down the workers that are already running before reporting
				cancel()
				wg.Wait()
				log.Debug().Int("worker", i).Err(err).Msg("aborting run, worker could not be started")
				return nil, fmt.Errorf("%w: worker %d: %w", errors2.ErrWorkerSpawnFailed, i, err)
			}
			job.seed = seed
		}

		wg.Add(1)
		go func(job workerJob) {
			defer wg.Done()
			stats.Workers[job.id] = e.work(runCtx, cancel, out, space, job)
		}(job)
	}
	wg.Wait()
	stats.Duration = time.Since(stats.Started)

	var partial *errors2.PartialError
	for i := range stats.Workers {
		ws := &stats.Workers[i]
		stats.Records += ws.Records
		stats.Bytes += ws.Bytes
		if ws.Err != nil && errors.Is(ws.Err, errors2.ErrBufferAllocationFailed) {
			partial = errors2.AppendPartial(partial, &errors2.WorkerError{
				Worker: ws.ID,
				Start:  ws.Start,
				End:    ws.End,
				Err:    ws.Err,
			})
		}
	}

	if err := out.Err(); err != nil {
		return stats, err
	}
	if err := ctx.Err(); err != nil && c.Mode.Finite() && stats.Records < stats.Planned {
		return stats, err
	}
	if partial != nil {
		return stats, partial
	}
	return stats, nil
}
