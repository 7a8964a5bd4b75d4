package brutegen

import (
	"context"

	"github.com/assetnote/brutegen/pkg/keyspace"
	"github.com/assetnote/brutegen/pkg/log"
	"github.com/assetnote/brutegen/pkg/random"
	"github.com/assetnote/brutegen/pkg/sink"
	"github.com/rs/zerolog"
)

// work runs a single worker to completion. Cancellation is checked before every record. A sink
// failure cancels the whole run since no other worker can make progress either
func (e *Engine) work(ctx context.Context, cancel context.CancelFunc, out *sink.Sink, space *keyspace.Space, job workerJob) (ws WorkerStats) {
	var (
		c      = e.config
		logger = log.Worker(c.RunID.String(), job.id)
		wp, _  = c.ProgressBar.(WorkerProgressBar)
	)
	ws = WorkerStats{ID: job.id, Start: job.chunk.Start, End: job.chunk.End}
	if wp != nil {
		defer func() { wp.WorkerDone(job.id, ws.Err) }()
	}

	if c.Mode.Finite() && job.chunk.Empty() {
		logger.Debug().Msg("empty chunk, nothing to do")
		return ws
	}

	w, err := out.NewWriter(c.Allocator, c.BufferSize)
	if err != nil {
		logger.Warn().Err(err).Str("chunk", job.chunk.String()).Msg("worker contributes no output")
		ws.Err = err
		return ws
	}
	w.OnFlush(func(records, _ int) {
		c.ProgressBar.Incr(int64(records))
		if wp != nil {
			wp.WorkerIncr(job.id, int64(records))
		}
	})
	if wp != nil {
		wp.WorkerStart(job.id, int64(job.chunk.Len()))
	}

	logger.Debug().Str("mode", c.Mode.String()).Str("chunk", job.chunk.String()).Msg("worker started")
	switch c.Mode {
	case Enumerate:
		err = enumerate(ctx, w, space, job.chunk)
	default:
		err = sample(ctx, w, c, job)
	}

	// the final flush happens on every exit path, including cancellation
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	ws.Records, ws.Bytes, ws.Flushes = w.Records(), w.Bytes(), w.Flushes()

	switch {
	case err == nil:
	case err == ctx.Err():
		ws.Cancelled = c.Mode.Finite()
	default:
		ws.Err = err
		cancel()
	}
	logWorkerDone(logger, ws)
	return ws
}

func logWorkerDone(logger zerolog.Logger, ws WorkerStats) {
	ev := logger.Debug()
	if ws.Err != nil {
		ev = logger.Error().Err(ws.Err)
	}
	ev.Uint64("records", ws.Records).
		Uint64("bytes", ws.Bytes).
		Uint64("flushes", ws.Flushes).
		Bool("cancelled", ws.Cancelled).
		Msg("worker finished")
}

// enumerate decodes the first index of the chunk once and walks the rest with the odometer
func enumerate(ctx context.Context, w *sink.Writer, space *keyspace.Space, chunk keyspace.Chunk) error {
	odo, err := space.Odometer(chunk.Start)
	if err != nil {
		return err
	}

	done := ctx.Done()
	for n := chunk.Len(); n > 0; n-- {
		select {
		case <-done:
			return ctx.Err()
		default:
		}

		if err := w.WriteRecord(odo.Bytes()); err != nil {
			return err
		}
		if n > 1 {
			odo.Next()
		}
	}
	return nil
}

// sample draws chunk.Len() strings, or draws until cancellation in RandomUnbounded mode
func sample(ctx context.Context, w *sink.Writer, c *Config, job workerJob) error {
	gen, err := random.NewGenerator(job.seed, c.Alphabet, c.Lengths)
	if err != nil {
		return err
	}

	var (
		done      = ctx.Done()
		buf       = make([]byte, 0, c.Lengths.Max)
		unbounded = c.Mode == RandomUnbounded
		n         = job.chunk.Len()
	)
	for unbounded || n > 0 {
		select {
		case <-done:
			return ctx.Err()
		default:
		}

		buf = gen.Append(buf[:0])
		if err := w.WriteRecord(buf); err != nil {
			return err
		}
		if !unbounded {
			n--
		}
	}
	return nil
}
