/*
Package brutegen provides the parallel generation engine.

An Engine splits the work into one contiguous chunk per worker and runs every worker in its own
goroutine. In Enumerate mode the chunks cover the index space of a keyspace.Space and each worker
walks its chunk with an odometer. In RandomBounded mode the chunks cover the requested number of
samples and each worker draws that many strings from its own random.Generator. RandomUnbounded
workers draw until the context is cancelled.

Every worker owns a sink.Writer and the only point where workers meet is the lock of the shared
sink. Records of a worker keep their order, records of different workers are interleaved at
buffer granularity.

	stats, err := brutegen.Run(ctx, os.Stdout,
		brutegen.Alphabet(charset.MustAlphabet("ab")),
		brutegen.Lengths(keyspace.Fixed(2)),
		brutegen.Workers(4),
	)

The output is one record per line terminated by '\n' with nothing else in the stream.
*/
package brutegen
