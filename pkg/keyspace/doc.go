/*
Package keyspace counts, partitions and indexes the set of strings over an alphabet.

The space for an alphabet of Σ symbols and lengths [min, max] holds Σ^min + ... + Σ^max strings.
Every string has a global index: strings are ordered by length, and strings of the same length by
their value read as a base-Σ number with the first symbol as digit zero. For the alphabet "ab" and
length 2 the order is aa, ab, ba, bb.

All counting is done with checked 64 bit arithmetic. A space whose size does not fit is rejected by
NewSpace with an errors.OverflowError instead of silently wrapping, since partitioning needs a
well defined total.

Partition splits an index domain into contiguous chunks, one per worker. A worker decodes the first
index of its chunk once and then walks the rest with an Odometer, which yields exactly the same
sequence as calling Decode on every index.

	space, err := keyspace.NewSpace(alphabet, keyspace.LengthRange{Min: 3, Max: 4})
	if err != nil {
		return err
	}
	chunks, _ := keyspace.Partition(space.Total(), workers)
	odo, _ := space.Odometer(chunks[0].Start)
	for n := chunks[0].Len(); n > 0; n-- {
		use(odo.Bytes())
		odo.Next()
	}
*/
package keyspace
