/*
Package random produces the candidate stream for random mode.

Each worker owns a Generator backed by a PCG from math/rand/v2. Lengths and symbols are drawn with
an unbiased bounded mapping, so every length in the range is equally likely and every symbol of
the alphabet is equally likely at every position. The output is not suitable for anything that
needs cryptographic randomness.

Seeds come from a SeedSource. DefaultSeeds needs no coordination between workers, FixedSeeds is
used for reproducible runs.
*/
package random
