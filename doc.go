/*
Package brutegen provides a keyspace model, an enumeration and sampling engine and helpers to write
the generated strings for brute force tooling.

There are no exports in the root package.

CLI tools part of `cmd/` include:
	- brutegen - enumerates, samples and counts strings over a charset

*/
package brutegen
