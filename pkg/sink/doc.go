/*
Package sink aggregates the output of many workers into one io.Writer.

Every worker owns a Writer with a private buffer taken from an Allocator. Records are appended to
that buffer and the whole buffer is written to the shared Sink under its lock when the next record
would not fit, and once more when the worker closes its Writer. Each record and its newline always
reach the underlying writer contiguously. Records of one worker keep their order, records of
different workers do not have a defined order.

A failed write is sticky: it is wrapped with errors.ErrSinkWriteFailed and returned by every later
flush of every Writer on the same Sink.
*/
package sink
