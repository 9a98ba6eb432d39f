// Package alloc provides allocation primitives that never signal
// failure through a return value: a call either returns a valid buffer
// or terminates the process after writing a fixed diagnostic to the
// error stream.
//
// Ownership of a returned buffer transfers entirely to the caller. The
// package tracks nothing across calls and performs no pooling; every
// request is forwarded verbatim to the configured Allocator.
package alloc
