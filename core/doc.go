// Package core defines the shared leaf types of libutils.
//
// It provides the Severity type, a closed four-way classification that
// maps a message to its output stream, prefix, and post-write behavior,
// and the CallSite type that carries the file, routine, and line of the
// logging call. CallSite values are captured with Capture, which reads
// the runtime call stack, or constructed directly when the caller wants
// to report a location other than its own.
package core
