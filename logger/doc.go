// Package logger provides a leveled console logger with an optional
// interactive confirmation gate.
//
// Every message carries a call site (file, routine, line) and one of the
// four severities from package core. The severity encodes an escalation
// ladder: Info and WarnNoAck inform and return, WarnAck blocks the
// calling goroutine on a [y/N] prompt so the operator gets a last-chance
// abort before something destructive, and Error terminates the process.
//
// Output lines share one fixed format:
//
//	** libutils: In <routine> (<file>:<line>) <PREFIX>: <message>
//
// Info, WarnNoAck, and WarnAck go to the output stream; Error goes to
// the error stream. Declining a WarnAck prompt exits the process with
// code 255. Neither an Error log nor a declined confirmation ever
// returns control to the caller; there is no recoverable-error path in
// this package by design.
//
// The confirmation branch blocks indefinitely on input with no timeout
// and no cancellation. Callers that need bounded waiting must not log at
// WarnAck. The package assumes single-goroutine use; concurrent writers
// to the same streams interleave unpredictably.
package logger
