package alloc

import (
	"fmt"
	"io"
	"os"
	"unsafe"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// Fixed diagnostics written to the error stream before terminating.
// Historical format: no trailing newline.
const (
	allocFailedMsg   = " ** libutils: FATAL: memory allocation failed!"
	reallocFailedMsg = " ** libutils: FATAL: memory reallocation failed!"
)

// Config holds configuration for a Guard.
type Config struct {
	// Allocator to forward requests to (default: SystemAllocator)
	Allocator Allocator
	// Err receives the failure diagnostic (default: os.Stderr)
	Err io.Writer
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Allocator == nil {
		cfg.Allocator = SystemAllocator{}
	}
	if cfg.Err == nil {
		cfg.Err = os.Stderr
	}
}

// Guard wraps an Allocator with a fail-fast contract: a call either
// returns a valid buffer or terminates the process. No failure is ever
// signaled through a return value.
type Guard struct {
	allocator Allocator
	err       io.Writer
}

// New creates a Guard. Zero-value Config fields fall back to the system
// allocator and os.Stderr.
func New(cfg Config) *Guard {
	applyDefaults(&cfg)
	return &Guard{
		allocator: cfg.Allocator,
		err:       cfg.Err,
	}
}

// Alloc returns a newly allocated buffer of len size, contents zeroed.
// size 0 is a valid request and returns an empty, non-nil buffer. If the
// allocator cannot satisfy the request, Alloc writes a diagnostic to the
// error stream and terminates the process; it never returns nil.
func (g *Guard) Alloc(size int) []byte {
	buf := g.allocator.Alloc(size)
	if buf == nil {
		g.fail(allocFailedMsg)
	}
	return buf
}

// Realloc returns a buffer of len size whose leading min(len(buf), size)
// bytes equal buf's. On success the old buffer must not be reused.
//
// Failure is the allocator returning nil, or returning a buffer backed
// by the same array as the input. The same-address case covers shrinks
// and no-ops the allocator satisfied in place; the historical contract
// requires a genuinely new buffer, so it terminates like exhaustion does.
func (g *Guard) Realloc(buf []byte, size int) []byte {
	next := g.allocator.Realloc(buf, size)
	if next == nil || unsafe.SliceData(next) == unsafe.SliceData(buf) {
		g.fail(reallocFailedMsg)
	}
	return next
}

// Release returns the buffer to the allocator and clears the caller's
// reference, so accidental reuse reads as nil rather than dangling.
// A nil pointer or an already-nil buffer is a no-op.
func (g *Guard) Release(buf *[]byte) {
	if buf == nil {
		return
	}
	*buf = nil
}

func (g *Guard) fail(msg string) {
	fmt.Fprint(g.err, msg)
	osExit(1)
}
