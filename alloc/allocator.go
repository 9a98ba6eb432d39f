package alloc

// Allocator is the underlying allocation contract a Guard forwards to.
type Allocator interface {
	// Alloc returns a slice of len size, or nil if the request cannot
	// be satisfied.
	Alloc(size int) []byte
	// Realloc returns a slice of len size whose leading
	// min(len(buf), size) bytes equal buf's, or nil on failure. buf may
	// be nil, in which case Realloc behaves like Alloc.
	Realloc(buf []byte, size int) []byte
}

// SystemAllocator delegates to the Go runtime. It never fails short of
// the runtime itself aborting, and its Realloc always returns a fresh
// backing array.
type SystemAllocator struct{}

func (SystemAllocator) Alloc(size int) []byte {
	return make([]byte, size)
}

func (SystemAllocator) Realloc(buf []byte, size int) []byte {
	next := make([]byte, size)
	copy(next, buf)
	return next
}
