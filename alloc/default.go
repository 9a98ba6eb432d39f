package alloc

import "sync"

var (
	defaultGuard *Guard
	defaultMu    sync.RWMutex
)

func init() {
	defaultGuard = New(Config{})
}

// Default returns the default guard
func Default() *Guard {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultGuard
}

// SetDefault sets the default guard
func SetDefault(g *Guard) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultGuard = g
}

// Package-level convenience functions using the default guard

// Alloc allocates a buffer using the default guard
func Alloc(size int) []byte {
	return Default().Alloc(size)
}

// Realloc reallocates a buffer using the default guard
func Realloc(buf []byte, size int) []byte {
	return Default().Realloc(buf, size)
}

// Release releases a buffer using the default guard
func Release(buf *[]byte) {
	Default().Release(buf)
}
