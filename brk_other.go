//go:build !unix

package gobrk

// Without mmap the "system" region falls back to the slice region.
func newsystembrk(capacity int64) Breaker {
	return newslicebrk(capacity)
}
