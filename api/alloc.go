package api

import "unsafe"

// Mallocer interface for brk based memory management.
type Mallocer interface {
	// Malloc allocate a block of `size` bytes. Nil when size is zero
	// or memory is exhausted.
	Malloc(size int64) unsafe.Pointer

	// Calloc allocate a zero-filled block of n*size bytes. Nil when
	// either argument is zero or the product overflows.
	Calloc(n, size int64) unsafe.Pointer

	// Realloc grow the block at ptr to `size` bytes, possibly moving
	// it. Nil ptr behaves as Malloc. Blocks are never shrunk in
	// place.
	Realloc(ptr unsafe.Pointer, size int64) unsafe.Pointer

	// Free the block at ptr. Nil ptr is a no-op.
	Free(ptr unsafe.Pointer)

	// Info of memory accounting for this allocator.
	Info() (capacity, heap, alloc, overhead int64)

	// Utilization percentage of carved memory held by live payloads.
	Utilization() float64

	// Release the managed region and all its resources.
	Release()
}
