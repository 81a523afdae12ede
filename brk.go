package gobrk

import "unsafe"

// Breaker moves the end boundary of a managed region by a signed byte
// delta, like sbrk(2). Implementations reserve the full capacity up
// front and slide the break inside the reservation.
type Breaker interface {
	// Sbrk move the break by `incr` bytes and return the PRIOR break
	// address. Sbrk(0) reads the current break. On failure the break
	// is unchanged and ErrorOutofMemory, or ErrorReleased, is
	// returned.
	Sbrk(incr int64) (uintptr, error)

	// Base address of the managed region.
	Base() uintptr

	// Size reserved capacity in bytes.
	Size() int64

	// Release the whole region back to the operating environment.
	Release()
}

// slicebrk backs the managed region with a Go byte-slice and keeps
// the break as an address inside it. Fully portable; also the
// deterministic choice for tests that need to exhaust the region.
type slicebrk struct {
	heap []byte // keeps the region alive for the GC
	base uintptr
	brk  uintptr
}

func newslicebrk(capacity int64) *slicebrk {
	heap := make([]byte, capacity)
	base := uintptr(unsafe.Pointer(&heap[0]))
	return &slicebrk{heap: heap, base: base, brk: base}
}

func (sb *slicebrk) Sbrk(incr int64) (uintptr, error) {
	if sb.heap == nil {
		return 0, ErrorReleased
	}
	prior := sb.brk
	next := uintptr(int64(sb.brk) + incr)
	if next < sb.base || next > sb.base+uintptr(len(sb.heap)) {
		return 0, ErrorOutofMemory
	}
	sb.brk = next
	return prior, nil
}

func (sb *slicebrk) Base() uintptr {
	return sb.base
}

func (sb *slicebrk) Size() int64 {
	return int64(cap(sb.heap))
}

func (sb *slicebrk) Release() {
	sb.heap, sb.base, sb.brk = nil, 0, 0
}
