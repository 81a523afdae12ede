package gobrk

import "unsafe"

// header precedes every payload carved from the managed region. The
// stub pad keeps the header, and therefore the first payload, aligned
// to Alignment.
type header struct {
	size int64   // payload bytes requested at carve time, never changes
	free int64   // non-zero when the payload is reusable
	next uintptr // address of the next header in carve order, 0 for tail
	_    [8]byte // pad to Alignment
}

const headersize = int64(unsafe.Sizeof(header{}))

func asheader(addr uintptr) *header {
	return (*header)(unsafe.Pointer(addr))
}

// payload address for a header, and back.
func payloadof(hdr uintptr) unsafe.Pointer {
	return unsafe.Pointer(hdr + uintptr(headersize))
}

func headerof(ptr unsafe.Pointer) uintptr {
	return uintptr(ptr) - uintptr(headersize)
}

// findreusable first-fit scan from head for a free block of at least
// `size` payload bytes. Oversized blocks are handed out whole, they
// are never split down to the requested size. Returns 0 when no block
// matches and the caller has to carve fresh memory. Callers hold
// m.mu.
func (m *Malloc) findreusable(size int64) uintptr {
	for curr := m.head; curr != 0; curr = asheader(curr).next {
		if h := asheader(curr); h.free != 0 && h.size >= size {
			return curr
		}
	}
	return 0
}

// appendblock link a freshly carved header after the current tail.
// Callers hold m.mu.
func (m *Malloc) appendblock(hdr uintptr) {
	if m.head == 0 {
		m.head = hdr
	}
	if m.tail != 0 {
		asheader(m.tail).next = hdr
	}
	m.tail = hdr
}

// unlinktail sever the tail header from the directory, walking from
// head to find its predecessor. The walk is O(n), the price of a
// singly linked list with no back references. Callers hold m.mu.
func (m *Malloc) unlinktail() {
	if m.head == m.tail {
		m.head, m.tail = 0, 0
		return
	}
	for curr := m.head; curr != 0; curr = asheader(curr).next {
		if asheader(curr).next == m.tail {
			asheader(curr).next = 0
			m.tail = curr
		}
	}
}
