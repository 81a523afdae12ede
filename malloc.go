package gobrk

import "sync"
import "sync/atomic"
import "unsafe"

import s "github.com/bnclabs/gosettings"
import humanize "github.com/dustin/go-humanize"

import "github.com/bnclabs/gobrk/api"

// Malloc is a brk style heap allocator. All blocks ever carved from
// its region are tracked by an intrusive singly linked list of
// headers, in carve order. Create instances with New.
type Malloc struct {
	// 64-bit aligned stats
	nblocks  int64
	nreused  int64
	nextends int64
	nshrinks int64
	nfrees   int64

	head uintptr // first header, 0 when the directory is empty
	tail uintptr // last header, abuts the current break
	brk  Breaker
	mu   sync.Mutex

	// configuration
	capacity int64
	region   string
}

var _ api.Mallocer = (*Malloc)(nil)

// New create an allocator over a freshly reserved region. Settings
// are documented by Defaultsettings; bad settings panic. Use a
// custom Breaker with NewWith.
func New(setts s.Settings) *Malloc {
	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	validatesettings(setts)

	capacity := setts.Int64("capacity")
	region := setts.String("region")
	var brk Breaker
	switch region {
	case "system":
		brk = newsystembrk(capacity)
	case "slice":
		brk = newslicebrk(capacity)
	}
	m := &Malloc{brk: brk, capacity: capacity, region: region}
	infof("gobrk.New(): reserved %v as %q region",
		humanize.Bytes(uint64(capacity)), region)
	return m
}

// NewWith create an allocator over a caller supplied Breaker.
func NewWith(brk Breaker) *Malloc {
	return &Malloc{brk: brk, capacity: brk.Size(), region: "custom"}
}

//---- operations

// Malloc allocate `size` payload bytes. Returns nil when size is
// zero, or negative, or the region cannot be extended. The earliest
// free block with size >= `size` is reused whole, otherwise
// headersize+size fresh bytes are carved at the break.
func (m *Malloc) Malloc(size int64) unsafe.Pointer {
	if size <= 0 {
		return nil
	}
	m.mu.Lock()
	if hdr := m.findreusable(size); hdr != 0 {
		asheader(hdr).free = 0
		atomic.AddInt64(&m.nreused, 1)
		m.mu.Unlock()
		return payloadof(hdr)
	}
	base, err := m.brk.Sbrk(headersize + size)
	if err != nil {
		m.mu.Unlock()
		debugf("gobrk.Malloc(%v): %v", size, err)
		return nil
	}
	h := asheader(base)
	h.size, h.free, h.next = size, 0, 0
	m.appendblock(base)
	atomic.AddInt64(&m.nblocks, 1)
	atomic.AddInt64(&m.nextends, 1)
	m.mu.Unlock()
	return payloadof(base)
}

// Calloc allocate a zero-filled block of n*size bytes. Returns nil
// when either argument is zero, or negative, or when the product
// overflows int64, or when Malloc fails. The zero checks come before
// the division based overflow check, so the check itself cannot
// divide by zero.
func (m *Malloc) Calloc(n, size int64) unsafe.Pointer {
	if n <= 0 || size <= 0 {
		return nil
	}
	total := n * size
	if size != total/n { // multiplication overflow
		return nil
	}
	ptr := m.Malloc(total)
	if ptr == nil {
		return nil
	}
	zeroblock(uintptr(ptr), total)
	return ptr
}

// Realloc grow `ptr` to `size` payload bytes. A nil `ptr` behaves as
// Malloc(size). When the block already holds `size` bytes, `ptr` is
// returned unchanged, the block is never shrunk in place. Otherwise
// a new block is allocated, the old payload copied over and the old
// block freed; when that allocation fails Realloc returns nil and
// the old block stays allocated and intact.
//
// Realloc(ptr, 0) with a non-nil ptr forwards to Malloc(0) and
// returns nil WITHOUT freeing ptr, matching the reference behavior
// this allocator is a drop-in for. Callers who want the block gone
// must Free it themselves.
func (m *Malloc) Realloc(ptr unsafe.Pointer, size int64) unsafe.Pointer {
	if ptr == nil || size <= 0 {
		return m.Malloc(size)
	}
	h := asheader(headerof(ptr))
	if h.size >= size {
		return ptr
	}
	newptr := m.Malloc(size)
	if newptr == nil {
		return nil
	}
	memcpy(newptr, ptr, h.size)
	m.Free(ptr)
	return newptr
}

// Free release the block at `ptr`. A nil `ptr` is a no-op. When the
// payload is the last byte range before the break the block is
// unlinked from the directory and the region shrinks by
// headersize+size bytes; otherwise the block stays in the directory
// marked reusable.
//
// Passing a pointer that did not come from this allocator, or
// freeing a pointer twice, is not detected; behavior is undefined,
// as with any malloc.
//
// Known limitation, kept from the reference design: the break probe
// and the shrink are two separate Breaker calls. The allocator's
// mutex serializes its own operations only; a foreign caller moving
// the same break between the two calls would make the shrink release
// memory that was never this block's.
func (m *Malloc) Free(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}
	m.mu.Lock()
	h := asheader(headerof(ptr))
	programbreak, err := m.brk.Sbrk(0)
	if err != nil {
		m.mu.Unlock()
		return
	}
	if uintptr(ptr)+uintptr(h.size) == programbreak {
		m.unlinktail()
		m.brk.Sbrk(-(h.size + headersize))
		atomic.AddInt64(&m.nblocks, -1)
		atomic.AddInt64(&m.nshrinks, 1)
		atomic.AddInt64(&m.nfrees, 1)
		m.mu.Unlock()
		debugf("gobrk.Free(%#x): shrunk %v bytes", ptr, headersize+h.size)
		return
	}
	h.free = 1
	atomic.AddInt64(&m.nfrees, 1)
	m.mu.Unlock()
}

// Release the managed region back to the operating environment. The
// allocator cannot be used afterwards; outstanding pointers become
// invalid.
func (m *Malloc) Release() {
	m.mu.Lock()
	m.head, m.tail = 0, 0
	m.brk.Release()
	m.mu.Unlock()
	infof("gobrk.Release(): %q region of %v released",
		m.region, humanize.Bytes(uint64(m.capacity)))
}
