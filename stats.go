package gobrk

import "sync/atomic"
import "unsafe"

// Info return memory accounting for this allocator. `capacity` is
// the reserved region size, `heap` the extent carved so far, `alloc`
// the live payload bytes and `overhead` the bytes spent on headers
// and bookkeeping.
func (m *Malloc) Info() (capacity, heap, alloc, overhead int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	capacity = m.brk.Size()
	if brkp, err := m.brk.Sbrk(0); err == nil {
		heap = int64(brkp - m.brk.Base())
	}
	overhead = int64(unsafe.Sizeof(*m))
	for curr := m.head; curr != 0; curr = asheader(curr).next {
		h := asheader(curr)
		overhead += headersize
		if h.free == 0 {
			alloc += h.size
		}
	}
	return
}

// Utilization percentage of carved region bytes held by live
// payloads. Internal fragmentation from unsplit oversized blocks
// shows up here.
func (m *Malloc) Utilization() float64 {
	_, heap, alloc, _ := m.Info()
	if heap == 0 {
		return 0
	}
	return (float64(alloc) / float64(heap)) * 100
}

// Stats operation counters for this allocator.
//
//	"n.blocks"  blocks currently in the directory.
//	"n.reused"  allocations satisfied first-fit from a free block.
//	"n.extends" allocations that grew the region.
//	"n.shrinks" frees that returned tail memory to the region.
//	"n.frees"   total frees, including shrinks.
func (m *Malloc) Stats() map[string]interface{} {
	return map[string]interface{}{
		"n.blocks":  atomic.LoadInt64(&m.nblocks),
		"n.reused":  atomic.LoadInt64(&m.nreused),
		"n.extends": atomic.LoadInt64(&m.nextends),
		"n.shrinks": atomic.LoadInt64(&m.nshrinks),
		"n.frees":   atomic.LoadInt64(&m.nfrees),
	}
}
