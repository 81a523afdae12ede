package gobrk

import "fmt"
import "io"

import humanize "github.com/dustin/go-humanize"

// Blockinfo describes one directory entry, as seen by an unlocked
// traversal.
type Blockinfo struct {
	Addr uintptr // header address
	Size int64   // payload bytes
	Free bool
	Next uintptr // successor header address, 0 for tail
}

// Blocks walk the directory from head without acquiring the
// allocator mutex. A concurrent Malloc or Free may be observed
// mid-flight; the snapshot is informational only.
func (m *Malloc) Blocks() []Blockinfo {
	blocks := make([]Blockinfo, 0, 8)
	for curr := m.head; curr != 0; curr = asheader(curr).next {
		h := asheader(curr)
		blocks = append(blocks, Blockinfo{
			Addr: curr, Size: h.size, Free: h.free != 0, Next: h.next,
		})
	}
	return blocks
}

// Dump the directory to `w`, one line per block.
func (m *Malloc) Dump(w io.Writer) {
	fmt.Fprintf(w, "head = %#x, tail = %#x\n", m.head, m.tail)
	for _, bl := range m.Blocks() {
		fmt.Fprintf(w, "addr = %#x, size = %v (%v), free = %v, next = %#x\n",
			bl.Addr, bl.Size, humanize.Bytes(uint64(bl.Size)), bl.Free, bl.Next)
	}
}
