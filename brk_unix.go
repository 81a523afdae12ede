//go:build unix

package gobrk

import "unsafe"

import "golang.org/x/sys/unix"

// sysbrk backs the managed region with an anonymous mmap reservation
// and slides the break inside it. Unix only.
type sysbrk struct {
	mem  []byte
	base uintptr
	brk  uintptr
}

func newsystembrk(capacity int64) Breaker {
	prot := unix.PROT_READ | unix.PROT_WRITE
	flags := unix.MAP_PRIVATE | unix.MAP_ANONYMOUS
	mem, err := unix.Mmap(-1, 0, int(capacity), prot, flags)
	if err != nil {
		panicerr("mmap %v bytes: %v", capacity, err)
	}
	base := uintptr(unsafe.Pointer(&mem[0]))
	return &sysbrk{mem: mem, base: base, brk: base}
}

func (sb *sysbrk) Sbrk(incr int64) (uintptr, error) {
	if sb.mem == nil {
		return 0, ErrorReleased
	}
	prior := sb.brk
	next := uintptr(int64(sb.brk) + incr)
	if next < sb.base || next > sb.base+uintptr(len(sb.mem)) {
		return 0, ErrorOutofMemory
	}
	sb.brk = next
	return prior, nil
}

func (sb *sysbrk) Base() uintptr {
	return sb.base
}

func (sb *sysbrk) Size() int64 {
	return int64(len(sb.mem))
}

func (sb *sysbrk) Release() {
	if sb.mem == nil {
		return
	}
	if err := unix.Munmap(sb.mem); err != nil {
		warnf("gobrk.Release(): munmap: %v", err)
	}
	sb.mem, sb.base, sb.brk = nil, 0, 0
}
