package gobrk

import "fmt"
import "unsafe"

// memcpy copy `ln` bytes from `src` to `dst`. Useful when the memory
// block lives outside the golang heap.
func memcpy(dst, src unsafe.Pointer, ln int64) int {
	dstnd := unsafe.Slice((*byte)(dst), ln)
	srcnd := unsafe.Slice((*byte)(src), ln)
	return copy(dstnd, srcnd)
}

var zeroblkinit = make([]byte, 1024)

// zeroblock clear `size` bytes starting at `block`.
func zeroblock(block uintptr, size int64) {
	dst := unsafe.Slice((*byte)(unsafe.Pointer(block)), size)
	for len(dst) > 0 {
		n := copy(dst, zeroblkinit)
		dst = dst[n:]
	}
}

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}
