package gobrk

import "fmt"
import "math/rand"
import "sync"
import "sync/atomic"
import "testing"
import "unsafe"

type testalloc struct {
	n    byte
	size int64
	ptr  unsafe.Pointer
}

var ccallocated, ccfreed int64

func TestConcur(t *testing.T) {
	var awg, fwg sync.WaitGroup

	nroutines, repeat := 8, 5000
	if testing.Short() {
		repeat = 500
	}

	chans := make([]chan testalloc, 0, nroutines)
	for n := 0; n < nroutines; n++ {
		chans = append(chans, make(chan testalloc, 100))
	}

	m := newslicemalloc(64 * 1024 * 1024)
	defer m.Release()

	awg.Add(nroutines)
	fwg.Add(nroutines)
	for n := 0; n < nroutines; n++ {
		go testallocator(m, byte(n), repeat, chans, &awg)
		go testfree(m, chans[n], &fwg)
	}

	awg.Wait()
	for _, ch := range chans {
		close(ch)
	}
	fwg.Wait()

	t.Logf("ccallocated:%v ccfreed:%v", ccallocated, ccfreed)
	if ccallocated != ccfreed {
		t.Errorf("expected %v freed, got %v", ccallocated, ccfreed)
	}
	for _, bl := range m.Blocks() {
		if bl.Free == false {
			t.Errorf("leaked block %+v", bl)
		}
	}
}

func testallocator(
	m *Malloc, n byte, repeat int,
	chans []chan testalloc, wg *sync.WaitGroup) {

	defer wg.Done()

	sizes := []int64{16, 24, 48, 96, 128, 256}
	for i := 0; i < repeat; i++ {
		size := sizes[rand.Intn(len(sizes))]
		ptr := m.Malloc(size)
		if ptr == nil {
			panic(fmt.Errorf("unexpected exhaustion at iteration %v", i))
		}
		block := payloadbytes(ptr, size)
		for j := range block {
			block[j] = n
		}
		chans[rand.Intn(len(chans))] <- testalloc{n: n, size: size, ptr: ptr}
		atomic.AddInt64(&ccallocated, size)
	}
}

func testfree(m *Malloc, ch chan testalloc, wg *sync.WaitGroup) {
	defer wg.Done()

	for msg := range ch {
		block := payloadbytes(msg.ptr, msg.size)
		for j, c := range block {
			if c != msg.n {
				panic(fmt.Errorf("byte %v: expected %v, got %v", j, msg.n, c))
			}
		}
		m.Free(msg.ptr)
		atomic.AddInt64(&ccfreed, msg.size)
	}
}
