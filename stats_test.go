package gobrk

import "testing"

func TestInfo(t *testing.T) {
	m := newslicemalloc(4096)
	defer m.Release()

	capacity, heap, alloc, overhead := m.Info()
	if capacity != 4096 {
		t.Errorf("expected capacity 4096, got %v", capacity)
	} else if heap != 0 || alloc != 0 {
		t.Errorf("expected empty region, got heap %v alloc %v", heap, alloc)
	}

	a, b := m.Malloc(100), m.Malloc(200)
	_, heap, alloc, overhead = m.Info()
	if heap != 2*headersize+300 {
		t.Errorf("expected heap %v, got %v", 2*headersize+300, heap)
	} else if alloc != 300 {
		t.Errorf("expected alloc 300, got %v", alloc)
	} else if overhead < 2*headersize {
		t.Errorf("expected overhead >= %v, got %v", 2*headersize, overhead)
	}

	m.Free(a) // freed but still carved
	_, heap, alloc, _ = m.Info()
	if heap != 2*headersize+300 {
		t.Errorf("expected heap unchanged, got %v", heap)
	} else if alloc != 200 {
		t.Errorf("expected alloc 200, got %v", alloc)
	}
	m.Free(b)
}

func TestUtilization(t *testing.T) {
	m := newslicemalloc(1024 * 1024)
	defer m.Release()

	if x := m.Utilization(); x != 0 {
		t.Errorf("expected zero utilization, got %v", x)
	}
	a := m.Malloc(headersize) // payload == headersize, so 50%
	if x := m.Utilization(); x != 50.0 {
		t.Errorf("expected 50%%, got %v", x)
	}
	m.Free(a)
}

func TestStats(t *testing.T) {
	m := newslicemalloc(1024 * 1024)
	defer m.Release()

	a, b := m.Malloc(64), m.Malloc(64)
	m.Free(a)         // mid-list, stays carved
	c := m.Malloc(32) // reuses a's block
	m.Free(b)         // tail, shrinks
	m.Free(c)         // tail again once b is gone, shrinks

	stats := m.Stats()
	if x := stats["n.extends"].(int64); x != 2 {
		t.Errorf("expected 2 extends, got %v", x)
	}
	if x := stats["n.reused"].(int64); x != 1 {
		t.Errorf("expected 1 reuse, got %v", x)
	}
	if x := stats["n.shrinks"].(int64); x != 2 {
		t.Errorf("expected 2 shrinks, got %v", x)
	}
	if x := stats["n.frees"].(int64); x != 3 {
		t.Errorf("expected 3 frees, got %v", x)
	}
	if x := stats["n.blocks"].(int64); x != 0 {
		t.Errorf("expected 0 blocks, got %v", x)
	}
}
