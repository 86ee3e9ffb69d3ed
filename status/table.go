package status

import (
	"slices"
	"sync"
)

// Table lazily allocates one metric per key; callers keep the returned pointer
// and write it without touching the table again
type Table[T any] struct {
	mu    sync.Mutex
	items map[string]*T
}

func newTable[T any]() *Table[T] {
	return &Table[T]{items: make(map[string]*T)}
}

// Get returns the metric for key, allocating it on first use
func (t *Table[T]) Get(key string) *T {
	t.mu.Lock()
	defer t.mu.Unlock()
	ptr, ok := t.items[key]
	if !ok {
		ptr = new(T)
		t.items[key] = ptr
	}
	return ptr
}

// Len is the number of allocated metrics
func (t *Table[T]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.items)
}

// each visits metrics in key order
func (t *Table[T]) each(fn func(key string, ptr *T)) {
	t.mu.Lock()
	keys := make([]string, 0, len(t.items))
	for k := range t.items {
		keys = append(keys, k)
	}
	ptrs := make([]*T, len(keys))
	slices.Sort(keys)
	for i, k := range keys {
		ptrs[i] = t.items[k]
	}
	t.mu.Unlock()

	for i, k := range keys {
		fn(k, ptrs[i])
	}
}
