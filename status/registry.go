package status

import (
	"fmt"
	"sync/atomic"

	"github.com/dustin/go-humanize"
)

// Registry collects the toss counters shown in the status bar and logged on exit
type Registry struct {
	Bools   *Table[atomic.Bool]
	Ints    *Table[atomic.Int64]
	Floats  *Table[Gauge]
	Strings *Table[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   newTable[atomic.Bool](),
		Ints:    newTable[atomic.Int64](),
		Floats:  newTable[Gauge](),
		Strings: newTable[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Len() + r.Ints.Len() + r.Floats.Len() + r.Strings.Len()
}

// Entry is one formatted metric
type Entry struct {
	Key   string
	Value string
}

// Snapshot formats every metric, grouped by type and sorted by key within a group
func (r *Registry) Snapshot() []Entry {
	entries := make([]Entry, 0, r.TotalCount())
	r.Ints.each(func(key string, v *atomic.Int64) {
		entries = append(entries, Entry{key, humanize.Comma(v.Load())})
	})
	r.Floats.each(func(key string, v *Gauge) {
		entries = append(entries, Entry{key, fmt.Sprintf("%.3f", v.Get())})
	})
	r.Bools.each(func(key string, v *atomic.Bool) {
		entries = append(entries, Entry{key, fmt.Sprintf("%t", v.Load())})
	})
	r.Strings.each(func(key string, v *AtomicString) {
		entries = append(entries, Entry{key, v.Load()})
	})
	return entries
}
