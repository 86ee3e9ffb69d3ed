package status

import (
	"math"
	"sync/atomic"
)

// Gauge holds a float64 sample behind an atomic word
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Set(v float64) {
	g.bits.Store(math.Float64bits(v))
}

func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Max raises the gauge to v if v is larger and reports the value held afterwards
func (g *Gauge) Max(v float64) float64 {
	for {
		old := g.bits.Load()
		cur := math.Float64frombits(old)
		if v <= cur {
			return cur
		}
		if g.bits.CompareAndSwap(old, math.Float64bits(v)) {
			return v
		}
	}
}
