package fate

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
	"time"
)

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

// Spirit supplies uniform draws in [0, 1)
type Spirit interface {
	Float64() float64
}

// SystemClock reads the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// CryptoSpirit draws from crypto/rand, falling back to math/rand
type CryptoSpirit struct{}

// Float64 uses the top 53 bits for a uniform float in [0, 1)
func (CryptoSpirit) Float64() float64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return mrand.Float64()
	}
	n := binary.LittleEndian.Uint64(buf[:]) >> 11
	return float64(n) / float64(1<<53)
}

// SeededSpirit is a replayable source for batch runs
type SeededSpirit struct {
	r *mrand.Rand
}

// NewSeededSpirit creates a PCG-backed spirit
func NewSeededSpirit(seed uint64) *SeededSpirit {
	return &SeededSpirit{r: mrand.New(mrand.NewPCG(seed, 0))}
}

func (s *SeededSpirit) Float64() float64 { return s.r.Float64() }

// FixedSpirit always returns the same draw
type FixedSpirit float64

func (s FixedSpirit) Float64() float64 { return float64(s) }
