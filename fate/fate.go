package fate

import (
	"math"
	"time"
	"unicode/utf16"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/baebae/vmath"
)

// Formula constants
const (
	neutralHash   = 0.5
	neutralSeed   = 0.5
	hashModulus   = 800
	hashFloor     = 0.1
	minIterations = 10
	iterationSpan = 50

	growthBase     = 3.6
	growthLatSpan  = 0.4
	growthTimeSpan = 400

	synodicMonth = 29.5305882
	julianOffset = 694039.09

	baseForce      = 0.14
	forceChaos     = 0.05
	forceMoon      = 0.02
	torqueChaosX   = 0.05
	torqueSpiritX  = 0.01
	torqueYZ       = 0.03
	asymmetrySpan  = 0.02
	baseFriction   = 0.65
	frictionFlux   = 0.1
	frictionSpirit = 0.05
)

// DefaultLocation is used when location entropy is on but no fix is available
var DefaultLocation = Location{Lat: 25.03, Lng: 121.56}

// Location is a geographic coordinate in degrees
type Location struct {
	Lat, Lng float64
}

// Asymmetry holds per-block multipliers on the x torque component
type Asymmetry struct {
	Left, Right float64
}

// Parameters is the launch bundle for one toss
type Parameters struct {
	Force     float64
	Torque    mgl64.Vec3
	Asymmetry Asymmetry
	Friction  float64
}

// ChaosState is the logistic map input for one toss
type ChaosState struct {
	Seed       float64
	Iterations int
	R          float64
}

// Engine generates launch parameters from injected entropy
type Engine struct {
	clock  Clock
	spirit Spirit
}

// NewEngine creates an engine; nil seams fall back to the system clock and crypto spirit
func NewEngine(clock Clock, spirit Spirit) *Engine {
	if clock == nil {
		clock = SystemClock{}
	}
	if spirit == nil {
		spirit = CryptoSpirit{}
	}
	return &Engine{clock: clock, spirit: spirit}
}

// Generate computes launch parameters; it never fails
func (e *Engine) Generate(identifier string, location *Location, useLocation bool) Parameters {
	now := e.clock.Now()
	spirit := vmath.Clamp(vmath.FiniteOr(e.spirit.Float64(), 0.5), 0, 1)

	loc := DefaultLocation
	if location != nil && vmath.Finite(location.Lat) && vmath.Finite(location.Lng) {
		loc = *location
	}

	hash := HashIdentity(identifier)
	energy := MoonEnergy(MoonPhase(now))
	flux := Flux(now, loc, useLocation)
	state := NewChaosState(hash, flux, now, loc, useLocation)
	chaos := ComputeChaos(state.Seed, state.R, state.Iterations)

	return combine(chaos, energy, flux, spirit, now.Hour())
}

// combine maps chaos output and auxiliary terms into the final bundle
func combine(chaos, moonEnergy, flux, spirit float64, hour int) Parameters {
	chaos = vmath.Clamp(vmath.FiniteOr(chaos, neutralSeed), 0, 1)
	angle := float64(hour) / 12 * math.Pi

	return Parameters{
		Force: baseForce + (chaos-0.5)*forceChaos + moonEnergy*forceMoon,
		Torque: mgl64.Vec3{
			(chaos-0.5)*torqueChaosX + (spirit-0.5)*torqueSpiritX,
			(math.Sin(chaos*math.Pi) - 0.5) * torqueYZ,
			(math.Cos(chaos*math.Pi) - 0.5) * torqueYZ,
		},
		Asymmetry: Asymmetry{
			Left:  1 + math.Sin(angle)*asymmetrySpan,
			Right: 1 + math.Cos(angle)*asymmetrySpan,
		},
		Friction: baseFriction + flux*frictionFlux + spirit*frictionSpirit,
	}
}

// HashIdentity maps an identifier to [0.1, 0.9) with a 31-multiplier rolling hash
// over UTF-16 code units, wrapped to signed 32-bit; empty input is neutral
func HashIdentity(identifier string) float64 {
	if identifier == "" {
		return neutralHash
	}
	var h int32
	for _, unit := range utf16.Encode([]rune(identifier)) {
		h = h*31 + int32(unit)
	}
	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}
	return hashFloor + float64(abs%hashModulus)/1000
}

// MoonPhase approximates the synodic phase in [0, 1) for the calendar date of t
func MoonPhase(t time.Time) float64 {
	year, month, day := t.Date()
	y, m := float64(year), float64(month)
	if m < 3 {
		y--
		m += 12
	}
	m++
	jd := 365.25*y + 30.6*m + float64(day) - julianOffset
	jd /= synodicMonth
	phase := vmath.Frac(jd)
	if phase < 0 || !vmath.Finite(phase) {
		return 0
	}
	return phase
}

// MoonEnergy peaks at 1 mid-cycle and falls to 0 at either end
func MoonEnergy(phase float64) float64 {
	return 1 - math.Abs(phase-0.5)*2
}

// Flux derives a [0, 1) perturbation from location or the wall clock
func Flux(now time.Time, loc Location, useLocation bool) float64 {
	if useLocation {
		return math.Mod(math.Abs(loc.Lat*loc.Lng)*1000, 1)
	}
	ms := float64(now.UnixMilli())
	return (math.Sin(ms*0.001) + 1) * 0.5
}

// GrowthRate picks the logistic map parameter inside the chaotic regime
func GrowthRate(now time.Time, loc Location, useLocation bool) float64 {
	if useLocation {
		return growthBase + math.Mod(math.Abs(loc.Lat), growthLatSpan)
	}
	return growthBase + float64(now.UnixMilli()%growthTimeSpan)/1000
}

// ChaosIterations returns the iteration count for an identity hash
func ChaosIterations(hash float64) int {
	return minIterations + int(math.Floor(hash*iterationSpan))
}

// NewChaosState assembles the logistic map input for one toss
func NewChaosState(hash, flux float64, now time.Time, loc Location, useLocation bool) ChaosState {
	timeFrac := float64(now.UnixMilli()%1000) / 1000
	return ChaosState{
		Seed:       NormalizeSeed((hash + flux + timeFrac) / 3),
		Iterations: ChaosIterations(hash),
		R:          GrowthRate(now, loc, useLocation),
	}
}

// NormalizeSeed replaces degenerate seeds with 0.5
func NormalizeSeed(seed float64) float64 {
	if !vmath.Finite(seed) || seed <= 0 || seed >= 1 {
		return neutralSeed
	}
	return seed
}

// ComputeChaos iterates x = r*x*(1-x) from seed
func ComputeChaos(seed, r float64, iterations int) float64 {
	x := NormalizeSeed(seed)
	for i := 0; i < iterations; i++ {
		x = r * x * (1 - x)
	}
	return x
}
