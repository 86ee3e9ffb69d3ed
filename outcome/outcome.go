// Package outcome classifies resting block orientations into divination results.
package outcome

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/baebae/vmath"
)

// Face is the resting side of one block
type Face int

const (
	FaceDown Face = iota
	FaceUp
	Edge
)

func (f Face) String() string {
	switch f {
	case FaceUp:
		return "up"
	case FaceDown:
		return "down"
	default:
		return "edge"
	}
}

// Kind is the pair-level outcome
type Kind int

const (
	Anomaly            Kind = iota // standing block
	NegativePair                   // laughing pair, both up
	ConcordantNegative             // shadow pair, both down
	Affirmative                    // sacred pair, one up one down
)

// Kinds lists every outcome in precedence order
var Kinds = []Kind{Anomaly, NegativePair, ConcordantNegative, Affirmative}

func (k Kind) String() string {
	switch k {
	case Anomaly:
		return "anomaly"
	case NegativePair:
		return "negative-pair"
	case ConcordantNegative:
		return "concordant-negative"
	case Affirmative:
		return "affirmative"
	default:
		return "unknown"
	}
}

// Face thresholds on the world Y component of the rotated up axis
const (
	upThreshold   = 0.5
	downThreshold = -0.5
)

// FaceOfY classifies a world-space vertical component
func FaceOfY(y float64) Face {
	switch {
	case y > upThreshold:
		return FaceUp
	case y < downThreshold:
		return FaceDown
	default:
		return Edge
	}
}

// FaceOf rotates the local up axis by orientation and classifies the result
func FaceOf(orientation mgl64.Quat, up mgl64.Vec3) Face {
	return FaceOfY(vmath.WorldY(orientation, up))
}

// Resolve maps two faces to an outcome; first match wins
func Resolve(left, right Face) Kind {
	switch {
	case left == Edge || right == Edge:
		return Anomaly
	case left == FaceUp && right == FaceUp:
		return NegativePair
	case left == FaceDown && right == FaceDown:
		return ConcordantNegative
	default:
		return Affirmative
	}
}

// Classify resolves a pair of orientations against the shared up axis
func Classify(left, right mgl64.Quat, up mgl64.Vec3) Kind {
	return Resolve(FaceOf(left, up), FaceOf(right, up))
}
