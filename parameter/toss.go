package parameter

import (
	"time"

	"github.com/lixenwraith/baebae/vmath"
)

// Fixed-step simulation
const (
	// PhysicsStep is the fixed simulation step in seconds
	PhysicsStep = 1.0 / 60.0

	// SimulationSpeed scales wall time fed into the accumulator
	SimulationSpeed = 2.0

	// MaxFrameDelta clamps a single frame delta (tab resume, debugger stall)
	MaxFrameDelta = 100 * time.Millisecond
)

// Launch shaping
const (
	FlightDampingBase     = 0.05
	FlightDampingFriction = 0.1
	FlightGravityScale    = 1.2
	LaunchImpulseScale    = 18.0
	LaunchTorqueScaleX    = 12.0
	LaunchTorqueScaleYZ   = 6.0
)

// Rest pose
const (
	RestDamping      = 0.2
	RestGravityScale = 0.0
)

// Toss lifecycle timing
const (
	EscalationDelay  = 2500 * time.Millisecond
	EscalatedDamping = 5.0
	TossTimeout      = 6000 * time.Millisecond
	MilestoneDisplay = 2000 * time.Millisecond
	NotificationHold = 2500 * time.Millisecond
)

// Settle detection
const (
	// SettleEnergy is the combined squared-speed ceiling for a quiet step
	SettleEnergy = 0.3

	// SettleSteps is exceeded by the consecutive quiet-step count to conclude
	SettleSteps = 60
)

// Collision feedback thresholds (left body speed, m/s)
const (
	ImpactAudibleSpeed = 0.3
	ImpactHapticSpeed  = 1.5
)

// Haptic patterns
var (
	LaunchVibration    = []time.Duration{30 * time.Millisecond, 50 * time.Millisecond, 30 * time.Millisecond}
	ImpactVibration    = []time.Duration{15 * time.Millisecond}
	MilestoneVibration = []time.Duration{
		100 * time.Millisecond, 50 * time.Millisecond,
		100 * time.Millisecond, 50 * time.Millisecond,
		300 * time.Millisecond,
	}
)

// Shake input
const (
	ShakeAcceleration = 15.0
	ShakeCooldown     = time.Second
)

// StreakThreshold is the consecutive Affirmative count that triggers a milestone
const StreakThreshold = 3

// BlockConfig is the configured rest pose of one moon block
type BlockConfig struct {
	Position [3]float64
	Rotation vmath.EulerDeg
}

// Mirror-configured pair; the left rotation defines the shared up axis
var (
	BlockLeft = BlockConfig{
		Position: [3]float64{0, 6.5, -1.9},
		Rotation: vmath.EulerDeg{X: -90, Y: 180, Z: 270},
	}
	BlockRight = BlockConfig{
		Position: [3]float64{0, 6.5, 1.9},
		Rotation: vmath.EulerDeg{X: -90, Y: 180, Z: -270},
	}
)

// Block body properties
const (
	BlockMass        = 0.5
	BlockRestitution = 0.3
	BlockFriction    = 0.65
	BlockHalfLength  = 0.9
	BlockHalfWidth   = 0.45
	BlockHalfDepth   = 0.18
)

// IdentifierDigits is the length of a YYYYMMDD personal identifier
const IdentifierDigits = 8
