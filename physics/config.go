package physics

// Config holds tuning for SimWorld
type Config struct {
	// Step is the fixed integration step in seconds
	Step float64

	// Gravity is the world Y acceleration (negative is down)
	Gravity float64

	// FloorY is the table surface height
	FloorY float64

	// WallHalfX, WallHalfZ are the inner wall offsets from the origin
	WallHalfX float64
	WallHalfZ float64

	// RestingSpeed zeroes bounce velocity below this normal speed
	RestingSpeed float64

	// ContactFriction is the horizontal slide decay rate while touching the floor
	ContactFriction float64

	// ContactAngularDrag is the spin decay rate while touching the floor
	ContactAngularDrag float64

	// TipStiffness drives the flat axis toward the nearest vertical on contact
	TipStiffness float64

	// ContactSlop is the separation tolerance before a floor contact ends
	ContactSlop float64

	// PairRestitution is used for block-to-block impacts
	PairRestitution float64

	// ImpactSpin scales the angular impulse of a floor impact at the lowest corner
	ImpactSpin float64

	// ImpactSpinSpeed is the approach speed above which impacts induce spin
	ImpactSpinSpeed float64

	// EdgeTolerance treats body axes this close to horizontal as level
	EdgeTolerance float64

	// SleepEnergy and SleepSteps put quiet grounded bodies to sleep
	SleepEnergy float64
	SleepSteps  int
}

// DefaultConfig returns the table used by the toss game
func DefaultConfig() Config {
	return Config{
		Step:               1.0 / 60.0,
		Gravity:            -9.81,
		FloorY:             0,
		WallHalfX:          3.85,
		WallHalfZ:          7.0,
		RestingSpeed:       0.15,
		ContactFriction:    4.0,
		ContactAngularDrag: 3.0,
		TipStiffness:       40.0,
		ContactSlop:        0.02,
		PairRestitution:    0.3,
		ImpactSpin:         0.5,
		ImpactSpinSpeed:    0.5,
		EdgeTolerance:      0.05,
		SleepEnergy:        0.001,
		SleepSteps:         30,
	}
}
