package fsm

// StateID is a unique identifier for a node
type StateID int

// StateNone marks an uninitialized machine
const StateNone StateID = 0

// EventType identifies a trigger routed to the machine
type EventType int

// Machine is a flat finite state machine
// T is the context type passed to actions and guards
type Machine[T any] struct {
	nodes   map[StateID]*Node[T]
	initial StateID
	active  StateID

	// OnTransition observes every completed transition
	OnTransition func(ctx T, from, to StateID)
}

// Node represents a state
type Node[T any] struct {
	ID   StateID
	Name string

	// Lifecycle actions
	OnEnter []ActionFunc[T]
	OnExit  []ActionFunc[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	Event    EventType
	TargetID StateID
	Guard    GuardFunc[T] // nil = always true
	Action   ActionFunc[T]
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)
