package fsm

import "fmt"

// NewMachine creates an empty FSM
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes: make(map[StateID]*Node[T]),
	}
}

// AddState adds a node; the first added state becomes the initial state
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{ID: id, Name: name}
	m.nodes[id] = node
	if m.initial == StateNone {
		m.initial = id
	}
	return node
}

// SetInitial overrides the initial state
func (m *Machine[T]) SetInitial(id StateID) {
	m.initial = id
}

// AddTransition appends a transition to the source node
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) error {
	node, ok := m.nodes[sourceID]
	if !ok {
		return fmt.Errorf("transition from unknown state %d", sourceID)
	}
	if _, ok := m.nodes[t.TargetID]; !ok {
		return fmt.Errorf("transition to unknown state %d", t.TargetID)
	}
	node.Transitions = append(node.Transitions, t)
	return nil
}

// OnEnter registers an entry action
func (m *Machine[T]) OnEnter(id StateID, fn ActionFunc[T]) {
	if node, ok := m.nodes[id]; ok {
		node.OnEnter = append(node.OnEnter, fn)
	}
}

// OnExit registers an exit action
func (m *Machine[T]) OnExit(id StateID, fn ActionFunc[T]) {
	if node, ok := m.nodes[id]; ok {
		node.OnExit = append(node.OnExit, fn)
	}
}

// Init enters the initial state without running entry actions
func (m *Machine[T]) Init() error {
	if _, ok := m.nodes[m.initial]; !ok {
		return fmt.Errorf("initial state %d not found", m.initial)
	}
	m.active = m.initial
	return nil
}

// Current returns the active state
func (m *Machine[T]) Current() StateID {
	return m.active
}

// Name returns the name of a state
func (m *Machine[T]) Name(id StateID) string {
	if node, ok := m.nodes[id]; ok {
		return node.Name
	}
	return fmt.Sprintf("state(%d)", id)
}

// Fire routes an event through the active state
// Returns true if a transition occurred; unmatched events are ignored
func (m *Machine[T]) Fire(ctx T, event EventType) bool {
	node, ok := m.nodes[m.active]
	if !ok {
		return false
	}
	for _, trans := range node.Transitions {
		if trans.Event != event {
			continue
		}
		if trans.Guard != nil && !trans.Guard(ctx) {
			continue
		}
		m.transition(ctx, node, trans)
		return true
	}
	return false
}

// transition runs exit, transition and entry actions in order
// Active state is updated before entry actions so they observe the target
func (m *Machine[T]) transition(ctx T, from *Node[T], trans Transition[T]) {
	target, ok := m.nodes[trans.TargetID]
	if !ok {
		panic(fmt.Sprintf("FSM: transition to unknown state ID %d", trans.TargetID))
	}

	for _, fn := range from.OnExit {
		fn(ctx)
	}
	if trans.Action != nil {
		trans.Action(ctx)
	}

	m.active = target.ID

	for _, fn := range target.OnEnter {
		fn(ctx)
	}
	if m.OnTransition != nil {
		m.OnTransition(ctx, from.ID, target.ID)
	}
}
