package service

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
)

// ErrCircularDependency is returned when service dependencies form a cycle
var ErrCircularDependency = errors.New("circular dependency detected in services")

// Hub owns the background services of a session and drives their lifecycle
// in dependency order; Stop runs in the reverse of Start
type Hub struct {
	mu       sync.Mutex
	services map[string]Service
	names    []string // registration order
	order    []string // dependency order, set by InitAll
	running  []string
}

func NewHub() *Hub {
	return &Hub{services: make(map[string]Service)}
}

// Register adds svc; names must be unique
func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, dup := h.services[name]; dup {
		return fmt.Errorf("service already registered: %s", name)
	}
	h.services[name] = svc
	h.names = append(h.names, name)
	h.order = nil
	return nil
}

// Lookup returns the named service as T
func Lookup[T Service](h *Hub, name string) (T, bool) {
	h.mu.Lock()
	svc, ok := h.services[name]
	h.mu.Unlock()

	typed, ok2 := svc.(T)
	return typed, ok && ok2
}

// InitAll orders services by dependency and initializes each with args[name]
// A failure stops every service initialized before it
func (h *Hub) InitAll(args map[string][]any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	order, err := h.resolve()
	if err != nil {
		return err
	}
	h.order = order

	for i, name := range order {
		if err := h.services[name].Init(args[name]...); err != nil {
			h.stopReverse(order[:i])
			return fmt.Errorf("service %s init failed: %w", name, err)
		}
	}
	return nil
}

// StartAll starts services in dependency order, unwinding on the first failure
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.order == nil {
		return errors.New("services not initialized")
	}

	h.running = h.running[:0]
	for _, name := range h.order {
		if err := h.services[name].Start(); err != nil {
			h.stopReverse(h.running)
			h.running = nil
			return fmt.Errorf("service %s start failed: %w", name, err)
		}
		h.running = append(h.running, name)
	}
	return nil
}

// StopAll stops running services newest first; safe to call repeatedly
func (h *Hub) StopAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopReverse(h.running)
	h.running = nil
}

func (h *Hub) stopReverse(names []string) {
	for _, name := range slices.Backward(names) {
		if err := h.services[name].Stop(); err != nil {
			log.Printf("[service] %s stop: %v", name, err)
		}
	}
}

// resolve is a depth-first walk in registration order; a dependency always
// precedes its dependents
func (h *Hub) resolve() ([]string, error) {
	const (
		unseen = iota
		visiting
		done
	)
	state := make(map[string]int, len(h.names))
	order := make([]string, 0, len(h.names))

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("%w: %s", ErrCircularDependency, name)
		}
		state[name] = visiting
		for _, dep := range h.services[name].Dependencies() {
			if _, ok := h.services[dep]; !ok {
				return fmt.Errorf("service %s depends on unregistered service: %s", name, dep)
			}
			if err := visit(dep); err != nil {
				return err
			}
		}
		state[name] = done
		order = append(order, name)
		return nil
	}

	for _, name := range h.names {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return order, nil
}
