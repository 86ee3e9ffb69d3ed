package engine

import (
	"container/heap"
	"time"
)

// Task is a one-shot callback scheduled on a Scheduler
type Task struct {
	deadline  time.Time
	seq       uint64
	fn        func()
	index     int
	cancelled bool
	fired     bool
}

// Cancel prevents a pending task from running
// Safe to call on nil, fired or already cancelled tasks
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.cancelled = true
}

// Pending reports whether the task is still waiting to fire
func (t *Task) Pending() bool {
	return t != nil && !t.cancelled && !t.fired
}

// Deadline returns the time the task becomes due
func (t *Task) Deadline() time.Time {
	return t.deadline
}

// Scheduler is a deadline queue polled from the frame loop
// Callbacks run on the polling goroutine; no internal locking
type Scheduler struct {
	clock Clock
	queue taskQueue
	seq   uint64
}

// NewScheduler creates a scheduler reading deadlines from clock
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = NewSystemClock()
	}
	return &Scheduler{clock: clock}
}

// Schedule queues fn to run once delay has elapsed
func (s *Scheduler) Schedule(delay time.Duration, fn func()) *Task {
	s.seq++
	t := &Task{
		deadline: s.clock.Now().Add(delay),
		seq:      s.seq,
		fn:       fn,
	}
	heap.Push(&s.queue, t)
	return t
}

// Poll runs every due task in deadline order and returns the count run
// Tasks scheduled by a callback with zero delay run in the same poll
func (s *Scheduler) Poll() int {
	now := s.clock.Now()
	ran := 0
	for s.queue.Len() > 0 {
		next := s.queue[0]
		if next.cancelled {
			heap.Pop(&s.queue)
			continue
		}
		if next.deadline.After(now) {
			break
		}
		heap.Pop(&s.queue)
		next.fired = true
		next.fn()
		ran++
	}
	return ran
}

// Len returns the number of queued tasks, including cancelled ones not yet discarded
func (s *Scheduler) Len() int {
	return s.queue.Len()
}

// Clear cancels every queued task
func (s *Scheduler) Clear() {
	for _, t := range s.queue {
		t.cancelled = true
	}
	s.queue = s.queue[:0]
}

type taskQueue []*Task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].deadline.Equal(q[j].deadline) {
		return q[i].seq < q[j].seq
	}
	return q[i].deadline.Before(q[j].deadline)
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*Task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
