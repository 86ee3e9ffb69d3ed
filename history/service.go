package history

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/baebae/core"
	"github.com/lixenwraith/baebae/toss"
)

const (
	queueSize    = 32
	writeTimeout = 2 * time.Second
)

// Service writes results on a background goroutine and keeps a summary line current
// An empty path disables persistence; Record is then a no-op
type Service struct {
	path string
	size int

	store   *Store
	queue   chan toss.Result
	done    chan struct{}
	summary atomic.Pointer[string]

	mu     sync.Mutex
	closed bool
}

// NewService creates a history service
func NewService() *Service {
	return &Service{size: 10}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "history"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: database path (string), args[1]: summary window (int)
func (s *Service) Init(args ...any) error {
	if len(args) > 0 {
		if p, ok := args[0].(string); ok {
			s.path = p
		}
	}
	if len(args) > 1 {
		if n, ok := args[1].(int); ok && n > 0 {
			s.size = n
		}
	}
	return nil
}

// Start implements service.Service
func (s *Service) Start() error {
	if s.path == "" {
		log.Printf("[history] disabled: no database path")
		return nil
	}

	store, err := Open(s.path)
	if err != nil {
		return err
	}
	s.store = store
	s.queue = make(chan toss.Result, queueSize)
	s.done = make(chan struct{})
	s.refresh()

	core.Go(s.writer)
	log.Printf("[history] recording to %s", s.path)
	return nil
}

// Stop implements service.Service
// Drains queued results before closing the database
func (s *Service) Stop() error {
	s.mu.Lock()
	if s.closed || s.queue == nil {
		s.closed = true
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.queue)
	s.mu.Unlock()

	<-s.done
	return s.store.Close()
}

// Enabled reports whether results are persisted
func (s *Service) Enabled() bool {
	return s.store != nil
}

// Record queues a result for storage; usable as a toss.ResultHook
// Drops the result when the queue is full
func (s *Service) Record(r toss.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.queue == nil {
		return
	}
	select {
	case s.queue <- r:
	default:
		log.Printf("[history] queue full, dropped toss %s", r.ID)
	}
}

// Summary returns the latest summary line, empty when disabled
func (s *Service) Summary() string {
	if p := s.summary.Load(); p != nil {
		return *p
	}
	return ""
}

func (s *Service) writer() {
	defer close(s.done)
	for r := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := s.store.Insert(ctx, RecordOf(r)); err != nil {
			log.Printf("[history] %v", err)
		}
		cancel()
		s.refresh()
	}
}

func (s *Service) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	recent, err := s.store.Recent(ctx, s.size)
	if err != nil {
		log.Printf("[history] recent: %v", err)
		return
	}
	total, err := s.store.Count(ctx)
	if err != nil {
		log.Printf("[history] count: %v", err)
		return
	}
	line := Summary(recent, total, time.Now())
	s.summary.Store(&line)
}
