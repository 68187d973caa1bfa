package worker

import (
	"errors"
	"sync"

	"go.uber.org/zap"
)

var (
	ErrStopped   = errors.New("worker: pool stopped")
	ErrQueueFull = errors.New("worker: queue full")
)

// queueDepth 每個 worker 可排隊的任務數
const queueDepth = 64

// Task represents a unit of work executed by the pool.
type Task func()

// Pool runs submitted tasks in the background. Submit never blocks the
// caller. Stop waits for queued tasks.
type Pool interface {
	Submit(Task) error
	Stop()
}

// NewPool creates a pool with n workers and a queue of n*queueDepth tasks.
// n<=0 defaults to 1. A panicking task is logged and does not kill its worker.
func NewPool(n int, logger *zap.Logger) Pool {
	if n <= 0 {
		n = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &pool{jobs: make(chan Task, n*queueDepth), logger: logger}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.run(job)
			}
		}()
	}
	return p
}

type pool struct {
	jobs   chan Task
	wg     sync.WaitGroup
	logger *zap.Logger

	mu      sync.RWMutex
	stopped bool
}

func (p *pool) Submit(t Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrStopped
	}
	select {
	case p.jobs <- t:
		return nil
	default:
		return ErrQueueFull
	}
}

func (p *pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}

func (p *pool) run(job Task) {
	if job == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("worker task panicked", zap.Any("panic", r))
		}
	}()
	job()
}

// Sync runs every task on the caller's goroutine. Used in tests.
type Sync struct{}

func (Sync) Submit(t Task) error {
	if t != nil {
		t()
	}
	return nil
}

func (Sync) Stop() {}
