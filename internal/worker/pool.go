package worker

import (
	"context"
	"errors"
	"sync"
)

// ErrPoolClosed is returned when a Submit is attempted after Close.
var ErrPoolClosed = errors.New("worker pool closed")

// Task is a unit of work submitted to the Pool.
type Task func(ctx context.Context)

// Pool runs tasks on a fixed number of goroutines. It parallelizes
// independent blocking lookups against the graph service; workers share
// nothing except the thread-safe memo table.
type Pool struct {
	tasks   chan Task
	wg      sync.WaitGroup
	workers int
	mu      sync.Mutex
	closed  bool
}

// NewPool creates a pool with the given number of workers and queue capacity.
func NewPool(workers, queue int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if queue <= 0 {
		queue = workers * 2
	}
	return &Pool{
		tasks:   make(chan Task, queue),
		workers: workers,
	}
}

// Start launches the worker goroutines. They run until the context is
// cancelled or Close is called.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case task, ok := <-p.tasks:
					if !ok {
						return
					}
					task(ctx)
				}
			}
		}()
	}
}

// Submit enqueues a task. Returns ErrPoolClosed after Close.
func (p *Pool) Submit(task Task) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPoolClosed
	}
	p.tasks <- task
	return nil
}

// Close stops accepting new tasks and waits for the queue to drain.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()
	p.wg.Wait()
}
