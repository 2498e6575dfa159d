package reconcile

import (
	"context"
	"log/slog"
	"sync"
)

// Task is a unit of reconciliation work.
type Task func(ctx context.Context) error

// WorkerPool runs reconciliation tasks concurrently and collects their
// errors.
type WorkerPool struct {
	workerCount int
	taskQueue   chan Task
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
	logger      *slog.Logger

	mu     sync.Mutex
	closed bool
	errs   []error
}

func NewWorkerPool(ctx context.Context, workerCount int, logger *slog.Logger) *WorkerPool {
	poolCtx, cancel := context.WithCancel(ctx)
	return &WorkerPool{
		workerCount: workerCount,
		taskQueue:   make(chan Task, workerCount*2),
		ctx:         poolCtx,
		cancel:      cancel,
		logger:      logger,
	}
}

// Start launches worker goroutines
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.workerCount; i++ {
		wp.wg.Add(1)
		go wp.worker(i)
	}
}

// Submit adds a task to the queue (non-blocking with context check).
// Submitting after Wait has drained the pool is a no-op.
func (wp *WorkerPool) Submit(task Task) {
	wp.mu.Lock()
	closed := wp.closed
	wp.mu.Unlock()
	if closed {
		wp.logger.Warn("queue closed, task not submitted")
		return
	}

	select {
	case wp.taskQueue <- task:
	case <-wp.ctx.Done():
		wp.logger.Warn("pool shutting down, task not submitted")
	}
}

// Wait blocks until all submitted tasks complete and returns the
// errors they produced.
func (wp *WorkerPool) Wait() []error {
	wp.mu.Lock()
	if !wp.closed {
		close(wp.taskQueue)
		wp.closed = true
	}
	wp.mu.Unlock()

	wp.wg.Wait()

	wp.mu.Lock()
	defer wp.mu.Unlock()
	return wp.errs
}

// Shutdown cancels all workers and waits for completion
func (wp *WorkerPool) Shutdown() {
	wp.cancel()
	wp.Wait()
}

func (wp *WorkerPool) worker(id int) {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		select {
		case <-wp.ctx.Done():
			wp.logger.Info("context cancelled, worker stopping", "worker", id)
			return
		default:
		}

		if err := task(wp.ctx); err != nil {
			wp.logger.Error("task failed", "worker", id, "error", err)
			wp.mu.Lock()
			wp.errs = append(wp.errs, err)
			wp.mu.Unlock()
		}
	}
}
