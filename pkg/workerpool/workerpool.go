package workerpool

import (
	"context"
)

// Task is a unit of work for the pool. Fn must be safe to run concurrently
// with other tasks. ResultC, when non-nil, receives the outcome.
type Task struct {
	Fn      func() (any, error)
	ResultC chan Result
}

type Result struct {
	Value any
	Err   error
}

type WorkerPool struct {
	tasks  chan Task
	ctx    context.Context
	cancel context.CancelFunc
}

// NewWorkerPool starts workerCount workers reading from a queue of queueSize.
func NewWorkerPool(workerCount, queueSize int) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())
	wp := &WorkerPool{
		tasks:  make(chan Task, queueSize),
		ctx:    ctx,
		cancel: cancel,
	}
	for i := 0; i < workerCount; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	for {
		select {
		case <-wp.ctx.Done():
			return
		case task := <-wp.tasks:
			value, err := task.Fn()
			if task.ResultC != nil {
				task.ResultC <- Result{Value: value, Err: err}
			}
		}
	}
}

// Submit enqueues a task. Blocks when the queue is full.
func (wp *WorkerPool) Submit(task Task) {
	wp.tasks <- task
}

// Close stops the workers. Queued tasks that were not picked up are dropped.
func (wp *WorkerPool) Close() {
	wp.cancel()
}
