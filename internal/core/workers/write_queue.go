package workers

import (
	"context"
	"errors"
	"log"
)

var ErrQueueStopped = errors.New("write queue stopped")

type writeJob struct {
	ctx    context.Context
	fn     func(ctx context.Context) error
	result chan error
}

// WriteQueue runs store mutations one at a time, in submission order.
type WriteQueue struct {
	jobs chan writeJob
	done chan struct{}
}

func NewWriteQueue(size int) *WriteQueue {
	if size < 1 {
		size = 1
	}
	return &WriteQueue{
		jobs: make(chan writeJob, size),
		done: make(chan struct{}),
	}
}

func (q *WriteQueue) Start(ctx context.Context) {
	go func() {
		log.Println("[WORKER] Write queue started")
		for {
			select {
			case job := <-q.jobs:
				q.process(job)
			case <-ctx.Done():
				close(q.done)
				log.Println("[WORKER] Write queue shutting down...")
				return
			}
		}
	}()
}

// Do enqueues fn and waits for it to finish.
func (q *WriteQueue) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	job := writeJob{
		ctx:    ctx,
		fn:     fn,
		result: make(chan error, 1),
	}

	select {
	case q.jobs <- job:
	case <-ctx.Done():
		return ctx.Err()
	case <-q.done:
		return ErrQueueStopped
	}

	// once queued the job either runs or is rejected by process, so the
	// caller always learns whether fn ran
	select {
	case err := <-job.result:
		return err
	case <-q.done:
		select {
		case err := <-job.result:
			return err
		default:
			return ErrQueueStopped
		}
	}
}

func (q *WriteQueue) process(job writeJob) {
	if err := job.ctx.Err(); err != nil {
		job.result <- err
		return
	}
	job.result <- job.fn(job.ctx)
}
