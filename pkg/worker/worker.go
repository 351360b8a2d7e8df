package worker

import (
	"context"
	"sync"

	"github.com/VladPetriv/busbooker/pkg/logger"
)

type job[T any] struct {
	ID   string
	Data T
}

// Func is a function that handles a worker job.
type Func[T any] func(ctx context.Context, id string, data T) error

// Pool is a worker pool with a bounded queue.
type Pool[T any] struct {
	workersCount int
	handlerFunc  Func[T]
	logger       *logger.Logger

	jobs chan job[T]
	wg   *sync.WaitGroup
	mu   *sync.Mutex

	closeOnce sync.Once
	closed    bool
}

// Options represents options for creating a new Pool.
type Options[T any] struct {
	WorkersCount int
	QueueSize    int
	HandlerFunc  Func[T]
	Logger       *logger.Logger
}

// NewPool creates a new worker pool.
func NewPool[T any](opts Options[T]) *Pool[T] {
	workersCount := opts.WorkersCount
	if workersCount <= 0 {
		workersCount = 1
	}

	return &Pool[T]{
		workersCount: workersCount,
		handlerFunc:  opts.HandlerFunc,
		logger:       opts.Logger.Named("worker"),
		jobs:         make(chan job[T], max(opts.QueueSize, 0)),
		wg:           &sync.WaitGroup{},
		mu:           &sync.Mutex{},
	}
}

// Start starts the number of workers that were passed in constructor.
// Workers return when ctx is done, dropping the jobs left in the queue.
func (p *Pool[T]) Start(ctx context.Context) {
	for range p.workersCount {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool[T]) worker(ctx context.Context) {
	defer p.wg.Done()

	for {
		select {
		case <-ctx.Done():
			p.logger.Debug().Err(ctx.Err()).Msg("worker stopping due to context cancellation")
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}

			err := p.handlerFunc(ctx, job.ID, job.Data)
			if err != nil {
				p.logger.Error().Err(err).Str("jobID", job.ID).Msg("handle job")
			}
		}
	}
}

// Stop stops accepting jobs and waits until queued jobs are handled.
func (p *Pool[T]) Stop() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.jobs)
		p.mu.Unlock()
	})

	p.wg.Wait()
}

// AddJob adds a new job to the worker pool without blocking.
// It returns false when the job was dropped because the queue is full or the pool is stopped.
// The id is used only to identify the job in logs.
func (p *Pool[T]) AddJob(id string, data T) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return false
	}

	select {
	case p.jobs <- job[T]{ID: id, Data: data}:
		return true
	default:
		p.logger.Warn().Str("jobID", id).Msg("worker queue is full, job dropped")
		return false
	}
}
