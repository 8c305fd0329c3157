package worker

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"aion/internal/domain"
	"aion/internal/providers/video"
)

// Pool runs synthesis on a fixed number of goroutines fed by a bounded queue.
type Pool struct {
	generator video.Generator
	jobs      domain.JobRepository
	logger    zerolog.Logger
	size      int

	queue    chan domain.Job
	done     chan struct{}
	stopOnce sync.Once

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewPool(generator video.Generator, jobs domain.JobRepository, logger zerolog.Logger, size, queueSize int) *Pool {
	if size <= 0 {
		size = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	return &Pool{
		generator: generator,
		jobs:      jobs,
		logger:    logger.With().Str("component", "worker_pool").Logger(),
		size:      size,
		queue:     make(chan domain.Job, queueSize),
		done:      make(chan struct{}),
	}
}

func (p *Pool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return fmt.Errorf("pool already started")
	}
	select {
	case <-p.done:
		return domain.ErrQueueClosed
	default:
	}
	ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.size; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	p.logger.Info().Int("workers", p.size).Int("queue", cap(p.queue)).Msg("synthesis pool started")
	return nil
}

// Dispatch enqueues job, blocking while the queue is full.
func (p *Pool) Dispatch(ctx context.Context, job domain.Job) error {
	select {
	case <-p.done:
		return domain.ErrQueueClosed
	default:
	}
	select {
	case p.queue <- job:
		return nil
	case <-p.done:
		return domain.ErrQueueClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop cancels running syntheses, waits for the workers and completes any job
// still queued without an artifact.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.done) })

	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	p.mu.Unlock()

	p.wg.Wait()

	for {
		select {
		case job := <-p.queue:
			if err := p.jobs.Complete(context.Background(), job.ID, ""); err != nil {
				p.logger.Error().Err(err).Str("job_id", job.ID).Msg("failed to complete queued job")
			}
		default:
			return
		}
	}
}

func (p *Pool) worker(ctx context.Context, n int) {
	defer p.wg.Done()
	logger := p.logger.With().Int("worker", n).Logger()

	for {
		select {
		case <-ctx.Done():
			return
		case job := <-p.queue:
			if err := process(ctx, p.generator, p.jobs, logger, job); err != nil {
				logger.Error().Err(err).Str("job_id", job.ID).Msg("failed to complete job")
			}
		}
	}
}

var _ Dispatcher = (*Pool)(nil)
