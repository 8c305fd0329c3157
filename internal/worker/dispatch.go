package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"aion/internal/domain"
	"aion/internal/providers/video"
)

// Dispatcher hands a recorded job to the video generator. Whatever the
// generator returns, the job ends up completed in the repository.
type Dispatcher interface {
	Dispatch(ctx context.Context, job domain.Job) error
}

// Inline runs synthesis on the caller's goroutine; Dispatch returns once the
// job has been completed.
type Inline struct {
	generator video.Generator
	jobs      domain.JobRepository
	logger    zerolog.Logger
}

func NewInline(generator video.Generator, jobs domain.JobRepository, logger zerolog.Logger) *Inline {
	return &Inline{generator: generator, jobs: jobs, logger: logger}
}

func (d *Inline) Dispatch(ctx context.Context, job domain.Job) error {
	return process(ctx, d.generator, d.jobs, d.logger, job)
}

func process(ctx context.Context, generator video.Generator, jobs domain.JobRepository, logger zerolog.Logger, job domain.Job) error {
	started := time.Now()
	res := generator.Synthesize(ctx, video.Request{
		JobID:    job.ID,
		Topic:    job.Topic,
		Duration: job.Duration,
		Style:    job.Style,
	})

	evt := logger.Info()
	if res.Err != nil {
		evt = logger.Warn().Err(res.Err)
	}
	evt.Str("job_id", job.ID).
		Bool("fallback", res.Fallback()).
		Dur("elapsed", time.Since(started)).
		Msg("synthesis finished")

	// The job is completed even when the request context is already gone.
	return jobs.Complete(context.WithoutCancel(ctx), job.ID, res.Path)
}

var _ Dispatcher = (*Inline)(nil)
