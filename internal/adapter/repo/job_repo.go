package repo

import (
	"context"
	"fmt"
	"sync"

	"aion/internal/domain"
)

// JobRepositoryMemory implements domain.JobRepository on top of an in-process
// map. Contents live for the lifetime of the process.
type JobRepositoryMemory struct {
	mu    sync.RWMutex
	jobs  map[string]*domain.Job
	order []string
}

// NewJobRepository creates an empty in-memory job repository.
func NewJobRepository() *JobRepositoryMemory {
	return &JobRepositoryMemory{jobs: make(map[string]*domain.Job)}
}

// Create records a new job. Identifiers must be unique.
func (r *JobRepositoryMemory) Create(ctx context.Context, job *domain.Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if job == nil || job.ID == "" {
		return fmt.Errorf("repo: job id is required: %w", domain.ErrValidation)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.jobs[job.ID]; exists {
		return fmt.Errorf("repo: duplicate job %q", job.ID)
	}
	stored := *job
	r.jobs[job.ID] = &stored
	r.order = append(r.order, job.ID)
	return nil
}

// Complete marks a job as created and attaches the artifact path, which may be
// empty when no artifact was produced.
func (r *JobRepositoryMemory) Complete(ctx context.Context, jobID string, artifactPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[jobID]
	if !ok {
		return fmt.Errorf("repo: job %q: %w", jobID, domain.ErrNotFound)
	}
	job.Status = domain.JobStatusCreated
	job.ArtifactPath = artifactPath
	return nil
}

// GetByID returns a copy of the job with the given id.
func (r *JobRepositoryMemory) GetByID(ctx context.Context, jobID string) (*domain.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[jobID]
	if !ok {
		return nil, fmt.Errorf("repo: job %q: %w", jobID, domain.ErrNotFound)
	}
	out := *job
	return &out, nil
}

// List returns copies of every job in insertion order.
func (r *JobRepositoryMemory) List(ctx context.Context) ([]domain.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Job, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.jobs[id])
	}
	return out, nil
}

var _ domain.JobRepository = (*JobRepositoryMemory)(nil)
