package domain

import "context"

// JobRepository defines persistence for job entities.
type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	Complete(ctx context.Context, jobID string, artifactPath string) error
	GetByID(ctx context.Context, jobID string) (*Job, error)
	List(ctx context.Context) ([]Job, error)
}
