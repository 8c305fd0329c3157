package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// JobStatus enumerates job lifecycle states.
type JobStatus string

const (
	JobStatusPending JobStatus = "pending"
	JobStatusCreated JobStatus = "created"
)

const (
	DefaultLang     = "ar"
	DefaultDuration = 30

	jobIDPrefix = "video_"
)

// Job is one recorded video-generation request and its outcome.
type Job struct {
	ID        string    `json:"video_id"`
	Topic     string    `json:"topic"`
	Lang      string    `json:"lang"`
	Duration  int       `json:"duration"`
	Style     Style     `json:"style"`
	Scenes    int       `json:"scenes"`
	Status    JobStatus `json:"status"`
	CreatedAt time.Time `json:"timestamp"`

	// ArtifactPath is empty when synthesis failed, was skipped or is still running.
	ArtifactPath string `json:"-"`
}

// NewJobID returns a collision-resistant job identifier.
func NewJobID() string {
	return jobIDPrefix + uuid.NewString()
}

// SceneCount derives the reported scene count from a duration and a pipeline divisor.
func SceneCount(duration, divisor int) int {
	if divisor <= 0 {
		return 1
	}
	return max(1, duration/divisor)
}

// DownloadURL is the relative URL serving the job's video.
func (j *Job) DownloadURL() string {
	return fmt.Sprintf("/api/download/%s", j.ID)
}

// DownloadFilename is the attachment filename for the job's video.
func (j *Job) DownloadFilename() string {
	return fmt.Sprintf("AION_%s.mp4", j.ID)
}
