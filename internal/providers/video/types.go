package video

import (
	"context"
	"fmt"
	"strings"

	"aion/internal/domain"
)

// Request carries the inputs of one synthesis call.
type Request struct {
	JobID    string
	Topic    string
	Duration int
	Style    domain.Style
}

// Result reports the outcome of a synthesis call. Produced is false when the
// caller has to fall back to the placeholder payload; Err explains why, and is
// nil when the pipeline never produces artifacts.
type Result struct {
	Path     string
	Produced bool
	Err      error
}

// Fallback reports whether no artifact is available for download.
func (r Result) Fallback() bool {
	return !r.Produced
}

// Generator turns a request into a video artifact. Implementations never
// return failures to the caller other than through Result.
type Generator interface {
	Synthesize(ctx context.Context, req Request) Result
}

// Pipeline pins down the per-variant constants reported to callers.
type Pipeline struct {
	Name         string
	SceneDivisor int
	DefaultStyle domain.Style
}

var (
	PipelineFrames      = Pipeline{Name: "frames", SceneDivisor: 10, DefaultStyle: domain.StyleProfessional}
	PipelinePlaceholder = Pipeline{Name: "placeholder", SceneDivisor: 5, DefaultStyle: domain.StyleKids}
)

// LookupPipeline resolves a pipeline by name.
func LookupPipeline(name string) (Pipeline, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PipelineFrames.Name:
		return PipelineFrames, nil
	case PipelinePlaceholder.Name:
		return PipelinePlaceholder, nil
	default:
		return Pipeline{}, fmt.Errorf("video: unknown pipeline %q", name)
	}
}
