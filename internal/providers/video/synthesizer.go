package video

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"aion/internal/domain"
	"aion/internal/ffmpeg"
	"aion/internal/storage"
)

// Encoder consumes an ordered frame stream and writes a video file.
type Encoder interface {
	Encode(ctx context.Context, p ffmpeg.RawVideoParams, frames ffmpeg.Frames) error
}

// FrameSynthesizer renders flat-colored frames with a text overlay and
// encodes them into an MP4 under the file store.
type FrameSynthesizer struct {
	store   *storage.FileStore
	encoder Encoder
	logger  zerolog.Logger
	now     func() time.Time
}

func NewFrameSynthesizer(store *storage.FileStore, encoder Encoder, logger zerolog.Logger) *FrameSynthesizer {
	return &FrameSynthesizer{
		store:   store,
		encoder: encoder,
		logger:  logger.With().Str("component", "synthesizer").Logger(),
		now:     time.Now,
	}
}

// Synthesize never propagates failures: render errors, encoder errors and
// panics all come back as a Result without an artifact.
func (s *FrameSynthesizer) Synthesize(ctx context.Context, req Request) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{Err: fmt.Errorf("%w: panic: %v", domain.ErrSynthesisFailed, r)}
		}
	}()

	if req.Duration <= 0 {
		return Result{Err: fmt.Errorf("%w: duration must be positive, got %d", domain.ErrSynthesisFailed, req.Duration)}
	}
	started := s.now()
	key := fmt.Sprintf("video_%s_%s.mp4", started.Format("20060102_150405"), uuid.NewString()[:8])
	path, err := s.store.Path(key)
	if err != nil {
		return Result{Err: fmt.Errorf("%w: %v", domain.ErrSynthesisFailed, err)}
	}

	total := req.Duration * FrameRate
	frames, err := newFrameSequence(req.Topic, Palette(req.Style), total)
	if err != nil {
		return Result{Err: fmt.Errorf("%w: %v", domain.ErrSynthesisFailed, err)}
	}
	params := ffmpeg.RawVideoParams{
		Width:     FrameWidth,
		Height:    FrameHeight,
		FrameRate: FrameRate,
		Output:    path,
	}

	s.logger.Debug().Str("job_id", req.JobID).Int("frames", total).Str("style", string(req.Style)).Msg("encoding frames")
	if err := s.encoder.Encode(ctx, params, frames); err != nil {
		return Result{Err: fmt.Errorf("%w: %v", domain.ErrSynthesisFailed, err)}
	}
	s.logger.Debug().Str("job_id", req.JobID).Str("path", path).Dur("elapsed", time.Since(started)).Msg("video encoded")
	return Result{Path: path, Produced: true}
}

var _ Generator = (*FrameSynthesizer)(nil)
