package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"aion/internal/domain"
	"aion/internal/middleware"
	"aion/internal/providers/video"
)

const maxGenerateBody = 1 << 20

type generateRequest struct {
	Topic    string        `json:"topic"`
	Lang     string        `json:"lang"`
	Duration durationValue `json:"duration"`
	Style    string        `json:"style"`
}

// maxDuration bounds accepted durations before they are converted to int.
const maxDuration = math.MaxInt32

// durationValue accepts a JSON number or a numeric string; fractional numbers
// are truncated.
type durationValue struct {
	set     bool
	tooLong bool
	value   int
}

func (d *durationValue) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		s, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("invalid duration %s", raw)
		}
		s = strings.TrimSpace(s)
		n, err := strconv.ParseInt(s, 10, 64)
		switch {
		case errors.Is(err, strconv.ErrRange) && strings.HasPrefix(s, "-"):
			d.assign(math.Inf(-1))
		case errors.Is(err, strconv.ErrRange):
			d.assign(math.Inf(1))
		case err != nil:
			return fmt.Errorf("invalid duration %s", raw)
		default:
			d.assign(float64(n))
		}
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("invalid duration %s", raw)
	}
	d.assign(f)
	return nil
}

func (d *durationValue) assign(f float64) {
	d.set = true
	switch {
	case f > maxDuration:
		d.tooLong = true
	case f < 0:
		d.value = -1
	default:
		d.value = int(f)
	}
}

type generateResponse struct {
	Success  bool             `json:"success"`
	VideoID  string           `json:"video_id"`
	VideoURL string           `json:"video_url"`
	Scenes   int              `json:"scenes"`
	Duration int              `json:"duration"`
	Status   domain.JobStatus `json:"status"`
	Message  string           `json:"message"`
}

func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req generateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxGenerateBody))
	if err := dec.Decode(&req); err != nil {
		a.error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		a.error(w, http.StatusInternalServerError, "request body must contain a single JSON object")
		return
	}
	p := printer(middleware.LocaleFromContext(ctx))

	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		a.error(w, http.StatusBadRequest, p.Sprintf(msgTopicRequired))
		return
	}
	if req.Duration.tooLong {
		a.error(w, http.StatusBadRequest, p.Sprintf(msgDurationTooLong, maxDuration))
		return
	}
	duration := domain.DefaultDuration
	if req.Duration.set {
		duration = req.Duration.value
	}
	if duration <= 0 {
		a.error(w, http.StatusBadRequest, p.Sprintf(msgInvalidDuration))
		return
	}
	lang := strings.TrimSpace(req.Lang)
	if lang == "" {
		lang = domain.DefaultLang
	}

	job := domain.Job{
		ID:        a.newID(),
		Topic:     topic,
		Lang:      lang,
		Duration:  duration,
		Style:     domain.ParseStyle(req.Style, a.Pipeline.DefaultStyle),
		Scenes:    domain.SceneCount(duration, a.Pipeline.SceneDivisor),
		Status:    domain.JobStatusPending,
		CreatedAt: a.now(),
	}
	if err := a.Jobs.Create(ctx, &job); err != nil {
		a.error(w, http.StatusInternalServerError, err.Error())
		return
	}
	a.Logger.Info().
		Str("job_id", job.ID).
		Str("style", string(job.Style)).
		Int("scenes", job.Scenes).
		Str("locale", middleware.LocaleFromContext(ctx)).
		Str("country", middleware.CountryFromContext(ctx)).
		Msg("video job recorded")

	if err := a.Dispatcher.Dispatch(ctx, job); err != nil {
		a.Logger.Warn().Err(err).Str("job_id", job.ID).Msg("dispatch failed, falling back to placeholder")
		if err := a.Jobs.Complete(context.WithoutCancel(ctx), job.ID, ""); err != nil {
			a.Logger.Error().Err(err).Str("job_id", job.ID).Msg("failed to complete job")
		}
	}

	status := job.Status
	if stored, err := a.Jobs.GetByID(context.WithoutCancel(ctx), job.ID); err == nil {
		status = stored.Status
	}

	a.json(w, http.StatusOK, generateResponse{
		Success:  true,
		VideoID:  job.ID,
		VideoURL: job.DownloadURL(),
		Scenes:   job.Scenes,
		Duration: job.Duration,
		Status:   status,
		Message:  printer(job.Lang).Sprintf(msgScenesCreated, job.Scenes),
	})
}

func (a *App) Download(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "video_id")
	job, err := a.Jobs.GetByID(r.Context(), videoID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			p := printer(middleware.LocaleFromContext(r.Context()))
			a.error(w, http.StatusNotFound, p.Sprintf(msgVideoNotFound))
			return
		}
		a.error(w, http.StatusInternalServerError, err.Error())
		return
	}

	filename := job.DownloadFilename()
	w.Header().Set("Content-Type", "video/mp4")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))

	if job.ArtifactPath != "" {
		f, info, err := a.Store.Open(job.ArtifactPath)
		if err == nil {
			defer f.Close()
			http.ServeContent(w, r, filename, info.ModTime(), f)
			return
		}
		a.Logger.Warn().Err(err).Str("job_id", job.ID).Msg("artifact unavailable, serving placeholder")
	}

	payload := video.PlaceholderPayload()
	w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

func (a *App) ListVideos(w http.ResponseWriter, r *http.Request) {
	jobs, err := a.Jobs.List(r.Context())
	if err != nil {
		a.error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	a.json(w, http.StatusOK, map[string]any{
		"total":  len(jobs),
		"videos": jobs,
	})
}
