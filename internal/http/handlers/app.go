package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"aion/internal/domain"
	"aion/internal/providers/video"
	"aion/internal/storage"
	"aion/internal/worker"
)

// App holds the collaborators shared by every handler.
type App struct {
	Jobs       domain.JobRepository
	Dispatcher worker.Dispatcher
	Store      *storage.FileStore
	Pipeline   video.Pipeline
	Logger     zerolog.Logger

	now   func() time.Time
	newID func() string
}

func NewApp(jobs domain.JobRepository, dispatcher worker.Dispatcher, store *storage.FileStore, pipeline video.Pipeline, logger zerolog.Logger) *App {
	return &App{
		Jobs:       jobs,
		Dispatcher: dispatcher,
		Store:      store,
		Pipeline:   pipeline,
		Logger:     logger,
		now:        time.Now,
		newID:      domain.NewJobID,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, map[string]string{"error": message})
}
