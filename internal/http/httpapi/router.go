package httpapi

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"aion/internal/http/handlers"
	"aion/internal/middleware"
)

// Options configures the shared middleware stack.
type Options struct {
	Logger        zerolog.Logger
	CORSOrigins   []string
	DefaultLocale string
	CountryLookup middleware.CountryLookup
}

func NewRouter(app *handlers.App, opts Options) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(
		chimw.RealIP,
		middleware.RequestID,
		middleware.Logger(opts.Logger),
		chimw.Recoverer,
		middleware.CORS(opts.CORSOrigins),
		middleware.I18N(opts.DefaultLocale, opts.CountryLookup),
	)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", app.Health)
		r.Post("/generate", app.Generate)
		r.Get("/download/{video_id}", app.Download)
		r.Get("/videos", app.ListVideos)
		r.Get("/openapi.json", app.OpenAPIJSON)
	})

	return r
}
