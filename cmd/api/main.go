package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"aion/internal/adapter/repo"
	"aion/internal/ffmpeg"
	"aion/internal/http/handlers"
	httpapi "aion/internal/http/httpapi"
	"aion/internal/infra"
	"aion/internal/infra/geoip"
	"aion/internal/providers/video"
	"aion/internal/storage"
	"aion/internal/worker"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv, cfg.LogLevel)

	store, err := storage.NewFileStore(cfg.StoragePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure storage")
	}

	pipeline, err := video.LookupPipeline(cfg.VideoPipeline)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid video pipeline")
	}
	var generator video.Generator
	switch pipeline {
	case video.PipelinePlaceholder:
		generator = video.NewPlaceholder()
	default:
		generator = video.NewFrameSynthesizer(store, ffmpeg.NewEncoder(cfg.FFmpegPath), logger)
	}

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}
	defer resolver.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobs := repo.NewJobRepository()
	var dispatcher worker.Dispatcher
	var pool *worker.Pool
	if cfg.SynthesisMode == infra.SynthesisModeAsync {
		pool = worker.NewPool(generator, jobs, logger, cfg.SynthesisWorkers, cfg.SynthesisQueue)
		if err := pool.Start(context.WithoutCancel(ctx)); err != nil {
			logger.Fatal().Err(err).Msg("failed to start synthesis pool")
		}
		dispatcher = pool
	} else {
		dispatcher = worker.NewInline(generator, jobs, logger)
	}

	app := handlers.NewApp(jobs, dispatcher, store, pipeline, logger)
	router := httpapi.NewRouter(app, httpapi.Options{
		Logger:        logger,
		CORSOrigins:   cfg.CORSOrigins,
		DefaultLocale: cfg.DefaultLocale,
		CountryLookup: resolver.Lookup(),
	})
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().
			Str("addr", server.Addr()).
			Str("pipeline", pipeline.Name).
			Str("mode", cfg.SynthesisMode).
			Str("storage", store.BasePath()).
			Msg("API listening")
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	if pool != nil {
		pool.Stop()
	}
	logger.Info().Msg("server stopped")
}
