package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	reporthandler "github.com/pp-tools/pizza-pulse/pkg/handlers/report"
	ppmiddleware "github.com/pp-tools/pizza-pulse/pkg/server/middleware"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server

	shutdownTimeout time.Duration
}

type Dependencies struct {
	Report *reporthandler.Handler
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	router := chi.NewRouter()

	router.Use(ppmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	handler := config.Dependencies.Report
	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/reports", handler.CreateReport)
		r.Get("/healthz", handler.Health)
	})

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: config.ShutdownTimeout,
	}
}

// Router exposes the configured mux, mainly for tests.
func (w *WebAPI) Router() http.Handler {
	return w.router
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		timeout := w.shutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
