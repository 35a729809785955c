package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"saharaweb/internal/bookings"
	"saharaweb/internal/config"
	"saharaweb/internal/http-server/handlers/bookings/bookingWindow"
	"saharaweb/internal/http-server/handlers/bookings/existingBookings"
	"saharaweb/internal/http-server/handlers/bookings/rigBookings"
	"saharaweb/internal/http-server/handlers/health"
	"saharaweb/internal/http-server/middleware/mwauth"
	"saharaweb/internal/http-server/middleware/mwlogger"
	"saharaweb/internal/lib/logger/handlers/slogpretty"
	"saharaweb/internal/lib/logger/sl"
	"saharaweb/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting sahara web", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	loc, err := cfg.Bookings.Location()
	if err != nil {
		log.Error("invalid bookings timezone", sl.Err(err))
		os.Exit(1)
	}

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	resolver := bookings.NewResolver(storage, storage)
	guard := bookings.NewGuard(storage, storage, loc, nil)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/health", health.New(log, storage))

	router.Route("/bookings", func(r chi.Router) {
		r.Get("/rigs/{name}", rigBookings.New(log, resolver, loc, cfg.Bookings.DefaultRangeDays))

		r.Group(func(r chi.Router) {
			r.Use(mwauth.New(log, []byte(cfg.Auth.JWTSecret), cfg.Auth.Issuer))

			r.Get("/existing", existingBookings.New(log, storage))
			r.Get("/permissions/{id}", bookingWindow.New(log, guard, cfg.Bookings.FallbackPath))
		})
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
