package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/princeadura/leegion-party/internal/config"
	"github.com/princeadura/leegion-party/internal/http-server/handlers/admin/export"
	"github.com/princeadura/leegion-party/internal/http-server/handlers/admin/guestlist"
	"github.com/princeadura/leegion-party/internal/http-server/handlers/reservation/save"
	"github.com/princeadura/leegion-party/internal/http-server/handlers/reservation/verify"
	"github.com/princeadura/leegion-party/internal/http-server/middleware/mwlogger"
	"github.com/princeadura/leegion-party/internal/lib/logger/handlers/slogpretty"
	"github.com/princeadura/leegion-party/internal/lib/logger/sl"
	"github.com/princeadura/leegion-party/internal/lib/qr"
	"github.com/princeadura/leegion-party/internal/notifier"
	"github.com/princeadura/leegion-party/internal/storage/sqlite"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting leegion party", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := sqlite.New(cfg.Storage.Path)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	qrGen, err := qr.New(cfg.BaseURL, cfg.Storage.QRDir)
	if err != nil {
		log.Error("failed to init qr generator", sl.Err(err))
		os.Exit(1)
	}

	var adminNotifier save.AdminNotifier
	if mailer := notifier.New(cfg); mailer != nil {
		adminNotifier = mailer
		log.Info("email notifications enabled", slog.String("admin_email", cfg.Admin.Email))
	} else {
		log.Info("email notifications disabled (set EMAIL_USER, EMAIL_PASS and ADMIN_EMAIL to enable)")
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	fs := http.FileServer(http.Dir(cfg.Storage.QRDir))
	router.Handle("/qr-codes/*", http.StripPrefix("/qr-codes/", fs))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./static/index.html")
	})
	router.Get("/admin", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./static/admin.html")
	})

	router.Post("/reserve", save.New(log, storage, qrGen, adminNotifier))
	router.Post("/admin", guestlist.New(log, storage, cfg.Admin.Password))
	router.Get("/export", export.New(log, storage, cfg.Admin.Password, cfg.Admin.ExportFilename))
	router.Get("/verify/{id}", verify.New(log, storage))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address()), slog.String("base_url", cfg.BaseURL))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address(),
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close database", sl.Err(err))
	}

	log.Info("database closed")
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
