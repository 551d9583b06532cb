package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

const shutdownTimeout = 20 * time.Second

// serve runs the HTTP server and the session and limiter housekeeping until SIGINT or
// SIGTERM, then drains in-flight requests.
func (app *application) serve() error {
	srv := &http.Server{
		Addr:              app.config.addr(),
		Handler:           app.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
		ErrorLog:          slog.NewLogLogger(app.logger.Handler(), slog.LevelError),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		app.purgeSessions(ctx, time.Hour)
	}()
	go func() {
		defer wg.Done()
		app.limiter.cleanup(ctx, time.Minute, 3*time.Minute)
	}()

	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()
		app.logger.Info("shutting down server", slog.String("addr", srv.Addr))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		shutdownErr <- srv.Shutdown(shutdownCtx)
	}()

	app.logger.Info("starting server",
		slog.String("addr", srv.Addr),
		slog.String("env", app.config.Environment),
		slog.String("api", app.config.APIBaseURL),
	)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		stop()
		wg.Wait()
		return err
	}

	err = <-shutdownErr
	wg.Wait()
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", slog.String("addr", srv.Addr))
	return nil
}
