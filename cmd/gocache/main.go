package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"gocache/internal/cache"
	"gocache/internal/server"
	"gocache/internal/shell"
)

func main() {
	capacity := flag.Int("capacity", 128, "maximum number of cached entries")
	addr := flag.String("addr", "", "serve HTTP on this address instead of reading commands from stdin")
	level := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	lvl, err := log.ParseLevel(*level)
	if err != nil {
		log.Fatalf("log level: %v", err)
	}
	log.SetLevel(lvl)

	// Signal-aware context is the root of ownership for long-lived work.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.StandardLogger()
	c, err := cache.New[string, string](cache.Config{Capacity: *capacity, Logger: logger})
	if err != nil {
		log.Fatal(err)
	}
	log.WithField("capacity", c.Capacity()).Info("gocache starting")

	if *addr == "" {
		// Scan blocks on stdin, so the signal is watched here rather than
		// only between commands.
		done := make(chan error, 1)
		go func() { done <- shell.New(c, os.Stdin, os.Stdout, logger).Run(ctx) }()
		select {
		case err := <-done:
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Fatalf("shell: %v", err)
			}
		case <-ctx.Done():
			log.Info("received shutdown signal")
		}
		return
	}

	if err := serve(ctx, *addr, server.New(c, logger).Handler()); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// serve runs the HTTP server until ctx is canceled, then shuts it down.
func serve(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Info("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		log.Info("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
