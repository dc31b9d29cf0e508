// Command errdemo serves a small HTTP API that exercises the error handling
// chain: mapped business errors, CUE payload validation and panic recovery.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmgilman/go/httperrors/config"
	"github.com/jmgilman/go/httperrors/errors"
	"github.com/jmgilman/go/httperrors/logging"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "errdemo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		envFile    = flag.String("env", ".env", "optional .env file to load")
		configFile = flag.String("config", "", "optional YAML configuration file")
		usage      = flag.Bool("usage", false, "print the environment variables and exit")
	)
	flag.Parse()

	if *usage {
		return config.Usage(os.Stdout)
	}

	loadEnvFile(*envFile)

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return err
	}

	logger := slog.New(cfg.Handler(os.Stderr))
	slog.SetDefault(logger)

	app, err := newApp(cfg, logging.NewSlog(logger))
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func loadEnvFile(path string) {
	if path == "" {
		return
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Debug("no .env file found", "path", path)
		return
	}
	if err := godotenv.Load(path); err != nil {
		slog.Warn("failed to load .env file", "path", path, "error", err)
	}
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}
