// Package main is the entry point for raymaze.
package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samdwyer/raymaze/internal/game"
	"github.com/samdwyer/raymaze/internal/telemetry"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_RAYMAZE_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	// The terminal belongs to the renderer from here on
	closeLog := redirectLog(os.Getenv("RAYMAZE_LOG_FILE"))
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
		// Continue without telemetry - game still works
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	// Create and run game
	g, err := game.New(ctx, game.DefaultConfig())
	if err != nil {
		fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		fatalf("Game error: %v", err)
	}
}

// setupOTelEnv points the OTLP exporter at Honeycomb using our own env vars.
// The .env file may hold an unexpanded header reference, so the headers are
// always rebuilt here.
func setupOTelEnv() {
	env := telemetry.HoneycombEnv(os.Getenv("HONEYCOMB_RAYMAZE_API_KEY"), os.Getenv("HONEYCOMB_RAYMAZE_DATASET"))
	for k, v := range env {
		os.Setenv(k, v)
	}
}

// redirectLog sends log output to path, or discards it when path is empty,
// so log lines never draw over the frame.
func redirectLog(path string) (closeLog func()) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("Note: log file %s not opened: %v", path, err)
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}
}

// fatalf restores stderr logging before exiting, since deferred calls do not
// run on os.Exit.
func fatalf(format string, args ...any) {
	log.SetOutput(os.Stderr)
	log.Fatalf(format, args...)
}
