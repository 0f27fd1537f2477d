// cmd/server/main.go
// Entry point for the database check API.
// Startup order: config -> logger -> connection pool -> fiber app -> listen.
// A pool that can't be built aborts the process before the socket is bound.
package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/trentd187/db-check-api/internal/config"
	"github.com/trentd187/db-check-api/internal/database"
	"github.com/trentd187/db-check-api/internal/logger"
	"github.com/trentd187/db-check-api/internal/server"
)

func main() {
	// Load Postgres connection settings from the environment (and optionally a .env file).
	cfg := config.Load()

	appLog := logger.New()

	// Build the pool. This does not dial Postgres; the first GET /db opens the first connection.
	pool, err := database.Connect(context.Background(), cfg)
	if err != nil {
		appLog.Error("Failed to create connection pool", "error", err)
		os.Exit(1)
	}

	// Every request shares this one pool handle.
	app := server.New(pool, appLog)

	announce(os.Stdout, config.ListenAddr)
	if err := app.Listen(config.ListenAddr); err != nil {
		appLog.Error("Server stopped", "error", err)
		pool.Close()
		os.Exit(1)
	}
	pool.Close()
}

// announce writes the single plain-text startup line, with no timestamp prefix.
func announce(w io.Writer, addr string) {
	log.New(w, "", 0).Printf("Server starting at http://%s", addr)
}
