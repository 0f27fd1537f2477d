// Package server assembles the fiber app: global middleware plus the two routes.
package server

import (
	"log/slog"

	// fiber serves both routes; its bundled middleware covers tracing and access logs.
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/trentd187/db-check-api/internal/database"
	"github.com/trentd187/db-check-api/internal/handlers"
	"github.com/trentd187/db-check-api/internal/middleware"
)

// AppName is reported by fiber in its Server header.
const AppName = "DB Check API"

// accessLogFormat is the fiber logger format: one line per request, tagged with its ID.
const accessLogFormat = "[${time}] ${locals:" + middleware.RequestIDLocalsKey + "} ${status} - ${latency} ${method} ${path}\n"

// New builds the fiber app. pool is shared by every request; handlers only borrow
// connections from it. log receives application-level (non-access) logs.
func New(pool database.Acquirer, log *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: AppName,
		// main prints its own single startup line.
		DisableStartupMessage: true,
	})

	// --- Global middleware ---
	// recover turns a panicking handler into a 500 instead of killing the process.
	app.Use(recover.New())
	// requestid tags every request with an X-Request-ID (a UUID unless the caller sent one).
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: middleware.RequestIDLocalsKey,
	}))
	// Make the ID visible to handlers through context.Context.
	app.Use(middleware.RequestContext())
	// logger prints method, path, status and latency for every request.
	app.Use(logger.New(logger.Config{Format: accessLogFormat}))
	app.Use(cors.New())

	// GET / is a liveness check; it never touches the database.
	app.Get("/", handlers.Index)
	// GET /db borrows a pooled connection and reports the server version.
	app.Get("/db", handlers.DBCheck(pool, log))

	return app
}
