package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/trentd187/db-check-api/internal/database"
	"github.com/trentd187/db-check-api/internal/logger"
)

// versionQuery is the only SQL this service ever runs.
const versionQuery = "SELECT version()"

// Failure messages returned in the "status" field of a 500 response.
const (
	msgAcquireFailed = "Failed to get connection: "
	msgQueryFailed   = "Query failed: "
	msgNoRows        = "No rows returned"
)

// VersionResponse is the success payload of GET /db.
type VersionResponse struct {
	Version string `json:"version"`
}

// DBCheck returns a handler for GET /db.
//
// It borrows one connection from pool, runs SELECT version(), and returns
// column 0 of row 0 as {"version": "..."}. Each failure step ends the request
// with a 500 and a {"status": "..."} message; nothing is retried:
//  1. acquiring the lease fails  -> "Failed to get connection: <err>"
//  2. the query fails            -> "Query failed: <err>"
//  3. the query returns no rows  -> "No rows returned"
//
// The lease goes back to the pool when the handler returns, whichever path was taken.
func DBCheck(pool database.Acquirer, log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		reqLog := logger.FromContext(ctx, log)

		// --- Step 1: borrow a connection ---
		conn, err := pool.Acquire(ctx)
		if err != nil {
			reqLog.Error("acquire connection", "error", err)
			return internalError(c, msgAcquireFailed+err.Error())
		}
		defer conn.Release()

		// --- Step 2: run the query ---
		rows, err := conn.Query(ctx, versionQuery)
		if err != nil {
			reqLog.Error("query version", "error", err)
			return internalError(c, msgQueryFailed+err.Error())
		}
		// Rows must be closed before the connection is released; defers run LIFO.
		defer rows.Close()

		// --- Step 3: read row 0 ---
		if !rows.Next() {
			// pgx reports some query errors only once iteration stops.
			if err := rows.Err(); err != nil {
				reqLog.Error("query version", "error", err)
				return internalError(c, msgQueryFailed+err.Error())
			}
			reqLog.Error("query version returned no rows")
			return internalError(c, msgNoRows)
		}

		var version string
		if err := rows.Scan(&version); err != nil {
			reqLog.Error("scan version", "error", err)
			return internalError(c, msgQueryFailed+err.Error())
		}

		return c.JSON(VersionResponse{Version: version})
	}
}

// internalError writes a 500 with a {"status": msg} body.
func internalError(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(StatusResponse{Status: msg})
}
