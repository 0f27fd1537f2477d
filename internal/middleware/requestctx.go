// Package middleware contains HTTP middleware functions for the database check API.
// Middleware sits between the HTTP server and route handlers — it runs on every
// request that passes through it, making it the right place for cross-cutting
// concerns like request tracing.
package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trentd187/db-check-api/internal/logger"
)

// RequestIDLocalsKey is the c.Locals key the requestid middleware stores the ID under.
const RequestIDLocalsKey = "requestid"

// RequestContext copies the request ID from c.Locals into the request's user context
// (c.UserContext), so anything downstream that only receives a context.Context — the
// database calls and logger.FromContext — can see it.
//
// It must run AFTER fiber's requestid middleware, which is what populates the local.
// If no ID is present the request passes through untouched.
func RequestContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := c.Locals(RequestIDLocalsKey).(string); ok && id != "" {
			c.SetUserContext(logger.WithRequestID(c.UserContext(), id))
		}
		return c.Next()
	}
}
