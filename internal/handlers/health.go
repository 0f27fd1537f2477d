// Package handlers holds the two endpoints of the service: a liveness probe that
// never touches Postgres, and a version check that borrows one pooled connection.
// Both answer in JSON; neither reads anything from the request but its path.
package handlers

import "github.com/gofiber/fiber/v2"

// LivenessMessage is the fixed payload of GET /.
const LivenessMessage = "Rust API is running! 🦀"

// StatusResponse is the {"status": "..."} payload, used both for the liveness
// probe and for reporting database-check failures.
type StatusResponse struct {
	Status string `json:"status"`
}

// Index handles GET /.
// It is a liveness probe: no database access, no failure modes, always 200.
func Index(c *fiber.Ctx) error {
	return c.JSON(StatusResponse{Status: LivenessMessage})
}
