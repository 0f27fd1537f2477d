package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trentd187/db-check-api/internal/logger"
)

// echoRequestID writes back whatever request ID the user context carries.
func echoRequestID(c *fiber.Ctx) error {
	return c.SendString(logger.RequestIDFromContext(c.UserContext()))
}

func TestRequestContext_CopiesRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(requestid.New(requestid.Config{
		Generator:  func() string { return "fixed-id" },
		ContextKey: RequestIDLocalsKey,
	}))
	app.Use(RequestContext())
	app.Get("/", echoRequestID)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", string(body))
	assert.Equal(t, "fixed-id", resp.Header.Get(fiber.HeaderXRequestID))
}

func TestRequestContext_HonoursIncomingHeader(t *testing.T) {
	app := fiber.New()
	app.Use(requestid.New(requestid.Config{ContextKey: RequestIDLocalsKey}))
	app.Use(RequestContext())
	app.Get("/", echoRequestID)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderXRequestID, "from-client")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "from-client", string(body))
}

func TestRequestContext_NoRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestContext())
	app.Get("/", echoRequestID)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, string(body))
}
