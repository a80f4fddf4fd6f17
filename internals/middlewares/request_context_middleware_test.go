package middlewares

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestContext(t *testing.T) {
	app := fiber.New()
	app.Use(RequestContext(5 * time.Second))

	var sawDeadline bool
	var reqID any
	app.Get("/x", func(c *fiber.Ctx) error {
		_, sawDeadline = c.UserContext().Deadline()
		reqID = c.Locals("reqid")
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// timeout nempel di UserContext yang dibaca controller
	assert.True(t, sawDeadline)
	assert.NotEmpty(t, reqID)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestRequestContext_KeepsIncomingID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestContext(time.Second))
	app.Get("/x", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-ID"))
}
