package auth_test

import (
	"net/http/httptest"
	"testing"

	"menu-manager/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(apiKey string) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(auth.Config{ApiKey: apiKey}))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		header string
		status int
	}{
		{name: "valid key", apiKey: "secret", header: "secret", status: fiber.StatusOK},
		{name: "wrong key", apiKey: "secret", header: "nope", status: fiber.StatusUnauthorized},
		{name: "missing key", apiKey: "secret", header: "", status: fiber.StatusUnauthorized},
		{name: "auth disabled", apiKey: "", header: "", status: fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(tt.apiKey)

			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set("X-API-Key", tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
