package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the response header carrying the request's ray ID.
const Header = "X-Ray-ID"

// New creates a middleware that assigns a unique ray ID to every request.
// An incoming X-Ray-ID header is honored so upstream proxies can propagate ids.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals("ray_id", rid)
		c.Set(Header, rid)

		return c.Next()
	}
}
