package api

import (
	"github.com/gofiber/fiber/v2"
)

// APIKeyHeader is the header clients send their key in.
const APIKeyHeader = "x-api-key"

// APIKeyMiddleware creates a middleware that gates requests on a shared API
// key. A missing or mismatched key yields 401 without reaching the handler.
func APIKeyMiddleware(apiKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get(APIKeyHeader)
		if key == "" || key != apiKey {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error: "Unauthorized",
			})
		}
		return c.Next()
	}
}
