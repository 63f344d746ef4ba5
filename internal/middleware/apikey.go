package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

const APIKeyHeader = "X-Api-Key"

// APIKeyRequired guards the inbound webhook routes with a static key.
func APIKeyRequired(expectedKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if expectedKey == "" {
			return Forbidden("Import endpoint is not configured")
		}

		provided := c.Get(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(expectedKey)) != 1 {
			return Unauthorized("Invalid API key")
		}

		return c.Next()
	}
}
