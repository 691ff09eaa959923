package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/todo-service/pkg/util"
)

const callerKey = "auth_caller"

// Caller identifies the authenticated user for the current request.
type Caller struct {
	UserID string
}

// Middleware returns a stateless handler that enforces bearer-token
// authentication for protected routes. On success the decoded caller is
// attached to the request context for handlers to pick up.
func Middleware(tokens *TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperrors.NewUnauthorized("Unauthorized. Token not found.")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
			// The source API dropped the trailing period on this
			// branch; clients match on the exact string.
			return apperrors.NewUnauthorized("Unauthorized. Token not found")
		}

		claims, err := tokens.ParseToken(strings.TrimSpace(parts[1]))
		if err != nil {
			return apperrors.NewUnauthorized(err.Error())
		}

		c.Locals(callerKey, &Caller{UserID: claims.ID})
		return c.Next()
	}
}

// CallerFromContext retrieves the authenticated caller.
func CallerFromContext(c *fiber.Ctx) (*Caller, bool) {
	val := c.Locals(callerKey)
	if val == nil {
		return nil, false
	}
	caller, ok := val.(*Caller)
	return caller, ok
}
