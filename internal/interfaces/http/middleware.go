package http

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/okiroth/gallery_backend/internal/application"
	"github.com/okiroth/gallery_backend/internal/domain"
)

// principalKey stores the authenticated Principal in the request scope.
const principalKey = "principal"

// AuthMiddleware gates mutating routes. Writes accept either the shared
// admin password or a bearer token; user administration is bearer-only
// and requires the admin role.
type AuthMiddleware struct {
	shared *application.SharedSecretAuthorizer
	tokens *application.TokenAuthorizer
}

func NewAuthMiddleware(shared *application.SharedSecretAuthorizer, tokens *application.TokenAuthorizer) *AuthMiddleware {
	return &AuthMiddleware{shared: shared, tokens: tokens}
}

// RequireWrite authorizes item create/update/delete and image uploads.
func (m *AuthMiddleware) RequireWrite(c *fiber.Ctx) error {
	if token, ok := bearerToken(c); ok {
		principal, err := m.tokens.Authorize(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}
		c.Locals(principalKey, principal)
		return c.Next()
	}

	if password := c.Get("X-Admin-Password"); password != "" {
		principal, err := m.shared.Authorize(password)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "invalid password"})
		}
		c.Locals(principalKey, principal)
		return c.Next()
	}

	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing credentials"})
}

// RequireAdmin authorizes the user-administration routes.
func (m *AuthMiddleware) RequireAdmin(c *fiber.Ctx) error {
	token, ok := bearerToken(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
	}
	principal, err := m.tokens.Authorize(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}
	if principal.Role != domain.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin role required"})
	}
	c.Locals(principalKey, principal)
	return c.Next()
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	h := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(h, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(h, "Bearer "), true
}

func currentPrincipal(c *fiber.Ctx) application.Principal {
	if p, ok := c.Locals(principalKey).(application.Principal); ok {
		return p
	}
	return application.Principal{}
}

// respondError maps service errors onto the API's status codes. Unknown
// errors are logged and surfaced as a generic 500.
func respondError(c *fiber.Ctx, err error) error {
	var vErr *application.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": vErr.Message})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	case errors.Is(err, domain.ErrDuplicateUsername):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "username already exists"})
	case errors.Is(err, application.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	case errors.Is(err, application.ErrSelfDelete):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "cannot delete your own account"})
	case errors.Is(err, application.ErrRateLimited):
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many submissions"})
	default:
		log.Printf("http: internal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
