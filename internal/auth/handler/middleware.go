package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pranav4002/ACADEMIX/internal/auth/domain"
	"github.com/pranav4002/ACADEMIX/internal/auth/service"
	autherror "github.com/pranav4002/ACADEMIX/internal/errors"
)

const localsClaimsKey = "sessionClaims"

// RequireAuth extracts and verifies the session token, then stores the
// claims for downstream handlers. Verification failures all look the
// same to the client.
func (h *AuthHandler) RequireAuth(c *fiber.Ctx) error {
	token := extractToken(c)
	if token == "" {
		return h.respondError(c, autherror.ErrMissingToken)
	}

	claims, err := h.tokens.Verify(token)
	if err != nil {
		return h.respondError(c, autherror.ErrInvalidToken)
	}

	c.Locals(localsClaimsKey, claims)

	return c.Next()
}

// extractToken looks for the token in cookie, body field, then
// Authorization header, in that order. First present source wins.
func extractToken(c *fiber.Ctx) string {
	if t := c.Cookies(tokenCookieName); t != "" {
		return t
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := c.BodyParser(&body); err == nil && body.Token != "" {
		return body.Token
	}

	if header := c.Get(fiber.HeaderAuthorization); header != "" {
		return strings.TrimPrefix(header, "Bearer ")
	}

	return ""
}

// RequireRole gates a route on the CURRENT persisted role, not the role
// baked into the token, so a role change takes effect before the token
// expires. Must run after RequireAuth.
func (h *AuthHandler) RequireRole(role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := claimsFromLocals(c)
		if !ok {
			return h.respondError(c, autherror.ErrMissingToken)
		}

		user, err := h.repo.GetByID(c.Context(), claims.UserID)
		if err != nil {
			return h.respondError(c, err)
		}
		if user == nil || user.AccountType != role {
			return h.respondError(c, autherror.ErrForbidden)
		}

		return c.Next()
	}
}

func claimsFromLocals(c *fiber.Ctx) (*service.SessionClaims, bool) {
	claims, ok := c.Locals(localsClaimsKey).(*service.SessionClaims)
	return claims, ok
}
