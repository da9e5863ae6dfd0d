package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/ticketd/ticketd/internal/persistence"
	"github.com/ticketd/ticketd/internal/repository"
	apperrors "github.com/ticketd/ticketd/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller.
type Principal struct {
	UserID int64
	Token  string
}

// Middleware validates bearer tokens on protected routes. A token must be
// backed by a session row AND carry a valid unexpired signature; the row
// check alone is not sufficient, so a revoked or expired token always fails
// regardless of which check would pass.
type Middleware struct {
	tokens   *TokenManager
	sessions repository.SessionRepository
	cache    *persistence.SessionCache
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager, sessions repository.SessionRepository, cache *persistence.SessionCache) *Middleware {
	return &Middleware{tokens: tokens, sessions: sessions, cache: cache}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	token, err := BearerToken(c)
	if err != nil {
		return err
	}

	if !m.cache.Contains(c.Context(), token) {
		if _, err := m.sessions.GetByToken(c.Context(), token); err != nil {
			if err == pgx.ErrNoRows {
				return apperrors.NewUnauthorized("no active session for token")
			}
			return apperrors.MapError(err)
		}
		m.cache.Remember(c.Context(), token)
	}

	claims, err := m.tokens.ParseToken(token)
	if err != nil {
		return apperrors.NewUnauthorized("invalid or expired token")
	}

	c.Locals(principalKey, &Principal{UserID: claims.UserID, Token: token})
	return c.Next()
}

// BearerToken extracts the bearer token from the Authorization header.
func BearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", apperrors.NewUnauthorized("invalid authorization header")
	}
	return parts[1], nil
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
