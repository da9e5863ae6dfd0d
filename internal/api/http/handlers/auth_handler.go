package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ticketd/ticketd/internal/api/dto"
	"github.com/ticketd/ticketd/internal/auth"
	"github.com/ticketd/ticketd/internal/service"
	apperrors "github.com/ticketd/ticketd/pkg/util"
)

const tokenCookieName = "token"

// AuthHandler exposes signup, login and logout endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Signup handles POST /signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("malformed JSON sent", nil)
	}
	if req.DisplayName == "" || req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("display_name, email and password required", nil)
	}

	user, err := h.auth.Signup(c.Context(), req.DisplayName, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewUserResponse(user))
}

// Login handles POST /login. The token is returned in the body and as a
// cookie.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("malformed JSON sent", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	user, token, expiresAt, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     tokenCookieName,
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{
		"user": dto.NewUserResponse(user),
		"auth": dto.AuthResponse{Token: token, ExpiresAt: expiresAt},
	})
}

// Logout handles POST /logout. Requires a bearer token; deleting its
// session row is what revokes it.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token, err := auth.BearerToken(c)
	if err != nil {
		return err
	}
	if err := h.auth.Logout(c.Context(), token); err != nil {
		return err
	}

	c.ClearCookie(tokenCookieName)
	return c.JSON(fiber.Map{"message": "successfully logged out"})
}
