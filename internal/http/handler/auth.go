package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"sopclassify/internal/service"
	"sopclassify/internal/session"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates against the credential allow-list and sets the
// signed session cookie.
func Login(authSvc service.AuthService, codec *session.Codec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}

		rec, err := authSvc.Login(c.UserContext(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				return writeError(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		token, err := codec.Issue(rec)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		c.Cookie(codec.Cookie(token))
		return c.JSON(fiber.Map{"user": rec})
	}
}

// Logout clears the session cookie unconditionally; idempotent.
func Logout(codec *session.Codec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Cookie(codec.ExpiredCookie())
		return c.JSON(fiber.Map{"success": true})
	}
}

// Session returns the current session record from the cookie.
func Session(codec *session.Codec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec, err := codec.Parse(c.Cookies(codec.CookieName()))
		if err != nil {
			return writeError(c, fiber.StatusUnauthorized, "NOT_AUTHENTICATED", "not authenticated")
		}
		return c.JSON(fiber.Map{"user": rec})
	}
}
