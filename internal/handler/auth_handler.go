package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"lokalpro/internal/domain"
	"lokalpro/internal/middleware"
	"lokalpro/internal/service/auth"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input domain.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Email == "" || input.Password == "" || input.FullName == "" {
		return middleware.BadRequest("Email, password and full name are required")
	}
	if len(input.Password) < 8 {
		return middleware.BadRequest("Password must be at least 8 characters")
	}

	user, err := h.authService.Register(c.Context(), input)
	if err != nil {
		if errors.Is(err, auth.ErrEmailExists) {
			return middleware.Conflict("Email already registered")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Registration successful, please verify your email",
		"user":    user,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input domain.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	user, tokens, err := h.authService.Login(c.Context(), input)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return middleware.Unauthorized("Invalid email or password")
		}
		if errors.Is(err, auth.ErrEmailNotVerified) {
			return middleware.Forbidden("Email not verified")
		}
		return err
	}

	return c.JSON(fiber.Map{
		"user":   user,
		"tokens": tokens,
	})
}

func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&input); err != nil || input.RefreshToken == "" {
		return middleware.BadRequest("Refresh token is required")
	}

	tokens, err := h.authService.RefreshToken(c.Context(), input.RefreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrUserNotFound) {
			return middleware.Unauthorized("Invalid or expired refresh token")
		}
		return err
	}

	return c.JSON(tokens)
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&input); err != nil || input.Email == "" {
		return middleware.BadRequest("Email is required")
	}

	if err := h.authService.RequestPasswordReset(c.Context(), input.Email); err != nil {
		return err
	}

	// Same response whether or not the account exists.
	return c.JSON(fiber.Map{
		"message": "If the email is registered, a reset link has been sent",
	})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input struct {
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil || input.Token == "" || input.NewPassword == "" {
		return middleware.BadRequest("Token and new password are required")
	}
	if len(input.NewPassword) < 8 {
		return middleware.BadRequest("Password must be at least 8 characters")
	}

	if err := h.authService.ResetPassword(c.Context(), input.Token, input.NewPassword); err != nil {
		if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrTokenExpired) {
			return middleware.BadRequest("Invalid or expired reset token")
		}
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Password reset successful",
	})
}

func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return middleware.BadRequest("Verification token is required")
	}

	if err := h.authService.VerifyEmail(c.Context(), token); err != nil {
		if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrVerificationTokenExpired) {
			return middleware.BadRequest("Invalid or expired verification token")
		}
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Email verified successfully",
	})
}
