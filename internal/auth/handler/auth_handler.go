package handler

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pranav4002/ACADEMIX/internal/auth/domain"
	"github.com/pranav4002/ACADEMIX/internal/auth/dto"
	"github.com/pranav4002/ACADEMIX/internal/auth/service"
	autherror "github.com/pranav4002/ACADEMIX/internal/errors"
)

const tokenCookieName = "token"

type AuthHandler struct {
	userService *service.UserService
	otpService  *service.OTPService
	tokens      service.TokenGenerator
	repo        domain.UserRepository
	logger      *slog.Logger
}

func NewAuthHandler(userService *service.UserService, otpService *service.OTPService,
	tokens service.TokenGenerator, repo domain.UserRepository, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		otpService:  otpService,
		tokens:      tokens,
		repo:        repo,
		logger:      logger,
	}
}

func (h *AuthHandler) SendOTP(c *fiber.Ctx) error {
	var input dto.SendOTPInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if input.Email == "" {
		return h.respondError(c, autherror.ErrMissingFields)
	}

	// The code travels out-of-band through the mail collaborator and is
	// never echoed in the response.
	if _, err := h.otpService.Issue(c.Context(), input.Email); err != nil {
		return h.respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "OTP sent successfully"})
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input dto.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	user, err := h.userService.Signup(c.Context(), input)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "user registered successfully",
		"user":    dto.NewUserOutput(user),
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	result, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return h.respondError(c, err)
	}

	// The cookie outlives the token on purpose; expired tokens inside a
	// live cookie still fail verification.
	c.Cookie(&fiber.Cookie{
		Name:     tokenCookieName,
		Value:    result.Token,
		Expires:  time.Now().Add(h.tokens.CookieExpiry()),
		HTTPOnly: true,
	})

	return c.Status(fiber.StatusOK).JSON(dto.LoginOutput{
		Token: result.Token,
		User:  dto.NewUserOutput(result.User),
	})
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	claims, ok := claimsFromLocals(c)
	if !ok {
		return h.respondError(c, autherror.ErrMissingToken)
	}

	var input dto.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := h.userService.ChangePassword(c.Context(), claims.UserID, input); err != nil {
		return h.respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "password updated successfully"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims, ok := claimsFromLocals(c)
	if !ok {
		return h.respondError(c, autherror.ErrMissingToken)
	}

	user, err := h.repo.GetByID(c.Context(), claims.UserID)
	if err != nil {
		return h.respondError(c, err)
	}
	if user == nil {
		return h.respondError(c, autherror.ErrUserNotFound)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"user": dto.NewUserOutput(user)})
}

// respondError maps the error taxonomy onto HTTP statuses. Unknown
// errors are logged and surface as a generic 500.
func (h *AuthHandler) respondError(c *fiber.Ctx, err error) error {
	status := statusForError(err)
	if status == fiber.StatusInternalServerError {
		h.logger.Error("request failed", "path", c.Path(), "error", err)
		return c.Status(status).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, autherror.ErrMissingFields),
		errors.Is(err, autherror.ErrPasswordMismatch),
		errors.Is(err, autherror.ErrInvalidOTP):
		return fiber.StatusBadRequest
	case errors.Is(err, autherror.ErrEmailAlreadyInUse):
		return fiber.StatusConflict
	case errors.Is(err, autherror.ErrInvalidCredentials),
		errors.Is(err, autherror.ErrMissingToken),
		errors.Is(err, autherror.ErrInvalidToken):
		return fiber.StatusUnauthorized
	case errors.Is(err, autherror.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, autherror.ErrUserNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
