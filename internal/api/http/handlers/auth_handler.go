package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/listing-auth/internal/api/dto"
	"github.com/spec-kit/listing-auth/internal/service"
	"github.com/spec-kit/listing-auth/internal/validation"
	apperrors "github.com/spec-kit/listing-auth/pkg/util"
)

// AuthHandler exposes the signup and login endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Signup handles POST /signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var body map[string]any
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}

	values, details := validation.SignupSchema.Validate(body)
	if details != nil {
		return apperrors.NewValidationFailed(details)
	}

	user, token, err := h.auth.Signup(c.UserContext(), service.SignupInput{
		Name:          values.String("name"),
		Email:         values.String("email"),
		Password:      values.String("password"),
		TermsAccepted: values.Bool("termsAccepted"),
		PhoneNumber:   values.String("phoneNumber"),
		About:         values.String("about"),
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return apperrors.NewConflict("User with this email already exists")
		}
		return apperrors.NewInternal("Error creating user", err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SignupResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    dto.NewUserView(user),
	})
}

// Login handles POST /login. Unknown email and wrong password produce the
// same response on purpose; the handler never learns which it was.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}

	token, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return apperrors.NewUnauthorized("Invalid credentials")
		}
		return apperrors.NewInternal("Error logging in", err)
	}

	return c.JSON(dto.LoginResponse{
		Message: "Login successful!",
		Token:   token,
	})
}
