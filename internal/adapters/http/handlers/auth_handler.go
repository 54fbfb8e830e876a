package handlers

import (
	"errors"
	"strings"

	"pawsitter/internal/adapters/http/middleware"
	"pawsitter/internal/core/domain"
	"pawsitter/internal/core/services"
	"pawsitter/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterRequest represents registration request body
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

// LoginRequest represents login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest represents refresh request body
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Register handles user registration
// @Summary Register new user
// @Description Register a new account with the OWNER role
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, response.CodeInvalidInput, "Invalid request body")
	}

	// Validate required fields
	if req.Email == "" {
		return response.BadRequest(c, response.CodeInvalidInput, "Email is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, response.CodeInvalidInput, "Password is required")
	}
	if len(req.Password) < 8 {
		return response.BadRequest(c, response.CodeInvalidInput, "Password must be at least 8 characters")
	}

	input := &services.RegisterInput{
		Email:       strings.TrimSpace(req.Email),
		Password:    req.Password,
		DisplayName: strings.TrimSpace(req.DisplayName),
		City:        strings.TrimSpace(req.City),
		Country:     strings.TrimSpace(req.Country),
	}

	result, err := h.authService.Register(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			return response.Conflict(c, response.CodeEmailTaken, "This email has been already registered")
		default:
			return response.InternalServerError(c, "Failed to register user")
		}
	}

	return response.Created(c, "User registered successfully", result)
}

// Login handles user login
// @Summary Login user
// @Description Authenticate user and return access and refresh tokens
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, response.CodeInvalidInput, "Invalid request body")
	}

	if req.Email == "" {
		return response.BadRequest(c, response.CodeInvalidInput, "Email is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, response.CodeInvalidInput, "Password is required")
	}

	input := &services.LoginInput{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	}

	result, err := h.authService.Login(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return response.Unauthorized(c, response.CodeUserNotFound, "User not found")
		case errors.Is(err, domain.ErrInvalidCredentials):
			return response.Unauthorized(c, response.CodeInvalidCredentials, "Invalid email or password")
		default:
			return response.InternalServerError(c, "Failed to login")
		}
	}

	return response.Success(c, "Login successful", result)
}

// Refresh handles token refresh
// @Summary Refresh tokens
// @Description Exchange a valid refresh token for a new token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RefreshRequest true "Refresh token"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, response.CodeInvalidInput, "Invalid request body")
	}

	if req.RefreshToken == "" {
		return response.BadRequest(c, response.CodeInvalidInput, "Refresh token is required")
	}

	result, err := h.authService.Refresh(c.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRefreshToken):
			return response.Unauthorized(c, response.CodeInvalidRefreshToken, "Invalid or expired refresh token")
		case errors.Is(err, domain.ErrUserNotFound):
			return response.Unauthorized(c, response.CodeUserNotFound, "User not found")
		default:
			return response.InternalServerError(c, "Failed to refresh token")
		}
	}

	return response.Success(c, "Token refreshed successfully", result)
}

// Me handles profile lookup
// @Summary Get current user profile
// @Description Return the profile of the authenticated user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFromCtx(c)
	if !ok {
		return response.Unauthorized(c, response.CodeUnauthorized, "Unauthorized")
	}

	result, err := h.authService.Profile(c.Context(), principal.UserID)
	if err != nil {
		return response.Unauthorized(c, response.CodeUserNotFound, "User not found")
	}

	return response.Success(c, "Profile retrieved", result)
}
