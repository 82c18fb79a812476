package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"fintrack/internal/dto"
	apierrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles registration and login for the local credential scheme
type AuthHandler struct {
	authService  services.AuthServiceInterface
	tokenService services.TokenServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService services.AuthServiceInterface, tokenService services.TokenServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenService: tokenService,
	}
}

// Register creates a new local account and returns a session token
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authService.Register(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			return SendError(c, apierrors.AuthUsernameTaken)
		case errors.Is(err, services.ErrInvalidUsername):
			return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
		case errors.Is(err, services.ErrPasswordTooShort),
			errors.Is(err, services.ErrPasswordTooLong),
			errors.Is(err, services.ErrPasswordEmpty):
			return SendError(c, apierrors.AuthWeakPassword, apierrors.WithDetails(err.Error()))
		default:
			slog.Error("registration failed", "error", err)
			return SendSystemError(c, err)
		}
	}

	return h.sendAuthResponse(c, http.StatusCreated, user)
}

// Login verifies credentials and returns a session token
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return SendError(c, apierrors.AuthInvalidCredentials)
		}
		slog.Error("login failed", "error", err)
		return SendSystemError(c, err)
	}

	return h.sendAuthResponse(c, http.StatusOK, user)
}

func (h *AuthHandler) sendAuthResponse(c echo.Context, status int, user *models.User) error {
	token, expiresAt, err := h.tokenService.GenerateToken(user)
	if err != nil {
		slog.Error("failed to issue session token", "error", err, "user_id", user.ID)
		return SendSystemError(c, err)
	}

	return c.JSON(status, SuccessResponse{
		Data: dto.AuthResponse{
			User: dto.UserProfileResponse{
				ID:        user.ID.String(),
				Username:  user.Username,
				CreatedAt: user.CreatedAt,
			},
			Token: dto.TokenResponse{
				AccessToken: token,
				TokenType:   "Bearer",
				ExpiresAt:   expiresAt,
			},
		},
	})
}
