package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/dafibh/dompet/dompet-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles registration and token HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	Username       string  `json:"username"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	FullName       string  `json:"fullName"`
	ProfilePicture *string `json:"profilePicture"`
	Currency       string  `json:"currency"`
	CreatedAt      string  `json:"createdAt"`
}

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Currency  string `json:"currency"`
}

// TokenRequest represents the obtain token request body
type TokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenPairResponse represents an access/refresh token pair
type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RefreshRequest represents the refresh token request body
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// AccessTokenResponse represents a refreshed access token
type AccessTokenResponse struct {
	Access string `json:"access"`
}

// Register godoc
// @Summary Register a new user
// @Description Create an account. Default categories are created with it.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration request"
// @Success 201 {object} UserResponse
// @Failure 400 {object} ProblemDetails
// @Failure 429 {object} ProblemDetails
// @Router /users/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	var missing []ValidationError
	for _, f := range []struct{ name, value string }{
		{"email", req.Email},
		{"username", req.Username},
		{"password", req.Password},
		{"password2", req.Password2},
	} {
		if f.value == "" {
			missing = append(missing, ValidationError{Field: f.name, Message: msgRequired})
		}
	}
	if len(missing) > 0 {
		return NewValidationError(c, "Validation failed", missing)
	}

	user, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		Password2: req.Password2,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Currency:  req.Currency,
	})
	if err != nil {
		var pwErr *domain.PasswordError
		if errors.As(err, &pwErr) {
			return NewValidationError(c, "Validation failed", passwordFieldErrors("password", pwErr))
		}
		return handleServiceError(c, err, "register user")
	}

	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// ObtainToken godoc
// @Summary Obtain a token pair
// @Description Exchange email and password for an access and a refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Credentials"
// @Success 200 {object} TokenPairResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 429 {object} ProblemDetails
// @Router /auth/token [post]
func (h *AuthHandler) ObtainToken(c echo.Context) error {
	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	pair, err := h.authService.ObtainToken(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return NewUnauthorizedError(c, "No active account found with the given credentials")
		}
		return handleServiceError(c, err, "obtain token")
	}

	return c.JSON(http.StatusOK, TokenPairResponse{Access: pair.Access, Refresh: pair.Refresh})
}

// RefreshToken godoc
// @Summary Refresh an access token
// @Description Exchange a refresh token for a new access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} AccessTokenResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 429 {object} ProblemDetails
// @Router /auth/token/refresh [post]
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if req.Refresh == "" {
		return NewFieldError(c, "refresh", msgRequired)
	}

	access, err := h.authService.RefreshToken(c.Request().Context(), req.Refresh)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidToken) {
			log.Debug().Err(err).Msg("Refresh token rejected")
			return NewUnauthorizedError(c, "Token is invalid or expired")
		}
		return handleServiceError(c, err, "refresh token")
	}

	return c.JSON(http.StatusOK, AccessTokenResponse{Access: access})
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:             user.ID.String(),
		Email:          user.Email,
		Username:       user.Username,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		FullName:       user.FullName(),
		ProfilePicture: user.ProfilePicture,
		Currency:       user.Currency,
		CreatedAt:      user.CreatedAt.Format(time.RFC3339),
	}
}
