package handler

import (
	"errors"
	"net/http"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/dafibh/dompet/dompet-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// ProfileHandler handles profile-related HTTP requests
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// UpdateProfileRequest represents the update profile request. Email cannot be changed.
type UpdateProfileRequest struct {
	Username       *string `json:"username"`
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	Currency       *string `json:"currency"`
	ProfilePicture *string `json:"profilePicture"`
}

// ChangePasswordRequest represents the change password request
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// MessageResponse represents a plain confirmation message
type MessageResponse struct {
	Detail string `json:"detail"`
}

// GetProfile godoc
// @Summary Get own profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} ProblemDetails
// @Router /users/profile [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return NewUnauthorizedError(c, "Authentication required")
	}

	user, err := h.profileService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return handleServiceError(c, err, "get profile")
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateProfile godoc
// @Summary Update own profile
// @Description PUT replaces the editable fields and requires username; PATCH updates only the fields sent
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Router /users/profile [put]
// @Router /users/profile [patch]
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	user, err := h.profileService.UpdateProfile(c.Request().Context(), userID, service.ProfileUpdate{
		Username:       req.Username,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Currency:       req.Currency,
		ProfilePicture: req.ProfilePicture,
	}, isPartial(c))
	if err != nil {
		return handleServiceError(c, err, "update profile")
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// DeleteAccount godoc
// @Summary Delete own account
// @Description Removes the user together with their categories, transactions and budgets
// @Tags profile
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} ProblemDetails
// @Router /users/profile [delete]
func (h *ProfileHandler) DeleteAccount(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return NewUnauthorizedError(c, "Authentication required")
	}

	if err := h.profileService.DeleteAccount(c.Request().Context(), userID); err != nil {
		return handleServiceError(c, err, "delete account")
	}

	return c.NoContent(http.StatusNoContent)
}

// ChangePassword godoc
// @Summary Change password
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Current and new password"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Router /users/change-password [post]
func (h *ProfileHandler) ChangePassword(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	var missing []ValidationError
	if req.OldPassword == "" {
		missing = append(missing, ValidationError{Field: "oldPassword", Message: msgRequired})
	}
	if req.NewPassword == "" {
		missing = append(missing, ValidationError{Field: "newPassword", Message: msgRequired})
	}
	if len(missing) > 0 {
		return NewValidationError(c, "Validation failed", missing)
	}

	err := h.profileService.ChangePassword(c.Request().Context(), userID, req.OldPassword, req.NewPassword)
	if err != nil {
		var pwErr *domain.PasswordError
		if errors.As(err, &pwErr) {
			return NewValidationError(c, "Validation failed", passwordFieldErrors("newPassword", pwErr))
		}
		return handleServiceError(c, err, "change password")
	}

	return c.JSON(http.StatusOK, MessageResponse{Detail: "Password updated successfully"})
}
