package handler

import (
	"errors"
	"net/http"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ProblemDetails represents an RFC 7807 Problem Details response
type ProblemDetails struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Errors   []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error types
const (
	ErrorTypeValidation   = "https://dompet.app/errors/validation"
	ErrorTypeNotFound     = "https://dompet.app/errors/not-found"
	ErrorTypeUnauthorized = "https://dompet.app/errors/unauthorized"
	ErrorTypeInternal     = "https://dompet.app/errors/internal"
)

const msgRequired = "This field is required."

// NewValidationError creates a validation error response
func NewValidationError(c echo.Context, detail string, fieldErrs []ValidationError) error {
	return c.JSON(http.StatusBadRequest, ProblemDetails{
		Type:     ErrorTypeValidation,
		Title:    "Validation Error",
		Status:   http.StatusBadRequest,
		Detail:   detail,
		Instance: c.Request().URL.Path,
		Errors:   fieldErrs,
	})
}

// NewFieldError creates a validation error response for a single field
func NewFieldError(c echo.Context, field, message string) error {
	return NewValidationError(c, "Validation failed", []ValidationError{{Field: field, Message: message}})
}

// NewNotFoundError creates a not found error response
func NewNotFoundError(c echo.Context, detail string) error {
	return c.JSON(http.StatusNotFound, ProblemDetails{
		Type:     ErrorTypeNotFound,
		Title:    "Not Found",
		Status:   http.StatusNotFound,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewUnauthorizedError creates an unauthorized error response
func NewUnauthorizedError(c echo.Context, detail string) error {
	return c.JSON(http.StatusUnauthorized, ProblemDetails{
		Type:     ErrorTypeUnauthorized,
		Title:    "Unauthorized",
		Status:   http.StatusUnauthorized,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewInternalError creates an internal error response
func NewInternalError(c echo.Context, detail string) error {
	return c.JSON(http.StatusInternalServerError, ProblemDetails{
		Type:     ErrorTypeInternal,
		Title:    "Internal Server Error",
		Status:   http.StatusInternalServerError,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// fieldErrors maps service validation errors to the request field they concern
var fieldErrors = []struct {
	err     error
	field   string
	message string
}{
	{domain.ErrInvalidEmail, "email", "Enter a valid email address."},
	{domain.ErrEmailAlreadyExists, "email", "User with this email already exists."},
	{domain.ErrUsernameRequired, "username", msgRequired},
	{domain.ErrUsernameTooLong, "username", "Ensure this field has no more than 150 characters."},
	{domain.ErrInvalidUsername, "username", "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."},
	{domain.ErrUsernameAlreadyExists, "username", "A user with that username already exists."},
	{domain.ErrFirstNameTooLong, "firstName", "Ensure this field has no more than 150 characters."},
	{domain.ErrLastNameTooLong, "lastName", "Ensure this field has no more than 150 characters."},
	{domain.ErrPictureTooLong, "profilePicture", "Ensure this field has no more than 255 characters."},
	{domain.ErrInvalidCurrency, "currency", "Enter a valid 3-letter ISO 4217 currency code."},
	{domain.ErrPasswordRequired, "password", msgRequired},
	{domain.ErrPasswordMismatch, "password", "Password fields did not match!"},
	{domain.ErrWrongPassword, "oldPassword", "wrong password!"},
	{domain.ErrNameRequired, "name", msgRequired},
	{domain.ErrNameTooLong, "name", "Ensure this field has no more than 50 characters."},
	{domain.ErrIconTooLong, "icon", "Ensure this field has no more than 50 characters."},
	{domain.ErrInvalidColor, "color", "Enter a hex color like #3B82F6."},
	{domain.ErrCategoryAlreadyExists, "name", "Category with this name and type already exists."},
	{domain.ErrTypeRequired, "type", msgRequired},
	{domain.ErrInvalidTransactionType, "type", "Type must be one of: income, expense."},
	{domain.ErrAmountRequired, "amount", msgRequired},
	{domain.ErrInvalidAmount, "amount", "Amount must be greater than 0!"},
	{domain.ErrAmountPrecision, "amount", "Ensure that there are no more than 12 digits in total and no more than 2 decimal places."},
	{domain.ErrNegativeBudgetAmount, "amount", "Ensure this value is greater than or equal to 0."},
	{domain.ErrDateRequired, "date", msgRequired},
	{domain.ErrCategoryRequired, "category", msgRequired},
	{domain.ErrInvalidCategory, "category", "Invalid category."},
	{domain.ErrMonthRequired, "month", msgRequired},
	{domain.ErrBudgetAlreadyExists, "month", "A budget for this category and month already exists."},
}

// notFoundErrors maps not-found sentinels to their response detail
var notFoundErrors = []struct {
	err    error
	detail string
}{
	{domain.ErrUserNotFound, "User not found"},
	{domain.ErrCategoryNotFound, "Category not found"},
	{domain.ErrTransactionNotFound, "Transaction not found"},
	{domain.ErrBudgetNotFound, "Budget not found"},
}

// passwordFieldErrors lists every failed strength rule against field
func passwordFieldErrors(field string, pwErr *domain.PasswordError) []ValidationError {
	out := make([]ValidationError, len(pwErr.Problems))
	for i, problem := range pwErr.Problems {
		out[i] = ValidationError{Field: field, Message: problem}
	}
	return out
}

// handleServiceError writes the response for an error returned by a service call.
// Unknown errors are logged and reported as internal errors.
func handleServiceError(c echo.Context, err error, action string) error {
	for _, fe := range fieldErrors {
		if errors.Is(err, fe.err) {
			return NewFieldError(c, fe.field, fe.message)
		}
	}
	for _, nf := range notFoundErrors {
		if errors.Is(err, nf.err) {
			return NewNotFoundError(c, nf.detail)
		}
	}

	log.Error().Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Request().URL.Path).
		Msg("Failed to " + action)
	return NewInternalError(c, "Failed to "+action)
}
