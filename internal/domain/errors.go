package domain

import "errors"

// Domain errors
var (
	// Users and credentials
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailAlreadyExists    = errors.New("user with this email already exists")
	ErrUsernameAlreadyExists = errors.New("user with this username already exists")
	ErrInvalidEmail          = errors.New("invalid email address")
	ErrUsernameRequired      = errors.New("username is required")
	ErrUsernameTooLong       = errors.New("username exceeds maximum length")
	ErrInvalidUsername       = errors.New("username contains invalid characters")
	ErrFirstNameTooLong      = errors.New("first name exceeds maximum length")
	ErrLastNameTooLong       = errors.New("last name exceeds maximum length")
	ErrPictureTooLong        = errors.New("profile picture reference exceeds maximum length")
	ErrInvalidCurrency       = errors.New("invalid currency code")
	ErrPasswordRequired      = errors.New("password is required")
	ErrPasswordMismatch      = errors.New("password fields did not match")
	ErrWeakPassword          = errors.New("password does not meet strength requirements")
	ErrWrongPassword         = errors.New("wrong password")
	ErrInvalidCredentials    = errors.New("no active account found with the given credentials")
	ErrInvalidToken          = errors.New("token is invalid or expired")

	// Categories
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category with this name and type already exists")
	ErrNameRequired          = errors.New("name is required")
	ErrNameTooLong           = errors.New("name exceeds maximum length")
	ErrIconTooLong           = errors.New("icon exceeds maximum length")
	ErrInvalidColor          = errors.New("color must be a hex value like #3B82F6")

	// Transactions
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrTypeRequired           = errors.New("type is required")
	ErrAmountRequired         = errors.New("amount is required")
	ErrInvalidAmount          = errors.New("amount must be greater than 0")
	ErrAmountPrecision        = errors.New("amount exceeds allowed precision")
	ErrDateRequired           = errors.New("date is required")

	// Budgets
	ErrBudgetNotFound       = errors.New("budget not found")
	ErrBudgetAlreadyExists  = errors.New("budget for this category and month already exists")
	ErrNegativeBudgetAmount = errors.New("budget amount cannot be negative")
	ErrMonthRequired        = errors.New("month is required")
	ErrCategoryRequired     = errors.New("category is required")

	// ErrInvalidCategory is a referenced category that does not exist for the user
	ErrInvalidCategory = errors.New("invalid category")
)

// Validation constants
const (
	MaxCategoryNameLength = 50
	MaxCategoryIconLength = 50
	MaxUsernameLength     = 150
	MaxPersonNameLength   = 150
	MaxEmailLength        = 254
	MaxPictureRefLength   = 255
)
