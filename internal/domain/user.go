package domain

import (
	"context"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultCurrency is assigned at registration when none is given
const DefaultCurrency = "VND"

var (
	usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)
)

// NormalizeEmail trims and lower-cases an address and checks that it parses as a bare address
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || len(email) > MaxEmailLength {
		return "", ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// ValidateUsername checks length and the letters, digits and @.+-_ charset
func ValidateUsername(username string) error {
	if username == "" {
		return ErrUsernameRequired
	}
	if len(username) > MaxUsernameLength {
		return ErrUsernameTooLong
	}
	if !usernamePattern.MatchString(username) {
		return ErrInvalidUsername
	}
	return nil
}

// IsValidCurrency reports whether code looks like an ISO 4217 alphabetic code
func IsValidCurrency(code string) bool {
	return currencyPattern.MatchString(code)
}

// User represents an account holder. Email is the login identifier.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	ProfilePicture *string   `json:"profilePicture"`
	Currency       string    `json:"currency"`
	PasswordHash   string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// FullName returns "first last", falling back to the username when both are empty
func (u *User) FullName() string {
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if full == "" {
		return u.Username
	}
	return full
}

// UserRepository defines the interface for user persistence operations
type UserRepository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateProfile(ctx context.Context, user *User) (*User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
