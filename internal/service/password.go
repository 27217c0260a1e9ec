package service

import (
	"fmt"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

func hashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// userPasswordAttributes lists the user fields a password must not resemble
func userPasswordAttributes(u *domain.User) []domain.PasswordAttribute {
	return []domain.PasswordAttribute{
		{Name: "username", Value: u.Username},
		{Name: "first name", Value: u.FirstName},
		{Name: "last name", Value: u.LastName},
		{Name: "email address", Value: u.Email},
	}
}

// validateNewPassword checks strength; bcrypt cannot hash more than 72 bytes
func validateNewPassword(password string, u *domain.User) error {
	if password == "" {
		return domain.ErrPasswordRequired
	}
	if err := domain.ValidatePassword(password, userPasswordAttributes(u)...); err != nil {
		return err
	}
	if len(password) > 72 {
		return &domain.PasswordError{Problems: []string{"This password is too long. It must contain at most 72 bytes."}}
	}
	return nil
}

