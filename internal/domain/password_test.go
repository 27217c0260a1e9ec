package domain

import (
	"errors"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		attrs    []PasswordAttribute
		problems int
	}{
		{"strong password", "c0rrect-Horse-battery", nil, 0},
		{"too short", "Ab1!x", nil, 1},
		{"entirely numeric", "83749261538", nil, 1},
		{"common", "password123", nil, 1},
		{"short and numeric", "12345", nil, 2},
		{"common and numeric", "12345678", nil, 2},
		{"similar to username", "johnsmith99", []PasswordAttribute{{Name: "username", Value: "johnsmith"}}, 1},
		{"similar to email local part", "alice.wonder!", []PasswordAttribute{{Name: "email address", Value: "alice.wonder@example.com"}}, 1},
		{"unrelated attribute", "c0rrect-Horse-battery", []PasswordAttribute{{Name: "username", Value: "bob"}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password, tt.attrs...)
			if tt.problems == 0 {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				return
			}

			var pwErr *PasswordError
			if !errors.As(err, &pwErr) {
				t.Fatalf("Expected *PasswordError, got %v", err)
			}
			if len(pwErr.Problems) != tt.problems {
				t.Errorf("Expected %d problems, got %d: %v", tt.problems, len(pwErr.Problems), pwErr.Problems)
			}
			if !errors.Is(err, ErrWeakPassword) {
				t.Error("Expected errors.Is(err, ErrWeakPassword) to be true")
			}
		})
	}
}
