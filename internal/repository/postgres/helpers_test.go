package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestUniqueViolationConstraint(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, ""},
		{"other error", errors.New("boom"), ""},
		{"other sqlstate", &pgconn.PgError{Code: "23503", ConstraintName: "transactions_category_id_fkey"}, ""},
		{"named", &pgconn.PgError{Code: "23505", ConstraintName: constraintUsersEmail}, constraintUsersEmail},
		{"wrapped", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: constraintBudgetsCategoryMonth}), constraintBudgetsCategoryMonth},
		{"unnamed", &pgconn.PgError{Code: "23505"}, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, uniqueViolationConstraint(tt.err))
		})
	}
}

func TestMapUserUniqueViolation(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{"email", &pgconn.PgError{Code: "23505", ConstraintName: constraintUsersEmail}, domain.ErrEmailAlreadyExists},
		{"username", &pgconn.PgError{Code: "23505", ConstraintName: constraintUsersUsername}, domain.ErrUsernameAlreadyExists},
		// left to the caller as an unexpected error
		{"other constraint", &pgconn.PgError{Code: "23505", ConstraintName: "users_pkey"}, nil},
		{"not a violation", errors.New("connection reset"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mapUserUniqueViolation(tt.err))
		})
	}
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "coffee", escapeLike("coffee"))
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\tmp`, escapeLike(`c:\tmp`))
}
