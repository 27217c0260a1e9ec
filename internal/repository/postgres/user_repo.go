package postgres

import (
	"context"

	"github.com/dafibh/dompet/dompet-backend/db/sqlc"
	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository implements domain.UserRepository using PostgreSQL
type UserRepository struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		pool:    pool,
		queries: sqlc.New(pool),
	}
}

// Create inserts a new user
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	created, err := r.queries.CreateUser(ctx, sqlc.CreateUserParams{
		Email:          user.Email,
		Username:       user.Username,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		ProfilePicture: stringPtrToPgText(user.ProfilePicture),
		Currency:       user.Currency,
		PasswordHash:   user.PasswordHash,
	})
	if err != nil {
		if mapped := mapUserUniqueViolation(err); mapped != nil {
			return nil, mapped
		}
		return nil, err
	}
	return sqlcUserToDomain(created), nil
}

// GetByID retrieves a user by their UUID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := r.queries.GetUserByID(ctx, uuidToPgUUID(id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return sqlcUserToDomain(user), nil
}

// GetByEmail retrieves a user by their (normalized) email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := r.queries.GetUserByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return sqlcUserToDomain(user), nil
}

// UpdateProfile updates the editable profile fields. Email is not touched.
func (r *UserRepository) UpdateProfile(ctx context.Context, user *domain.User) (*domain.User, error) {
	updated, err := r.queries.UpdateUserProfile(ctx, sqlc.UpdateUserProfileParams{
		ID:             uuidToPgUUID(user.ID),
		Username:       user.Username,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		ProfilePicture: stringPtrToPgText(user.ProfilePicture),
		Currency:       user.Currency,
	})
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrUserNotFound
		}
		if mapped := mapUserUniqueViolation(err); mapped != nil {
			return nil, mapped
		}
		return nil, err
	}
	return sqlcUserToDomain(updated), nil
}

// UpdatePassword stores a new password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	rows, err := r.queries.UpdateUserPassword(ctx, sqlc.UpdateUserPasswordParams{
		ID:           uuidToPgUUID(id),
		PasswordHash: passwordHash,
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete removes the user; owned rows go with it through ON DELETE CASCADE
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := r.queries.DeleteUser(ctx, uuidToPgUUID(id))
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Helper functions

func mapUserUniqueViolation(err error) error {
	switch uniqueViolationConstraint(err) {
	case constraintUsersEmail:
		return domain.ErrEmailAlreadyExists
	case constraintUsersUsername:
		return domain.ErrUsernameAlreadyExists
	}
	return nil
}

func sqlcUserToDomain(u sqlc.User) *domain.User {
	return &domain.User{
		ID:             pgUUIDToUUID(u.ID),
		Email:          u.Email,
		Username:       u.Username,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		ProfilePicture: pgTextToStringPtr(u.ProfilePicture),
		Currency:       u.Currency,
		PasswordHash:   u.PasswordHash,
		CreatedAt:      u.CreatedAt.Time,
		UpdatedAt:      u.UpdatedAt.Time,
	}
}
