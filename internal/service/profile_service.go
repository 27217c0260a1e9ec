package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// ProfileService handles profile-related business logic
type ProfileService struct {
	userRepo   domain.UserRepository
	bcryptCost int
}

// NewProfileService creates a new ProfileService
func NewProfileService(userRepo domain.UserRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo, bcryptCost: bcrypt.DefaultCost}
}

// ProfileUpdate holds profile changes. Nil fields are left unchanged.
// An empty ProfilePicture clears the reference.
type ProfileUpdate struct {
	Username       *string
	FirstName      *string
	LastName       *string
	Currency       *string
	ProfilePicture *string
}

// GetProfile retrieves the user's profile
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies update to the user's profile. A full (non-partial) update requires the username.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate, partial bool) (*domain.User, error) {
	if !partial && update.Username == nil {
		return nil, domain.ErrUsernameRequired
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Username != nil {
		username := strings.TrimSpace(*update.Username)
		if err := domain.ValidateUsername(username); err != nil {
			return nil, err
		}
		user.Username = username
	}
	if update.FirstName != nil {
		firstName := strings.TrimSpace(*update.FirstName)
		if len([]rune(firstName)) > domain.MaxPersonNameLength {
			return nil, domain.ErrFirstNameTooLong
		}
		user.FirstName = firstName
	}
	if update.LastName != nil {
		lastName := strings.TrimSpace(*update.LastName)
		if len([]rune(lastName)) > domain.MaxPersonNameLength {
			return nil, domain.ErrLastNameTooLong
		}
		user.LastName = lastName
	}
	if update.Currency != nil {
		currency := strings.ToUpper(strings.TrimSpace(*update.Currency))
		if !domain.IsValidCurrency(currency) {
			return nil, domain.ErrInvalidCurrency
		}
		user.Currency = currency
	}
	if update.ProfilePicture != nil {
		picture := strings.TrimSpace(*update.ProfilePicture)
		if len(picture) > domain.MaxPictureRefLength {
			return nil, domain.ErrPictureTooLong
		}
		if picture == "" {
			user.ProfilePicture = nil
		} else {
			user.ProfilePicture = &picture
		}
	}

	updated, err := s.userRepo.UpdateProfile(ctx, user)
	if err != nil {
		return nil, err
	}
	log.Info().Str("user_id", userID.String()).Msg("Profile updated")
	return updated, nil
}

// DeleteAccount removes the user and, through cascades, everything they own
func (s *ProfileService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	log.Info().Str("user_id", userID.String()).Msg("Account deleted")
	return nil
}

// ChangePassword verifies the current password and stores a hash of the new one
func (s *ProfileService) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error {
	if oldPassword == "" {
		return domain.ErrPasswordRequired
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !checkPassword(user.PasswordHash, oldPassword) {
		return domain.ErrWrongPassword
	}

	if err := validateNewPassword(newPassword, user); err != nil {
		return err
	}

	hash, err := hashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	log.Info().Str("user_id", userID.String()).Msg("Password changed")
	return nil
}
