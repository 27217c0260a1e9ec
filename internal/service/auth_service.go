package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dafibh/dompet/dompet-backend/internal/auth"
	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration and token issuance
type AuthService struct {
	userRepo        domain.UserRepository
	tokens          *auth.TokenIssuer
	defaultCurrency string
	bcryptCost      int
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo domain.UserRepository, tokens *auth.TokenIssuer, defaultCurrency string) *AuthService {
	if defaultCurrency == "" {
		defaultCurrency = domain.DefaultCurrency
	}
	return &AuthService{
		userRepo:        userRepo,
		tokens:          tokens,
		defaultCurrency: defaultCurrency,
		bcryptCost:      bcrypt.DefaultCost,
	}
}

// RegisterInput holds registration data
type RegisterInput struct {
	Email     string
	Username  string
	Password  string
	Password2 string
	FirstName string
	LastName  string
	Currency  string
}

// Register validates the input, hashes the password and creates the user
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	email, err := domain.NormalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(input.Username)
	if err := domain.ValidateUsername(username); err != nil {
		return nil, err
	}

	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	if len([]rune(firstName)) > domain.MaxPersonNameLength {
		return nil, domain.ErrFirstNameTooLong
	}
	if len([]rune(lastName)) > domain.MaxPersonNameLength {
		return nil, domain.ErrLastNameTooLong
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = s.defaultCurrency
	}
	if !domain.IsValidCurrency(currency) {
		return nil, domain.ErrInvalidCurrency
	}

	if input.Password == "" || input.Password2 == "" {
		return nil, domain.ErrPasswordRequired
	}
	if input.Password != input.Password2 {
		return nil, domain.ErrPasswordMismatch
	}

	user := &domain.User{
		Email:     email,
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Currency:  currency,
	}
	if err := validateNewPassword(input.Password, user); err != nil {
		return nil, err
	}

	user.PasswordHash, err = hashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) || errors.Is(err, domain.ErrUsernameAlreadyExists) {
			return nil, err
		}
		log.Error().Err(err).Str("email", email).Msg("Failed to create user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Str("user_id", created.ID.String()).Msg("Registered new user")
	return created, nil
}

// ObtainToken checks credentials and returns a new token pair
func (s *AuthService) ObtainToken(ctx context.Context, email, password string) (*auth.TokenPair, error) {
	normalized, err := domain.NormalizeEmail(email)
	if err != nil || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !checkPassword(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	pair, err := s.tokens.IssuePair(user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID.String()).Msg("Failed to issue tokens")
		return nil, err
	}
	return pair, nil
}

// RefreshToken exchanges a valid refresh token for a new access token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	userID, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return "", err
	}

	// The account may have been deleted since the refresh token was issued
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidToken
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	return s.tokens.IssueAccess(userID)
}
