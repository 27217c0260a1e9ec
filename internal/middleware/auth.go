package middleware

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/dafibh/dompet/dompet-backend/internal/auth"
	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// errNotAccessToken rejects refresh tokens presented as bearer credentials
var errNotAccessToken = errors.New("token is not an access token")

// CustomClaims contains the claims added to our tokens on top of the registered ones
type CustomClaims struct {
	Type string `json:"type"`
}

// Validate implements validator.CustomClaims
func (c CustomClaims) Validate(ctx context.Context) error {
	if c.Type != auth.TokenTypeAccess {
		return errNotAccessToken
	}
	return nil
}

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// ClaimsKey is the context key for JWT claims
	ClaimsKey contextKey = "claims"
	// UserIDKey is the context key for the authenticated user's ID (subject)
	UserIDKey contextKey = "user_id"
)

// UserProvider looks up the user a token was issued to
type UserProvider interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// AuthMiddleware provides JWT validation middleware
type AuthMiddleware struct {
	validator    *validator.Validator
	userProvider UserProvider
}

// NewAuthMiddleware creates an AuthMiddleware that accepts access tokens signed by tokens
func NewAuthMiddleware(tokens *auth.TokenIssuer, userProvider UserProvider) (*AuthMiddleware, error) {
	secret := tokens.Secret()
	keyFunc := func(ctx context.Context) (interface{}, error) {
		return secret, nil
	}

	jwtValidator, err := validator.New(
		keyFunc,
		validator.HS256,
		tokens.Issuer(),
		[]string{tokens.Audience()},
		validator.WithCustomClaims(func() validator.CustomClaims {
			return &CustomClaims{}
		}),
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, err
	}

	return &AuthMiddleware{
		validator:    jwtValidator,
		userProvider: userProvider,
	}, nil
}

// Authenticate returns an Echo middleware that validates access tokens and loads the principal
func (m *AuthMiddleware) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return unauthorizedError(c, "Authentication credentials were not provided.")
			}

			// Check Bearer prefix
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return unauthorizedError(c, "Invalid authorization header format.")
			}

			claims, err := m.validator.ValidateToken(c.Request().Context(), parts[1])
			if err != nil {
				log.Debug().Err(err).Msg("Token validation failed")
				return unauthorizedError(c, "Given token not valid for any token type.")
			}

			validatedClaims, ok := claims.(*validator.ValidatedClaims)
			if !ok {
				return unauthorizedError(c, "Given token not valid for any token type.")
			}

			userID, err := uuid.Parse(validatedClaims.RegisteredClaims.Subject)
			if err != nil {
				log.Debug().Str("subject", validatedClaims.RegisteredClaims.Subject).Msg("Token subject is not a user id")
				return unauthorizedError(c, "Given token not valid for any token type.")
			}

			// The user may have been deleted since the token was issued
			if m.userProvider != nil {
				if _, err := m.userProvider.GetByID(c.Request().Context(), userID); err != nil {
					if errors.Is(err, domain.ErrUserNotFound) {
						log.Debug().Str("user_id", userID.String()).Msg("Token user not found")
						return unauthorizedError(c, "User not found.")
					}
					log.Error().Err(err).Str("user_id", userID.String()).Msg("User lookup failed")
					return internalError(c)
				}
			}

			ctx := context.WithValue(c.Request().Context(), ClaimsKey, validatedClaims)
			ctx = context.WithValue(ctx, UserIDKey, userID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetUserID extracts the authenticated user's ID from the context
func GetUserID(c echo.Context) uuid.UUID {
	if id, ok := c.Request().Context().Value(UserIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

// GetClaims extracts the validated claims from the context
func GetClaims(c echo.Context) *validator.ValidatedClaims {
	if claims, ok := c.Request().Context().Value(ClaimsKey).(*validator.ValidatedClaims); ok {
		return claims
	}
	return nil
}
