package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims are the registered claims plus the token type
type Claims struct {
	jwt.RegisteredClaims
	Type string `json:"type"`
}

// TokenPair is returned on login
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenIssuer signs and parses HS256 tokens for one issuer/audience pair
type TokenIssuer struct {
	secret     []byte
	issuer     string
	audience   string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewTokenIssuer creates a new TokenIssuer
func NewTokenIssuer(secret []byte, issuer, audience string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:     secret,
		issuer:     issuer,
		audience:   audience,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// Issuer returns the configured "iss" value
func (i *TokenIssuer) Issuer() string {
	return i.issuer
}

// Audience returns the configured "aud" value
func (i *TokenIssuer) Audience() string {
	return i.audience
}

// Secret returns the HMAC key tokens are signed with
func (i *TokenIssuer) Secret() []byte {
	return i.secret
}

// IssuePair creates a fresh access and refresh token for the user
func (i *TokenIssuer) IssuePair(userID uuid.UUID) (*TokenPair, error) {
	access, err := i.IssueAccess(userID)
	if err != nil {
		return nil, err
	}
	refresh, err := i.sign(userID, TokenTypeRefresh, i.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

// IssueAccess creates a short-lived access token
func (i *TokenIssuer) IssueAccess(userID uuid.UUID) (string, error) {
	return i.sign(userID, TokenTypeAccess, i.accessTTL)
}

// ParseRefresh validates a refresh token and returns its subject
func (i *TokenIssuer) ParseRefresh(tokenString string) (uuid.UUID, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithAudience(i.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, fmt.Errorf("%w: token expired", domain.ErrInvalidToken)
		}
		return uuid.Nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	if !token.Valid || claims.Type != TokenTypeRefresh {
		return uuid.Nil, domain.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidToken
	}
	return userID, nil
}

func (i *TokenIssuer) sign(userID uuid.UUID, tokenType string, ttl time.Duration) (string, error) {
	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   userID.String(),
			Audience:  jwt.ClaimStrings{i.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
		Type: tokenType,
	})

	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}
	return tokenString, nil
}
