package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/dafibh/dompet/dompet-backend/internal/auth"
	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/dafibh/dompet/dompet-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestIssuer(accessTTL time.Duration) *auth.TokenIssuer {
	return auth.NewTokenIssuer([]byte(testSecret), "dompet-api", "dompet-clients", accessTTL, time.Hour)
}

func TestGetUserID(t *testing.T) {
	e := echo.New()
	userID := uuid.New()

	tests := []struct {
		name     string
		setup    func(c echo.Context)
		expected uuid.UUID
	}{
		{
			name: "returns user id when present",
			setup: func(c echo.Context) {
				ctx := context.WithValue(c.Request().Context(), UserIDKey, userID)
				c.SetRequest(c.Request().WithContext(ctx))
			},
			expected: userID,
		},
		{
			name:     "returns nil uuid when not present",
			setup:    func(c echo.Context) {},
			expected: uuid.Nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			tt.setup(c)

			result := GetUserID(c)
			if result != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestGetClaims(t *testing.T) {
	e := echo.New()

	t.Run("returns claims when present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		claims := &validator.ValidatedClaims{
			RegisteredClaims: validator.RegisteredClaims{Subject: "abc"},
		}
		ctx := context.WithValue(c.Request().Context(), ClaimsKey, claims)
		c.SetRequest(c.Request().WithContext(ctx))

		result := GetClaims(c)
		if result == nil {
			t.Fatal("Expected claims, got nil")
		}
		if result.RegisteredClaims.Subject != "abc" {
			t.Errorf("Expected subject 'abc', got %q", result.RegisteredClaims.Subject)
		}
	})

	t.Run("returns nil when not present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if GetClaims(c) != nil {
			t.Error("Expected nil, got claims")
		}
	})
}

func TestCustomClaims_Validate(t *testing.T) {
	if err := (CustomClaims{Type: auth.TokenTypeAccess}).Validate(context.Background()); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if err := (CustomClaims{Type: auth.TokenTypeRefresh}).Validate(context.Background()); err == nil {
		t.Error("Expected refresh token type to be rejected")
	}
	if err := (CustomClaims{}).Validate(context.Background()); err == nil {
		t.Error("Expected missing token type to be rejected")
	}
}

type authResult struct {
	rec        *httptest.ResponseRecorder
	called     bool
	seenUserID uuid.UUID
}

func runAuthenticate(t *testing.T, m *AuthMiddleware, header string) authResult {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	result := authResult{rec: rec}
	handler := m.Authenticate()(func(c echo.Context) error {
		result.called = true
		result.seenUserID = GetUserID(c)
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))
	result.rec = rec
	return result
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) problemDetails {
	t.Helper()
	var problem problemDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	return problem
}

func TestAuthenticate(t *testing.T) {
	issuer := newTestIssuer(5 * time.Minute)
	users := testutil.NewMockUserRepository()
	user := &domain.User{ID: uuid.New(), Email: "a@example.com", Username: "a"}
	users.AddUser(user)

	m, err := NewAuthMiddleware(issuer, users)
	require.NoError(t, err)

	pair, err := issuer.IssuePair(user.ID)
	require.NoError(t, err)

	t.Run("valid access token", func(t *testing.T) {
		result := runAuthenticate(t, m, "Bearer "+pair.Access)
		assert.True(t, result.called)
		assert.Equal(t, http.StatusOK, result.rec.Code)
		assert.Equal(t, user.ID, result.seenUserID)
	})

	t.Run("scheme is case insensitive", func(t *testing.T) {
		result := runAuthenticate(t, m, "bearer "+pair.Access)
		assert.True(t, result.called)
	})

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"no bearer prefix", "invalid-token"},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"empty token", "Bearer "},
		{"garbage token", "Bearer not.a.jwt"},
		{"refresh token", "Bearer " + pair.Refresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := runAuthenticate(t, m, tt.header)
			assert.False(t, result.called)
			assert.Equal(t, http.StatusUnauthorized, result.rec.Code)

			problem := decodeProblem(t, result.rec)
			assert.Equal(t, errorTypeUnauthorized, problem.Type)
			assert.Equal(t, http.StatusUnauthorized, problem.Status)
			assert.Equal(t, "/api/v1/categories", problem.Instance)
		})
	}
}

func TestAuthenticate_RejectsForeignAndExpiredTokens(t *testing.T) {
	issuer := newTestIssuer(5 * time.Minute)
	users := testutil.NewMockUserRepository()
	user := &domain.User{ID: uuid.New(), Email: "a@example.com", Username: "a"}
	users.AddUser(user)

	m, err := NewAuthMiddleware(issuer, users)
	require.NoError(t, err)

	otherSecret := auth.NewTokenIssuer([]byte("another-secret-another-secret-xx"), "dompet-api", "dompet-clients", time.Minute, time.Hour)
	otherAudience := auth.NewTokenIssuer([]byte(testSecret), "dompet-api", "someone-else", time.Minute, time.Hour)
	expired := newTestIssuer(-5 * time.Minute)

	for name, tokens := range map[string]*auth.TokenIssuer{
		"wrong secret":   otherSecret,
		"wrong audience": otherAudience,
		"expired":        expired,
	} {
		t.Run(name, func(t *testing.T) {
			access, err := tokens.IssueAccess(user.ID)
			require.NoError(t, err)

			result := runAuthenticate(t, m, "Bearer "+access)
			assert.False(t, result.called)
			assert.Equal(t, http.StatusUnauthorized, result.rec.Code)
		})
	}
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	issuer := newTestIssuer(5 * time.Minute)
	m, err := NewAuthMiddleware(issuer, testutil.NewMockUserRepository())
	require.NoError(t, err)

	access, err := issuer.IssueAccess(uuid.New())
	require.NoError(t, err)

	result := runAuthenticate(t, m, "Bearer "+access)
	assert.False(t, result.called)
	assert.Equal(t, http.StatusUnauthorized, result.rec.Code)
	assert.Equal(t, "User not found.", decodeProblem(t, result.rec).Detail)
}

func TestAuthenticate_UserLookupFailure(t *testing.T) {
	issuer := newTestIssuer(5 * time.Minute)
	users := testutil.NewMockUserRepository()
	users.GetFn = func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
		return nil, errors.New("connection refused")
	}
	m, err := NewAuthMiddleware(issuer, users)
	require.NoError(t, err)

	access, err := issuer.IssueAccess(uuid.New())
	require.NoError(t, err)

	result := runAuthenticate(t, m, "Bearer "+access)
	assert.False(t, result.called)
	assert.Equal(t, http.StatusInternalServerError, result.rec.Code)
}
