package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-key-that-is-at-least-32-bytes")

func newTestIssuer() *TokenIssuer {
	return NewTokenIssuer(testSecret, "dompet-api", "dompet-clients", 15*time.Minute, 24*time.Hour)
}

func TestIssuePair_RefreshRoundTrip(t *testing.T) {
	issuer := newTestIssuer()
	userID := uuid.New()

	pair, err := issuer.IssuePair(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)
	assert.NotEqual(t, pair.Access, pair.Refresh)

	got, err := issuer.ParseRefresh(pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestIssueAccess_Claims(t *testing.T) {
	issuer := newTestIssuer()
	fixed := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return fixed }
	userID := uuid.New()

	tok, err := issuer.IssueAccess(userID)
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)

	assert.Equal(t, TokenTypeAccess, claims.Type)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "dompet-api", claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{"dompet-clients"}, claims.Audience)
	assert.Equal(t, fixed.Add(15*time.Minute).Unix(), claims.ExpiresAt.Unix())
}

func TestParseRefresh_RejectsAccessToken(t *testing.T) {
	issuer := newTestIssuer()

	tok, err := issuer.IssueAccess(uuid.New())
	require.NoError(t, err)

	_, err = issuer.ParseRefresh(tok)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}

func TestParseRefresh_Expired(t *testing.T) {
	issuer := newTestIssuer()
	issuer.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

	pair, err := issuer.IssuePair(uuid.New())
	require.NoError(t, err)

	issuer.now = time.Now
	_, err = issuer.ParseRefresh(pair.Refresh)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}

func TestParseRefresh_WrongSecret(t *testing.T) {
	pair, err := newTestIssuer().IssuePair(uuid.New())
	require.NoError(t, err)

	other := NewTokenIssuer([]byte("another-secret-key-that-is-32-bytes!!"), "dompet-api", "dompet-clients", time.Minute, time.Hour)
	_, err = other.ParseRefresh(pair.Refresh)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}

func TestParseRefresh_WrongAudience(t *testing.T) {
	pair, err := newTestIssuer().IssuePair(uuid.New())
	require.NoError(t, err)

	other := NewTokenIssuer(testSecret, "dompet-api", "someone-else", time.Minute, time.Hour)
	_, err = other.ParseRefresh(pair.Refresh)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}

func TestParseRefresh_Garbage(t *testing.T) {
	_, err := newTestIssuer().ParseRefresh("not.a.token")
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}
