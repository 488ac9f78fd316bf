package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KikiG13/travelife/internal/config"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(config.JWTConfig{
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
		SigningKey:      "test-key",
	})
	require.NoError(t, err)
	return m
}

func TestNewManager_Invalid(t *testing.T) {
	_, err := NewManager(config.JWTConfig{AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour})
	assert.Error(t, err)

	_, err = NewManager(config.JWTConfig{SigningKey: "k", RefreshTokenTTL: time.Hour})
	assert.Error(t, err)

	_, err = NewManager(config.JWTConfig{SigningKey: "k", AccessTokenTTL: time.Minute})
	assert.Error(t, err)
}

func TestManager_RoundTrip(t *testing.T) {
	m := newTestManager(t)
	userID := uuid.New()

	token, err := m.NewJWT(userID)
	require.NoError(t, err)

	claims, err := m.Parse(token.Token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, token.TokenID, claims.TokenID)
	assert.WithinDuration(t, token.ExpiresAt, claims.ExpiresAt, time.Second)
}

func TestManager_Parse_Expired(t *testing.T) {
	m := newTestManager(t)
	issued := time.Now().Add(-time.Hour)
	m.now = func() time.Time { return issued }

	token, err := m.NewJWT(uuid.New())
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Parse(token.Token)

	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestManager_Parse_WrongKey(t *testing.T) {
	m := newTestManager(t)
	token, err := m.NewJWT(uuid.New())
	require.NoError(t, err)

	other := newTestManager(t)
	other.signingKey = "another-key"

	_, err = other.Parse(token.Token)

	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestManager_Parse_Garbage(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Parse("not-a-token")

	assert.Error(t, err)
}

func TestManager_RefreshToken(t *testing.T) {
	m := newTestManager(t)

	token, ttl, err := m.NewRefreshToken()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, ttl)

	parsed, err := m.ValidateRefreshToken(token.String())
	require.NoError(t, err)
	assert.Equal(t, token, parsed)

	_, err = m.ValidateRefreshToken("nope")
	assert.Error(t, err)
}
