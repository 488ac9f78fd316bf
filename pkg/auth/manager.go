package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/KikiG13/travelife/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrAccessTokenExpired = errors.New("token has invalid claims: token is expired")

// TokenManager provides logic for JWT & Refresh tokens generation and parsing.
type TokenManager interface {
	NewJWT(userID uuid.UUID) (*AccessToken, error)
	Parse(accessToken string) (*Claims, error)
	NewRefreshToken() (uuid.UUID, time.Duration, error)
	ValidateRefreshToken(refreshToken string) (uuid.UUID, error)
}

type AccessToken struct {
	Token     string
	TokenID   string
	ExpiresAt time.Time
}

// Claims is what survives a successful Parse.
type Claims struct {
	UserID    uuid.UUID
	TokenID   string
	ExpiresAt time.Time
}

type Manager struct {
	signingKey      string
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
	now             func() time.Time
}

func NewManager(cfg config.JWTConfig) (*Manager, error) {
	if cfg.SigningKey == "" {
		return nil, errors.New("empty signing key")
	}

	if cfg.AccessTokenTTL == 0 {
		return nil, errors.New("empty access token ttl")
	}

	if cfg.RefreshTokenTTL == 0 {
		return nil, errors.New("empty refresh token ttl")
	}

	return &Manager{
		signingKey:      cfg.SigningKey,
		accessTokenTTL:  cfg.AccessTokenTTL,
		refreshTokenTTL: cfg.RefreshTokenTTL,
		now:             time.Now,
	}, nil
}

func (m *Manager) NewJWT(userID uuid.UUID) (*AccessToken, error) {
	now := m.now()
	res := &AccessToken{
		TokenID:   uuid.NewString(),
		ExpiresAt: now.Add(m.accessTokenTTL),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        res.TokenID,
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(res.ExpiresAt),
	})

	signed, err := token.SignedString([]byte(m.signingKey))
	if err != nil {
		return nil, errors.New("sign jwt failed")
	}
	res.Token = signed

	return res, nil
}

func (m *Manager) Parse(accessToken string) (*Claims, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(accessToken, &claims, func(token *jwt.Token) (i interface{}, err error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(m.signingKey), nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("token subject is not a user id: %w", err)
	}

	if claims.ID == "" {
		return nil, errors.New("token id is empty")
	}

	return &Claims{
		UserID:    userID,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (m *Manager) NewRefreshToken() (uuid.UUID, time.Duration, error) {
	refreshToken, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, 0, fmt.Errorf("new refresh token failed: %w", err)
	}
	return refreshToken, m.refreshTokenTTL, nil
}

func (m *Manager) ValidateRefreshToken(refreshToken string) (uuid.UUID, error) {
	id, err := uuid.Parse(refreshToken)
	if err != nil {
		return uuid.Nil, fmt.Errorf("refresh token uuid parse: %w", err)
	}

	return id, nil
}
