package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KikiG13/travelife/internal/domain"
	"github.com/KikiG13/travelife/internal/repository"
	"github.com/KikiG13/travelife/pkg/auth"
	"github.com/KikiG13/travelife/pkg/hash"

	"github.com/google/uuid"
)

type userService struct {
	userRepository           repository.Users
	refreshSessionRepository repository.RefreshSession
	revokedTokenRepository   repository.RevokedTokens
	hasher                   hash.PasswordHasher
	tokenManager             auth.TokenManager
	now                      func() time.Time
}

func newUserService(userRepository repository.Users,
	refreshSessionRepository repository.RefreshSession,
	revokedTokenRepository repository.RevokedTokens,
	hasher hash.PasswordHasher,
	tokenManager auth.TokenManager,
) *userService {
	return &userService{
		userRepository:           userRepository,
		refreshSessionRepository: refreshSessionRepository,
		revokedTokenRepository:   revokedTokenRepository,
		hasher:                   hasher,
		tokenManager:             tokenManager,
		now:                      time.Now,
	}
}

type Tokens struct {
	AccessToken     string
	AccessExpiresAt time.Time
	RefreshToken    uuid.UUID
	RefreshTTL      time.Duration
}

func (s *userService) SignUp(ctx context.Context, email string, password string) (*domain.User, error) {
	userID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate user id failed: %w", err)
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	now := s.now().UTC()
	user := &domain.User{
		ID:             userID,
		Email:          normalizeEmail(email),
		HashedPassword: hashed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.userRepository.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, ErrUserAlreadyExist
		}
		return nil, fmt.Errorf("create user failed: %w", err)
	}

	return user, nil
}

func (s *userService) SignIn(ctx context.Context, email string, password string, userAgent string, userIP string) (*domain.User, *Tokens, error) {
	user, err := s.userRepository.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("get user by email failed: %w", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		if errors.Is(err, hash.ErrMismatchedPassword) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("compare password failed: %w", err)
	}

	tokens, err := s.createSession(ctx, user.ID, userAgent, userIP)
	if err != nil {
		return nil, nil, fmt.Errorf("create session failed: %w", err)
	}

	return user, tokens, nil
}

// Refresh rotates a refresh session: the old one is removed and a new pair issued.
func (s *userService) Refresh(ctx context.Context, refreshToken string, userAgent string, userIP string) (*Tokens, error) {
	token, err := s.tokenManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnauthorized, err.Error())
	}

	session, err := s.refreshSessionRepository.GetByRefreshToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown refresh token", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("get refresh session failed: %w", err)
	}

	if err := s.refreshSessionRepository.Delete(ctx, session.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("delete refresh session failed: %w", err)
	}

	if session.Expired(s.now()) {
		return nil, ErrRefreshSessionExpiry
	}

	return s.createSession(ctx, session.UserID, userAgent, userIP)
}

func (s *userService) SignOut(ctx context.Context, claims *auth.Claims) error {
	if err := s.revokedTokenRepository.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		return fmt.Errorf("revoke token failed: %w", err)
	}
	return nil
}

func (s *userService) Authenticate(ctx context.Context, accessToken string) (*domain.User, *auth.Claims, error) {
	claims, err := s.tokenManager.Parse(accessToken)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}

	revoked, err := s.revokedTokenRepository.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return nil, nil, fmt.Errorf("check revoked token failed: %w", err)
	}
	if revoked {
		return nil, nil, ErrTokenRevoked
	}

	user, err := s.userRepository.GetOneByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: user no longer exists", domain.ErrUnauthorized)
		}
		return nil, nil, fmt.Errorf("get user by id failed: %w", err)
	}

	return user, claims, nil
}

func (s *userService) createSession(ctx context.Context, userID uuid.UUID, userAgent string, userIP string) (*Tokens, error) {
	var res Tokens

	access, err := s.tokenManager.NewJWT(userID)
	if err != nil {
		return nil, fmt.Errorf("generate access token failed: %w", err)
	}
	res.AccessToken = access.Token
	res.AccessExpiresAt = access.ExpiresAt

	res.RefreshToken, res.RefreshTTL, err = s.tokenManager.NewRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token failed: %w", err)
	}

	refreshSessionID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate refresh session id failed: %w", err)
	}
	refreshSession := &domain.RefreshSession{
		ID:           refreshSessionID,
		UserID:       userID,
		RefreshToken: res.RefreshToken,
		UserAgent:    userAgent,
		IP:           userIP,
		ExpiresIn:    s.now().Add(res.RefreshTTL),
	}

	if err := s.refreshSessionRepository.Create(ctx, refreshSession); err != nil {
		return nil, fmt.Errorf("create refresh session failed: %w", err)
	}

	return &res, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
