package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/KikiG13/travelife/internal/domain"
	"github.com/KikiG13/travelife/internal/repository"
)

// Test doubles: set only the function fields a test needs.

type mockDestinationRepo struct {
	create  func(ctx context.Context, d *domain.Destination) error
	getAll  func(ctx context.Context, opts domain.FindOptions) ([]domain.Destination, error)
	getByID func(ctx context.Context, id string, opts domain.FindOptions) (*domain.Destination, error)
	update  func(ctx context.Context, id string, patch domain.DestinationPatch) error
	delete  func(ctx context.Context, id string) error
}

func (m *mockDestinationRepo) Create(ctx context.Context, d *domain.Destination) error {
	return m.create(ctx, d)
}
func (m *mockDestinationRepo) GetAll(ctx context.Context, opts domain.FindOptions) ([]domain.Destination, error) {
	return m.getAll(ctx, opts)
}
func (m *mockDestinationRepo) GetByID(ctx context.Context, id string, opts domain.FindOptions) (*domain.Destination, error) {
	return m.getByID(ctx, id, opts)
}
func (m *mockDestinationRepo) Update(ctx context.Context, id string, patch domain.DestinationPatch) error {
	return m.update(ctx, id, patch)
}
func (m *mockDestinationRepo) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

var _ repository.Destinations = (*mockDestinationRepo)(nil)

type mockUserRepo struct {
	create       func(ctx context.Context, user *domain.User) error
	getByEmail   func(ctx context.Context, email string) (*domain.User, error)
	getOneByID   func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	getManyByIDs func(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.create(ctx, user)
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.getByEmail(ctx, email)
}
func (m *mockUserRepo) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.getOneByID(ctx, id)
}
func (m *mockUserRepo) GetManyByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	return m.getManyByIDs(ctx, ids)
}

var _ repository.Users = (*mockUserRepo)(nil)

type mockRefreshSessionRepo struct {
	create            func(ctx context.Context, session *domain.RefreshSession) error
	getByRefreshToken func(ctx context.Context, token uuid.UUID) (*domain.RefreshSession, error)
	delete            func(ctx context.Context, id uuid.UUID) error
}

func (m *mockRefreshSessionRepo) Create(ctx context.Context, session *domain.RefreshSession) error {
	return m.create(ctx, session)
}
func (m *mockRefreshSessionRepo) GetByRefreshToken(ctx context.Context, token uuid.UUID) (*domain.RefreshSession, error) {
	return m.getByRefreshToken(ctx, token)
}
func (m *mockRefreshSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repository.RefreshSession = (*mockRefreshSessionRepo)(nil)

// memRevokedTokens is an in-memory stand-in for the redis store.
type memRevokedTokens struct {
	revoked map[string]time.Time
}

func newMemRevokedTokens() *memRevokedTokens {
	return &memRevokedTokens{revoked: map[string]time.Time{}}
}

func (m *memRevokedTokens) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	m.revoked[tokenID] = expiresAt
	return nil
}

func (m *memRevokedTokens) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := m.revoked[tokenID]
	return ok, nil
}

var _ repository.RevokedTokens = (*memRevokedTokens)(nil)
