package apiHttp

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/KikiG13/travelife/internal/domain"
	"github.com/KikiG13/travelife/internal/repository"
)

var (
	_ repository.Users          = (*memUsers)(nil)
	_ repository.RefreshSession = (*memSessions)(nil)
	_ repository.Destinations   = (*memDestinations)(nil)
	_ repository.RevokedTokens  = (*memRevoked)(nil)
)

type memUsers struct {
	mu    sync.Mutex
	byID  map[uuid.UUID]domain.User
	email map[string]uuid.UUID
}

func newMemUsers() *memUsers {
	return &memUsers{byID: map[uuid.UUID]domain.User{}, email: map[string]uuid.UUID{}}
}

func (r *memUsers) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.email[user.Email]; ok {
		return domain.ErrDuplicateEntry
	}
	r.byID[user.ID] = *user
	r.email[user.Email] = user.ID
	return nil
}

func (r *memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.email[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u := r.byID[id]
	return &u, nil
}

func (r *memUsers) GetOneByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (r *memUsers) GetManyByIDs(_ context.Context, ids []uuid.UUID) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := r.byID[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

type memSessions struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]domain.RefreshSession
}

func (r *memSessions) Create(_ context.Context, s *domain.RefreshSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = *s
	return nil
}

func (r *memSessions) GetByRefreshToken(_ context.Context, token uuid.UUID) (*domain.RefreshSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions {
		if s.RefreshToken == token {
			return &s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memSessions) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.sessions, id)
	return nil
}

type memDestinations struct {
	mu    sync.Mutex
	docs  map[string]domain.Destination
	users *memUsers
}

func (r *memDestinations) Create(_ context.Context, d *domain.Destination) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	d.ID = primitive.NewObjectID().Hex()
	d.CreatedAt, d.UpdatedAt = now, now
	r.docs[d.ID] = *d
	return nil
}

func (r *memDestinations) GetAll(ctx context.Context, opts domain.FindOptions) ([]domain.Destination, error) {
	r.mu.Lock()
	out := make([]domain.Destination, 0, len(r.docs))
	for _, d := range r.docs {
		out = append(out, d)
	}
	r.mu.Unlock()

	if opts.PopulateOwner {
		for i := range out {
			out[i].Owner, _ = r.users.GetOneByID(ctx, out[i].OwnerID)
		}
	}
	return out, nil
}

func (r *memDestinations) GetByID(ctx context.Context, id string, opts domain.FindOptions) (*domain.Destination, error) {
	if !primitive.IsValidObjectID(id) {
		return nil, domain.ErrNotFound
	}
	r.mu.Lock()
	d, ok := r.docs[id]
	r.mu.Unlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	if opts.PopulateOwner {
		d.Owner, _ = r.users.GetOneByID(ctx, d.OwnerID)
	}
	return &d, nil
}

func (r *memDestinations) Update(_ context.Context, id string, patch domain.DestinationPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.docs[id]
	if !ok {
		return domain.ErrNotFound
	}
	patch.Apply(&d)
	d.UpdatedAt = time.Now().UTC()
	r.docs[id] = d
	return nil
}

func (r *memDestinations) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.docs, id)
	return nil
}

type memRevoked struct {
	mu  sync.Mutex
	ids map[string]time.Time
}

func (r *memRevoked) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids[tokenID] = expiresAt
	return nil
}

func (r *memRevoked) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.ids[tokenID]
	return ok, nil
}

func newMemRepositories() *repository.Repositories {
	users := newMemUsers()
	return &repository.Repositories{
		Users:          users,
		RefreshSession: &memSessions{sessions: map[uuid.UUID]domain.RefreshSession{}},
		Destinations:   &memDestinations{docs: map[string]domain.Destination{}, users: users},
		RevokedTokens:  &memRevoked{ids: map[string]time.Time{}},
	}
}
