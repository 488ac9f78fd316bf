package repository

import (
	"context"
	"time"

	"github.com/KikiG13/travelife/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repositories struct {
	Users          Users
	RefreshSession RefreshSession
	Destinations   Destinations
	RevokedTokens  RevokedTokens
}

func NewRepositories(db *sqlx.DB, mongoDB *mongo.Database, rdb redis.UniversalClient) *Repositories {
	users := newUserRepository(db)
	return &Repositories{
		Users:          users,
		RefreshSession: newRefreshSessionRepository(db),
		Destinations:   newDestinationRepository(mongoDB.Collection(destinationsCollection), users),
		RevokedTokens:  newRevokedTokenRepository(rdb),
	}
}

type Users interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetManyByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

type RefreshSession interface {
	Create(ctx context.Context, session *domain.RefreshSession) error
	GetByRefreshToken(ctx context.Context, refreshToken uuid.UUID) (*domain.RefreshSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Destinations interface {
	Create(ctx context.Context, destination *domain.Destination) error
	GetAll(ctx context.Context, opts domain.FindOptions) ([]domain.Destination, error)
	GetByID(ctx context.Context, id string, opts domain.FindOptions) (*domain.Destination, error)
	Update(ctx context.Context, id string, patch domain.DestinationPatch) error
	Delete(ctx context.Context, id string) error
}

type RevokedTokens interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
