package service

import (
	"context"

	"github.com/KikiG13/travelife/internal/config"
	"github.com/KikiG13/travelife/internal/domain"
	"github.com/KikiG13/travelife/internal/repository"
	"github.com/KikiG13/travelife/pkg/auth"
	"github.com/KikiG13/travelife/pkg/hash"
)

type Services struct {
	Users        Users
	Destinations Destinations
}

type Deps struct {
	Config       *config.Config
	Hasher       hash.PasswordHasher
	TokenManager auth.TokenManager
	Repos        *repository.Repositories
}

func NewServices(deps Deps) *Services {
	return &Services{
		Users: newUserService(deps.Repos.Users,
			deps.Repos.RefreshSession,
			deps.Repos.RevokedTokens,
			deps.Hasher,
			deps.TokenManager,
		),
		Destinations: newDestinationService(deps.Repos.Destinations),
	}
}

type Users interface {
	SignUp(ctx context.Context, email string, password string) (*domain.User, error)
	SignIn(ctx context.Context, email string, password string, userAgent string, userIP string) (*domain.User, *Tokens, error)
	Refresh(ctx context.Context, refreshToken string, userAgent string, userIP string) (*Tokens, error)
	SignOut(ctx context.Context, claims *auth.Claims) error
	// Authenticate resolves a bearer access token to the user it was issued for.
	Authenticate(ctx context.Context, accessToken string) (*domain.User, *auth.Claims, error)
}

type Destinations interface {
	List(ctx context.Context) ([]domain.Destination, error)
	Show(ctx context.Context, id string) (*domain.Destination, error)
	Create(ctx context.Context, caller *domain.User, input domain.Destination) (*domain.Destination, error)
	Update(ctx context.Context, caller *domain.User, id string, fields map[string]any) error
	Delete(ctx context.Context, caller *domain.User, id string) error
}
