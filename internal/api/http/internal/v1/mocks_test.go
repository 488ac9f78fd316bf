package v1

import (
	"context"

	"github.com/google/uuid"

	"github.com/KikiG13/travelife/internal/domain"
	"github.com/KikiG13/travelife/internal/service"
	"github.com/KikiG13/travelife/pkg/auth"
)

var (
	_ service.Users        = (*mockUsers)(nil)
	_ service.Destinations = (*mockDestinations)(nil)
)

type mockUsers struct {
	signUp       func(ctx context.Context, email string, password string) (*domain.User, error)
	signIn       func(ctx context.Context, email string, password string, userAgent string, userIP string) (*domain.User, *service.Tokens, error)
	refresh      func(ctx context.Context, refreshToken string, userAgent string, userIP string) (*service.Tokens, error)
	signOut      func(ctx context.Context, claims *auth.Claims) error
	authenticate func(ctx context.Context, accessToken string) (*domain.User, *auth.Claims, error)
}

func (m *mockUsers) SignUp(ctx context.Context, email string, password string) (*domain.User, error) {
	return m.signUp(ctx, email, password)
}

func (m *mockUsers) SignIn(ctx context.Context, email string, password string, userAgent string, userIP string) (*domain.User, *service.Tokens, error) {
	return m.signIn(ctx, email, password, userAgent, userIP)
}

func (m *mockUsers) Refresh(ctx context.Context, refreshToken string, userAgent string, userIP string) (*service.Tokens, error) {
	return m.refresh(ctx, refreshToken, userAgent, userIP)
}

func (m *mockUsers) SignOut(ctx context.Context, claims *auth.Claims) error {
	return m.signOut(ctx, claims)
}

func (m *mockUsers) Authenticate(ctx context.Context, accessToken string) (*domain.User, *auth.Claims, error) {
	return m.authenticate(ctx, accessToken)
}

type mockDestinations struct {
	list   func(ctx context.Context) ([]domain.Destination, error)
	show   func(ctx context.Context, id string) (*domain.Destination, error)
	create func(ctx context.Context, caller *domain.User, input domain.Destination) (*domain.Destination, error)
	update func(ctx context.Context, caller *domain.User, id string, fields map[string]any) error
	delete func(ctx context.Context, caller *domain.User, id string) error
}

func (m *mockDestinations) List(ctx context.Context) ([]domain.Destination, error) {
	return m.list(ctx)
}

func (m *mockDestinations) Show(ctx context.Context, id string) (*domain.Destination, error) {
	return m.show(ctx, id)
}

func (m *mockDestinations) Create(ctx context.Context, caller *domain.User, input domain.Destination) (*domain.Destination, error) {
	return m.create(ctx, caller, input)
}

func (m *mockDestinations) Update(ctx context.Context, caller *domain.User, id string, fields map[string]any) error {
	return m.update(ctx, caller, id, fields)
}

func (m *mockDestinations) Delete(ctx context.Context, caller *domain.User, id string) error {
	return m.delete(ctx, caller, id)
}

// knownUsers authenticates the bearer tokens "alice" and "bob".
func knownUsers(alice, bob *domain.User) func(context.Context, string) (*domain.User, *auth.Claims, error) {
	return func(_ context.Context, token string) (*domain.User, *auth.Claims, error) {
		switch token {
		case "alice":
			return alice, &auth.Claims{UserID: alice.ID, TokenID: "alice-jti"}, nil
		case "bob":
			return bob, &auth.Claims{UserID: bob.ID, TokenID: "bob-jti"}, nil
		}
		return nil, nil, domain.ErrUnauthorized
	}
}

func newTestUser(email string) *domain.User {
	return &domain.User{ID: uuid.New(), Email: email}
}
