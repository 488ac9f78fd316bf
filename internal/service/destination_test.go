package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KikiG13/travelife/internal/config"
	"github.com/KikiG13/travelife/internal/domain"
	"github.com/KikiG13/travelife/internal/repository"
	"github.com/KikiG13/travelife/internal/service"
)

const destID = "5a7db6c74d55bc51bdf39793"

func newDestinationService(repo *mockDestinationRepo) service.Destinations {
	return service.NewServices(service.Deps{
		Config: &config.Config{},
		Repos:  &repository.Repositories{Destinations: repo},
	}).Destinations
}

func ownedBy(owner uuid.UUID) *domain.Destination {
	return &domain.Destination{ID: destID, Country: "JP", City: "Tokyo", OwnerID: owner}
}

func foundRepo(d *domain.Destination) *mockDestinationRepo {
	return &mockDestinationRepo{
		getByID: func(_ context.Context, _ string, _ domain.FindOptions) (*domain.Destination, error) {
			copied := *d
			return &copied, nil
		},
	}
}

func missingRepo() *mockDestinationRepo {
	return &mockDestinationRepo{
		getByID: func(_ context.Context, _ string, _ domain.FindOptions) (*domain.Destination, error) {
			return nil, domain.ErrNotFound
		},
	}
}

// ---- List / Show -----------------------------------------------------------

func TestDestinationService_List_PopulatesOwner(t *testing.T) {
	var gotOpts domain.FindOptions
	repo := &mockDestinationRepo{
		getAll: func(_ context.Context, opts domain.FindOptions) ([]domain.Destination, error) {
			gotOpts = opts
			return []domain.Destination{*ownedBy(uuid.New())}, nil
		},
	}

	got, err := newDestinationService(repo).List(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.True(t, gotOpts.PopulateOwner)
}

func TestDestinationService_List_RepoError(t *testing.T) {
	repo := &mockDestinationRepo{
		getAll: func(_ context.Context, _ domain.FindOptions) ([]domain.Destination, error) {
			return nil, errors.New("connection reset")
		},
	}

	_, err := newDestinationService(repo).List(context.Background())

	assert.ErrorContains(t, err, "connection reset")
}

func TestDestinationService_Show(t *testing.T) {
	d := ownedBy(uuid.New())

	got, err := newDestinationService(foundRepo(d)).Show(context.Background(), destID)

	require.NoError(t, err)
	assert.Equal(t, "Tokyo", got.City)
}

func TestDestinationService_Show_NotFound(t *testing.T) {
	_, err := newDestinationService(missingRepo()).Show(context.Background(), destID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDestinationService_Show_NilRecordIsNotFound(t *testing.T) {
	repo := &mockDestinationRepo{
		getByID: func(_ context.Context, _ string, _ domain.FindOptions) (*domain.Destination, error) {
			return nil, nil
		},
	}

	_, err := newDestinationService(repo).Show(context.Background(), destID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Create ----------------------------------------------------------------

func TestDestinationService_Create_BindsOwnerToCaller(t *testing.T) {
	caller := &domain.User{ID: uuid.New()}
	var saved domain.Destination
	repo := &mockDestinationRepo{
		create: func(_ context.Context, d *domain.Destination) error {
			d.ID = destID
			saved = *d
			return nil
		},
	}

	input := domain.Destination{Country: "JP", City: "Tokyo", OwnerID: uuid.New(), ID: "client-chosen"}
	got, err := newDestinationService(repo).Create(context.Background(), caller, input)

	require.NoError(t, err)
	assert.Equal(t, caller.ID, got.OwnerID)
	assert.Equal(t, caller.ID, saved.OwnerID)
	assert.Equal(t, destID, got.ID)
}

func TestDestinationService_Create_MissingCity(t *testing.T) {
	repo := &mockDestinationRepo{
		create: func(_ context.Context, _ *domain.Destination) error {
			t.Fatal("repository must not be called")
			return nil
		},
	}

	_, err := newDestinationService(repo).Create(context.Background(), &domain.User{ID: uuid.New()}, domain.Destination{Country: "JP"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- Update ----------------------------------------------------------------

func TestDestinationService_Update_StripsBlanksAndOwner(t *testing.T) {
	caller := &domain.User{ID: uuid.New()}
	repo := foundRepo(ownedBy(caller.ID))
	var gotPatch domain.DestinationPatch
	repo.update = func(_ context.Context, id string, patch domain.DestinationPatch) error {
		assert.Equal(t, destID, id)
		gotPatch = patch
		return nil
	}

	err := newDestinationService(repo).Update(context.Background(), caller, destID, map[string]any{
		"city":    "",
		"comment": "nice",
		"owner":   uuid.NewString(),
		"rating":  float64(4),
	})

	require.NoError(t, err)
	assert.Nil(t, gotPatch.City)
	require.NotNil(t, gotPatch.Comment)
	assert.Equal(t, "nice", *gotPatch.Comment)
	require.NotNil(t, gotPatch.Rating)
	assert.Equal(t, 4.0, *gotPatch.Rating)
}

func TestDestinationService_Update_Forbidden(t *testing.T) {
	repo := foundRepo(ownedBy(uuid.New()))
	repo.update = func(_ context.Context, _ string, _ domain.DestinationPatch) error {
		t.Fatal("repository update must not be called")
		return nil
	}

	err := newDestinationService(repo).Update(context.Background(), &domain.User{ID: uuid.New()}, destID, map[string]any{"city": "Osaka"})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDestinationService_Update_OwnerInPayloadDoesNotGrantAccess(t *testing.T) {
	owner := uuid.New()
	intruder := &domain.User{ID: uuid.New()}
	repo := foundRepo(ownedBy(owner))

	err := newDestinationService(repo).Update(context.Background(), intruder, destID, map[string]any{
		"owner": intruder.ID.String(),
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDestinationService_Update_NotFound(t *testing.T) {
	err := newDestinationService(missingRepo()).Update(context.Background(), &domain.User{ID: uuid.New()}, destID, map[string]any{"city": "Osaka"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDestinationService_Update_WrongType(t *testing.T) {
	caller := &domain.User{ID: uuid.New()}
	repo := foundRepo(ownedBy(caller.ID))

	err := newDestinationService(repo).Update(context.Background(), caller, destID, map[string]any{"rating": "five"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDestinationService_Update_DoesNotMutatePayload(t *testing.T) {
	caller := &domain.User{ID: uuid.New()}
	repo := foundRepo(ownedBy(caller.ID))
	repo.update = func(_ context.Context, _ string, _ domain.DestinationPatch) error { return nil }

	payload := map[string]any{"city": "", "owner": "x"}
	require.NoError(t, newDestinationService(repo).Update(context.Background(), caller, destID, payload))

	assert.Len(t, payload, 2)
}

// ---- Delete ----------------------------------------------------------------

func TestDestinationService_Delete(t *testing.T) {
	caller := &domain.User{ID: uuid.New()}
	repo := foundRepo(ownedBy(caller.ID))
	deleted := false
	repo.delete = func(_ context.Context, id string) error {
		deleted = id == destID
		return nil
	}

	require.NoError(t, newDestinationService(repo).Delete(context.Background(), caller, destID))
	assert.True(t, deleted)
}

func TestDestinationService_Delete_Forbidden(t *testing.T) {
	repo := foundRepo(ownedBy(uuid.New()))
	repo.delete = func(_ context.Context, _ string) error {
		t.Fatal("repository delete must not be called")
		return nil
	}

	err := newDestinationService(repo).Delete(context.Background(), &domain.User{ID: uuid.New()}, destID)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDestinationService_Delete_NotFound(t *testing.T) {
	err := newDestinationService(missingRepo()).Delete(context.Background(), &domain.User{ID: uuid.New()}, destID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDestinationService_Delete_RepoError(t *testing.T) {
	caller := &domain.User{ID: uuid.New()}
	repo := foundRepo(ownedBy(caller.ID))
	repo.delete = func(_ context.Context, _ string) error { return errors.New("write concern") }

	err := newDestinationService(repo).Delete(context.Background(), caller, destID)

	assert.ErrorContains(t, err, "write concern")
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
