package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KikiG13/travelife/internal/domain"
	"github.com/KikiG13/travelife/internal/repository"
	"github.com/KikiG13/travelife/pkg/blank"
)

// ownerField is never accepted from clients on update.
const ownerField = "owner"

type destinationService struct {
	destinationRepository repository.Destinations
}

func newDestinationService(destinationRepository repository.Destinations) *destinationService {
	return &destinationService{
		destinationRepository: destinationRepository,
	}
}

func (s *destinationService) List(ctx context.Context) ([]domain.Destination, error) {
	destinations, err := s.destinationRepository.GetAll(ctx, domain.FindOptions{PopulateOwner: true})
	if err != nil {
		return nil, fmt.Errorf("get all destinations failed: %w", err)
	}
	return destinations, nil
}

func (s *destinationService) Show(ctx context.Context, id string) (*domain.Destination, error) {
	return ensureFound(s.destinationRepository.GetByID(ctx, id, domain.FindOptions{PopulateOwner: true}))
}

func (s *destinationService) Create(ctx context.Context, caller *domain.User, input domain.Destination) (*domain.Destination, error) {
	destination := input
	destination.ID = ""
	destination.Owner = nil
	destination.OwnerID = caller.ID

	if err := destination.Validate(); err != nil {
		return nil, err
	}

	if err := s.destinationRepository.Create(ctx, &destination); err != nil {
		return nil, fmt.Errorf("create destination failed: %w", err)
	}

	return &destination, nil
}

func (s *destinationService) Update(ctx context.Context, caller *domain.User, id string, fields map[string]any) error {
	destination, err := ensureFound(s.destinationRepository.GetByID(ctx, id, domain.FindOptions{}))
	if err != nil {
		return err
	}

	if _, err := checkOwnership(caller, destination); err != nil {
		return err
	}

	fields = blank.Strip(fields)
	delete(fields, ownerField)

	patch, err := decodePatch(fields)
	if err != nil {
		return err
	}

	if err := s.destinationRepository.Update(ctx, destination.ID, patch); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update destination failed: %w", err)
	}

	return nil
}

func (s *destinationService) Delete(ctx context.Context, caller *domain.User, id string) error {
	destination, err := ensureFound(s.destinationRepository.GetByID(ctx, id, domain.FindOptions{}))
	if err != nil {
		return err
	}

	if _, err := checkOwnership(caller, destination); err != nil {
		return err
	}

	if err := s.destinationRepository.Delete(ctx, destination.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete destination failed: %w", err)
	}

	return nil
}

// ensureFound turns an empty lookup into domain.ErrNotFound.
func ensureFound(destination *domain.Destination, err error) (*domain.Destination, error) {
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get destination by id failed: %w", err)
	}
	if destination == nil {
		return nil, domain.ErrNotFound
	}
	return destination, nil
}

// checkOwnership lets the record through only for its owner.
func checkOwnership(caller *domain.User, destination *domain.Destination) (*domain.Destination, error) {
	if caller == nil || caller.ID != destination.OwnerID {
		return nil, domain.ErrForbidden
	}
	return destination, nil
}

// decodePatch maps a sanitized JSON object onto the typed patch. Unknown keys
// are ignored; a value of the wrong type is a validation error.
func decodePatch(fields map[string]any) (domain.DestinationPatch, error) {
	var patch domain.DestinationPatch
	if len(fields) == 0 {
		return patch, nil
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return patch, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	if err := json.NewDecoder(bytes.NewReader(raw)).Decode(&patch); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return patch, fmt.Errorf("%w: %s must be a %s", domain.ErrValidation, typeErr.Field, typeErr.Type.String())
		}
		return patch, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	return patch, nil
}
