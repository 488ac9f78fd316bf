package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Destination is a place a user has been or plans to go. OwnerID is bound
// once at creation and never changes afterwards.
type Destination struct {
	ID           string
	Country      string
	City         string
	Comment      *string
	FavoriteDish *string
	Site1        *string
	Site2        *string
	Site3        *string
	Photo        *string
	Rating       *float64
	OwnerID      uuid.UUID

	// Owner is filled only when the record was read with FindOptions.PopulateOwner.
	Owner *User

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (d *Destination) Validate() error {
	if strings.TrimSpace(d.Country) == "" {
		return fmt.Errorf("%w: country is required", ErrValidation)
	}
	if strings.TrimSpace(d.City) == "" {
		return fmt.Errorf("%w: city is required", ErrValidation)
	}
	if d.OwnerID == uuid.Nil {
		return fmt.Errorf("%w: owner is required", ErrValidation)
	}
	return nil
}

// DestinationPatch is a partial update. Nil fields are left untouched.
type DestinationPatch struct {
	Country      *string  `json:"country"`
	City         *string  `json:"city"`
	Comment      *string  `json:"comment"`
	FavoriteDish *string  `json:"favoriteDish"`
	Site1        *string  `json:"site1"`
	Site2        *string  `json:"site2"`
	Site3        *string  `json:"site3"`
	Photo        *string  `json:"photo"`
	Rating       *float64 `json:"rating"`
}

func (p DestinationPatch) Empty() bool {
	return p == DestinationPatch{}
}

// Apply merges the patch into d.
func (p DestinationPatch) Apply(d *Destination) {
	if p.Country != nil {
		d.Country = *p.Country
	}
	if p.City != nil {
		d.City = *p.City
	}
	if p.Comment != nil {
		d.Comment = p.Comment
	}
	if p.FavoriteDish != nil {
		d.FavoriteDish = p.FavoriteDish
	}
	if p.Site1 != nil {
		d.Site1 = p.Site1
	}
	if p.Site2 != nil {
		d.Site2 = p.Site2
	}
	if p.Site3 != nil {
		d.Site3 = p.Site3
	}
	if p.Photo != nil {
		d.Photo = p.Photo
	}
	if p.Rating != nil {
		d.Rating = p.Rating
	}
}

// FindOptions controls how destinations are read back.
type FindOptions struct {
	// PopulateOwner replaces the owner id with the full user record.
	PopulateOwner bool
}
