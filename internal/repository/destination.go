package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/KikiG13/travelife/internal/domain"
)

const destinationsCollection = "destinations"

type destinationDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Country      string             `bson:"country"`
	City         string             `bson:"city"`
	Comment      *string            `bson:"comment,omitempty"`
	FavoriteDish *string            `bson:"favoriteDish,omitempty"`
	Site1        *string            `bson:"site1,omitempty"`
	Site2        *string            `bson:"site2,omitempty"`
	Site3        *string            `bson:"site3,omitempty"`
	Photo        *string            `bson:"photo,omitempty"`
	Rating       *float64           `bson:"rating,omitempty"`
	Owner        string             `bson:"owner"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

// ownerLoader resolves owner references for FindOptions.PopulateOwner.
type ownerLoader interface {
	GetManyByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

type destinationRepository struct {
	coll   *mongo.Collection
	owners ownerLoader
	now    func() time.Time
}

func newDestinationRepository(coll *mongo.Collection, owners ownerLoader) *destinationRepository {
	return &destinationRepository{
		coll:   coll,
		owners: owners,
		now:    mongoNow,
	}
}

// EnsureDestinationIndexes creates the owner index used by ownership lookups.
func EnsureDestinationIndexes(ctx context.Context, mongoDB *mongo.Database) error {
	_, err := mongoDB.Collection(destinationsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "owner", Value: 1}},
		Options: options.Index().SetName("owner_1"),
	})
	if err != nil {
		return fmt.Errorf("create destinations owner index: %w", err)
	}
	return nil
}

func (r *destinationRepository) Create(ctx context.Context, destination *domain.Destination) error {
	now := r.now()
	destination.CreatedAt = now
	destination.UpdatedAt = now

	doc := toDestinationDocument(destination)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("mongo insert destination: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("mongo insert destination: unexpected id type %T", res.InsertedID)
	}
	destination.ID = oid.Hex()

	return nil
}

func (r *destinationRepository) GetAll(ctx context.Context, opts domain.FindOptions) ([]domain.Destination, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("mongo find destinations: %w", err)
	}

	var docs []destinationDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo decode destinations: %w", err)
	}

	destinations := make([]domain.Destination, 0, len(docs))
	for i := range docs {
		destinations = append(destinations, docs[i].toDomain())
	}

	if opts.PopulateOwner {
		if err := r.populateOwners(ctx, destinations); err != nil {
			return nil, err
		}
	}

	return destinations, nil
}

func (r *destinationRepository) GetByID(ctx context.Context, id string, opts domain.FindOptions) (*domain.Destination, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	var doc destinationDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("mongo find destination by id: %w", err)
	}

	destination := doc.toDomain()
	if opts.PopulateOwner {
		one := []domain.Destination{destination}
		if err := r.populateOwners(ctx, one); err != nil {
			return nil, err
		}
		destination = one[0]
	}

	return &destination, nil
}

func (r *destinationRepository) Update(ctx context.Context, id string, patch domain.DestinationPatch) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	set := patchToSet(patch)
	set["updatedAt"] = r.now()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("mongo update destination: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *destinationRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("mongo delete destination: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// populateOwners fills Owner in place. Owners that no longer exist stay nil.
func (r *destinationRepository) populateOwners(ctx context.Context, destinations []domain.Destination) error {
	if len(destinations) == 0 {
		return nil
	}

	seen := make(map[uuid.UUID]struct{}, len(destinations))
	ids := make([]uuid.UUID, 0, len(destinations))
	for _, d := range destinations {
		if _, ok := seen[d.OwnerID]; ok {
			continue
		}
		seen[d.OwnerID] = struct{}{}
		ids = append(ids, d.OwnerID)
	}

	users, err := r.owners.GetManyByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("populate destination owners: %w", err)
	}

	byID := make(map[uuid.UUID]*domain.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	for i := range destinations {
		destinations[i].Owner = byID[destinations[i].OwnerID]
	}

	return nil
}

func toDestinationDocument(d *domain.Destination) destinationDocument {
	return destinationDocument{
		Country:      d.Country,
		City:         d.City,
		Comment:      d.Comment,
		FavoriteDish: d.FavoriteDish,
		Site1:        d.Site1,
		Site2:        d.Site2,
		Site3:        d.Site3,
		Photo:        d.Photo,
		Rating:       d.Rating,
		Owner:        d.OwnerID.String(),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (doc *destinationDocument) toDomain() domain.Destination {
	// a malformed owner decodes to uuid.Nil, which no caller can match
	owner, _ := uuid.Parse(doc.Owner)

	return domain.Destination{
		ID:           doc.ID.Hex(),
		Country:      doc.Country,
		City:         doc.City,
		Comment:      doc.Comment,
		FavoriteDish: doc.FavoriteDish,
		Site1:        doc.Site1,
		Site2:        doc.Site2,
		Site3:        doc.Site3,
		Photo:        doc.Photo,
		Rating:       doc.Rating,
		OwnerID:      owner,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

func patchToSet(p domain.DestinationPatch) bson.M {
	set := bson.M{}
	if p.Country != nil {
		set["country"] = *p.Country
	}
	if p.City != nil {
		set["city"] = *p.City
	}
	if p.Comment != nil {
		set["comment"] = *p.Comment
	}
	if p.FavoriteDish != nil {
		set["favoriteDish"] = *p.FavoriteDish
	}
	if p.Site1 != nil {
		set["site1"] = *p.Site1
	}
	if p.Site2 != nil {
		set["site2"] = *p.Site2
	}
	if p.Site3 != nil {
		set["site3"] = *p.Site3
	}
	if p.Photo != nil {
		set["photo"] = *p.Photo
	}
	if p.Rating != nil {
		set["rating"] = *p.Rating
	}
	return set
}

// mongoNow matches the millisecond precision BSON dates are stored with.
func mongoNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
