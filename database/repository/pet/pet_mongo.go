package petRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"petshop/database"
	"petshop/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no pet matches the lookup.
var ErrNotFound = errors.New("pet not found")

// PetRepository defines data access for member pet profiles and the
// pets-for-sale registry.
type PetRepository interface {
	// GetByID retrieves a pet profile by its unique ID.
	GetByID(id string) (*models.Pet, error)
	// FindByOwner retrieves all pet profiles of a member.
	FindByOwner(ownerID string) ([]models.Pet, error)
	// Create inserts a new pet profile.
	Create(pet *models.Pet) error
	// Update replaces an existing pet profile.
	Update(pet *models.Pet) error
	// Delete removes a pet profile.
	Delete(id string) error

	// GetSalePet retrieves a pet-for-sale listing by ID.
	GetSalePet(id string) (*models.SalePet, error)
	// ListSalePets retrieves listings, optionally including sold ones.
	ListSalePets(includeSold bool) ([]models.SalePet, error)
	// CreateSalePet inserts a new listing.
	CreateSalePet(pet *models.SalePet) error
	// UpdateSalePet replaces an existing listing.
	UpdateSalePet(pet *models.SalePet) error
	// DeleteSalePet removes a listing.
	DeleteSalePet(id string) error
}

// MongoPetRepo implements PetRepository using MongoDB.
type MongoPetRepo struct {
	petColl  *mongo.Collection
	saleColl *mongo.Collection
}

// NewMongoPetRepo creates a new instance of PetRepository using MongoDB.
func NewMongoPetRepo() PetRepository {
	db := database.DB()
	repo := &MongoPetRepo{
		petColl:  db.Collection("pets"),
		saleColl: db.Collection("sale_pets"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create pet indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoPetRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.petColl.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "ownerId", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create pet indexes: %w", err)
	}
	if _, err := r.saleColl.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}); err != nil {
		return fmt.Errorf("failed to create sale pet indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a pet profile by its unique ID.
func (r *MongoPetRepo) GetByID(id string) (*models.Pet, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var pet models.Pet
	if err := r.petColl.FindOne(ctx, bson.M{"id": id}).Decode(&pet); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch pet %s: %w", id, err)
	}
	return &pet, nil
}

// FindByOwner retrieves all pet profiles of a member.
func (r *MongoPetRepo) FindByOwner(ownerID string) ([]models.Pet, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.petColl.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, fmt.Errorf("error finding pets for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	var pets []models.Pet
	if err := cursor.All(ctx, &pets); err != nil {
		return nil, fmt.Errorf("error decoding pets: %w", err)
	}
	return pets, nil
}

// Create inserts a new pet profile.
func (r *MongoPetRepo) Create(pet *models.Pet) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.petColl.InsertOne(ctx, pet); err != nil {
		return fmt.Errorf("error creating pet: %w", err)
	}
	return nil
}

// Update replaces an existing pet profile.
func (r *MongoPetRepo) Update(pet *models.Pet) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.petColl.ReplaceOne(ctx, bson.M{"id": pet.ID}, pet)
	if err != nil {
		return fmt.Errorf("error updating pet %s: %w", pet.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a pet profile.
func (r *MongoPetRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.petColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting pet %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// GetSalePet retrieves a pet-for-sale listing by ID.
func (r *MongoPetRepo) GetSalePet(id string) (*models.SalePet, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var pet models.SalePet
	if err := r.saleColl.FindOne(ctx, bson.M{"id": id}).Decode(&pet); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch sale pet %s: %w", id, err)
	}
	return &pet, nil
}

// ListSalePets retrieves listings, optionally including sold ones.
func (r *MongoPetRepo) ListSalePets(includeSold bool) ([]models.SalePet, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{}
	if !includeSold {
		filter["sold"] = false
	}
	cursor, err := r.saleColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing sale pets: %w", err)
	}
	defer cursor.Close(ctx)

	var pets []models.SalePet
	if err := cursor.All(ctx, &pets); err != nil {
		return nil, fmt.Errorf("error decoding sale pets: %w", err)
	}
	return pets, nil
}

// CreateSalePet inserts a new listing.
func (r *MongoPetRepo) CreateSalePet(pet *models.SalePet) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.saleColl.InsertOne(ctx, pet); err != nil {
		return fmt.Errorf("error creating sale pet: %w", err)
	}
	return nil
}

// UpdateSalePet replaces an existing listing.
func (r *MongoPetRepo) UpdateSalePet(pet *models.SalePet) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.saleColl.ReplaceOne(ctx, bson.M{"id": pet.ID}, pet)
	if err != nil {
		return fmt.Errorf("error updating sale pet %s: %w", pet.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteSalePet removes a listing.
func (r *MongoPetRepo) DeleteSalePet(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.saleColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting sale pet %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
