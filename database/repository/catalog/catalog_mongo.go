package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"petshop/database"
	"petshop/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	serviceColl *mongo.Collection
	dayCareColl *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.DB()
	repo := &MongoCatalogRepo{
		serviceColl: db.Collection("services"),
		dayCareColl: db.Collection("daycare_options"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create catalog indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.serviceColl.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}); err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}
	if _, err := r.dayCareColl.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "type", Value: 1}}, Options: options.Index().SetUnique(true)},
	}); err != nil {
		return fmt.Errorf("failed to create daycare indexes: %w", err)
	}
	return nil
}

// GetService retrieves a service definition by its stable id.
func (r *MongoCatalogRepo) GetService(id string) (*models.ServiceDefinition, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var svc models.ServiceDefinition
	if err := r.serviceColl.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch service %s: %w", id, err)
	}
	return &svc, nil
}

// ListServices retrieves all service definitions.
func (r *MongoCatalogRepo) ListServices() ([]models.ServiceDefinition, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.serviceColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.ServiceDefinition
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("error decoding services: %w", err)
	}
	return services, nil
}

// CreateService inserts a new service definition.
func (r *MongoCatalogRepo) CreateService(svc *models.ServiceDefinition) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.serviceColl.InsertOne(ctx, svc); err != nil {
		return fmt.Errorf("error creating service %s: %w", svc.ID, err)
	}
	return nil
}

// UpdateService replaces an existing service definition.
func (r *MongoCatalogRepo) UpdateService(svc *models.ServiceDefinition) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.serviceColl.ReplaceOne(ctx, bson.M{"id": svc.ID}, svc)
	if err != nil {
		return fmt.Errorf("error updating service %s: %w", svc.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteService removes a service definition.
func (r *MongoCatalogRepo) DeleteService(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.serviceColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting service %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CountServices reports how many service definitions exist.
func (r *MongoCatalogRepo) CountServices() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.serviceColl.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error counting services: %w", err)
	}
	return n, nil
}

// GetDayCareOption retrieves a day-care option by type.
func (r *MongoCatalogRepo) GetDayCareOption(optionType string) (*models.DayCareOption, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var opt models.DayCareOption
	if err := r.dayCareColl.FindOne(ctx, bson.M{"type": optionType}).Decode(&opt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch daycare option %s: %w", optionType, err)
	}
	return &opt, nil
}

// ListDayCareOptions retrieves all day-care options.
func (r *MongoCatalogRepo) ListDayCareOptions() ([]models.DayCareOption, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.dayCareColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing daycare options: %w", err)
	}
	defer cursor.Close(ctx)

	var opts []models.DayCareOption
	if err := cursor.All(ctx, &opts); err != nil {
		return nil, fmt.Errorf("error decoding daycare options: %w", err)
	}
	return opts, nil
}

// UpsertDayCareOption inserts or replaces a day-care option by type.
func (r *MongoCatalogRepo) UpsertDayCareOption(opt *models.DayCareOption) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.dayCareColl.ReplaceOne(ctx, bson.M{"type": opt.Type}, opt, opts); err != nil {
		return fmt.Errorf("error upserting daycare option %s: %w", opt.Type, err)
	}
	return nil
}

// CountDayCareOptions reports how many day-care options exist.
func (r *MongoCatalogRepo) CountDayCareOptions() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.dayCareColl.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error counting daycare options: %w", err)
	}
	return n, nil
}
