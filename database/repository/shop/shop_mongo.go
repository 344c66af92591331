package shopRepo

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

// ShopRepository defines access to the singleton shop-information document.
type ShopRepository interface {
	// Get retrieves the shop info; (nil, nil) when unset.
	Get() (*models.ShopInfo, error)
	// Upsert stores the shop info.
	Upsert(info *models.ShopInfo) error
}

// MongoShopRepo implements ShopRepository using MongoDB.
type MongoShopRepo struct {
	coll *mongo.Collection
}

// NewMongoShopRepo creates a new instance of ShopRepository using MongoDB.
func NewMongoShopRepo() ShopRepository {
	return &MongoShopRepo{coll: database.DB().Collection("shop_info")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Get retrieves the shop info.
func (r *MongoShopRepo) Get() (*models.ShopInfo, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var info models.ShopInfo
	if err := r.coll.FindOne(ctx, bson.M{}).Decode(&info); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch shop info: %w", err)
	}
	return &info, nil
}

// Upsert stores the shop info.
func (r *MongoShopRepo) Upsert(info *models.ShopInfo) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	info.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{}, info, opts); err != nil {
		return fmt.Errorf("failed to upsert shop info: %w", err)
	}
	return nil
}
