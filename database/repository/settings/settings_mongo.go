package settingsRepo

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

// SettingsRepository defines access to the singleton appointment settings.
type SettingsRepository interface {
	// Get retrieves the settings document; returns (nil, nil) when unset.
	Get() (*models.AppointmentSettings, error)
	// Upsert stores the settings document.
	Upsert(settings *models.AppointmentSettings) error
}

// MongoSettingsRepo implements SettingsRepository using MongoDB.
type MongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo creates a new instance of SettingsRepository using MongoDB.
func NewMongoSettingsRepo() SettingsRepository {
	return &MongoSettingsRepo{coll: database.DB().Collection("settings")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Get retrieves the settings document.
func (r *MongoSettingsRepo) Get() (*models.AppointmentSettings, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var settings models.AppointmentSettings
	err := r.coll.FindOne(ctx, bson.M{"settingName": models.DefaultSettingName}).Decode(&settings)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch appointment settings: %w", err)
	}
	return &settings, nil
}

// Upsert stores the settings document.
func (r *MongoSettingsRepo) Upsert(settings *models.AppointmentSettings) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	settings.SettingName = models.DefaultSettingName
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"settingName": models.DefaultSettingName}, settings, opts); err != nil {
		return fmt.Errorf("failed to upsert appointment settings: %w", err)
	}
	return nil
}
