package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	catalogRepo "petshop/database/repository/catalog"
	settingsRepo "petshop/database/repository/settings"
	"petshop/models"
	"petshop/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	servicesCacheKey = utils.CatalogCachePrefix + "services"
	dayCareCacheKey  = utils.CatalogCachePrefix + "daycare"
)

// DefaultCatalogService implements CatalogService with a Redis read cache in
// front of the Mongo repository. List reads are the hot path (every
// availability render hits them); single-id reads go straight to Mongo.
type DefaultCatalogService struct {
	Repo     catalogRepo.CatalogRepository
	Settings settingsRepo.SettingsRepository

	// Cache may be nil; the catalog then serves straight from the repository.
	Cache *redis.Client

	// DefaultCapacity backs EffectiveCapacity when neither the service nor
	// the stored settings carry a limit.
	DefaultCapacity int
}

// NewDefaultCatalogService creates a catalog service over the given stores.
func NewDefaultCatalogService(repo catalogRepo.CatalogRepository, settings settingsRepo.SettingsRepository, cache *redis.Client, defaultCapacity int) *DefaultCatalogService {
	return &DefaultCatalogService{
		Repo:            repo,
		Settings:        settings,
		Cache:           cache,
		DefaultCapacity: defaultCapacity,
	}
}

// GetService retrieves a service definition by id.
func (s *DefaultCatalogService) GetService(id string) (*models.ServiceDefinition, error) {
	return s.Repo.GetService(id)
}

// ListServices retrieves all service definitions, cache first.
func (s *DefaultCatalogService) ListServices() ([]models.ServiceDefinition, error) {
	var cached []models.ServiceDefinition
	if s.readCache(servicesCacheKey, &cached) {
		return cached, nil
	}
	services, err := s.Repo.ListServices()
	if err != nil {
		return nil, err
	}
	s.writeCache(servicesCacheKey, services)
	return services, nil
}

// CreateService inserts a new service definition.
func (s *DefaultCatalogService) CreateService(svc *models.ServiceDefinition) error {
	if err := validateService(svc); err != nil {
		return err
	}
	if err := s.Repo.CreateService(svc); err != nil {
		return err
	}
	s.invalidate(servicesCacheKey)
	return nil
}

// UpdateService replaces an existing service definition.
func (s *DefaultCatalogService) UpdateService(svc *models.ServiceDefinition) error {
	if err := validateService(svc); err != nil {
		return err
	}
	if err := s.Repo.UpdateService(svc); err != nil {
		return err
	}
	s.invalidate(servicesCacheKey)
	return nil
}

// DeleteService removes a service definition.
func (s *DefaultCatalogService) DeleteService(id string) error {
	if err := s.Repo.DeleteService(id); err != nil {
		return err
	}
	s.invalidate(servicesCacheKey)
	return nil
}

// GetDayCareOption retrieves a day-care option by type.
func (s *DefaultCatalogService) GetDayCareOption(optionType string) (*models.DayCareOption, error) {
	return s.Repo.GetDayCareOption(optionType)
}

// ListDayCareOptions retrieves all day-care options, cache first.
func (s *DefaultCatalogService) ListDayCareOptions() ([]models.DayCareOption, error) {
	var cached []models.DayCareOption
	if s.readCache(dayCareCacheKey, &cached) {
		return cached, nil
	}
	options, err := s.Repo.ListDayCareOptions()
	if err != nil {
		return nil, err
	}
	s.writeCache(dayCareCacheKey, options)
	return options, nil
}

// UpdateDayCareOption inserts or replaces a day-care option.
func (s *DefaultCatalogService) UpdateDayCareOption(opt *models.DayCareOption) error {
	if opt.Type != models.DayCareDaily && opt.Type != models.DayCareLongTerm {
		return fmt.Errorf("unknown day-care type %q", opt.Type)
	}
	if opt.PricePerDay < 0 {
		return fmt.Errorf("day-care price must not be negative")
	}
	if err := s.Repo.UpsertDayCareOption(opt); err != nil {
		return err
	}
	s.invalidate(dayCareCacheKey)
	return nil
}

// EffectiveCapacity resolves the per-hour booking capacity for a service.
func (s *DefaultCatalogService) EffectiveCapacity(svc *models.ServiceDefinition) (int, error) {
	if svc != nil && svc.CapacityLimit > 0 {
		return svc.CapacityLimit, nil
	}
	settings, err := s.Settings.Get()
	if err != nil {
		return 0, err
	}
	if settings != nil && settings.MaxBookingsPerTimeSlot > 0 {
		return settings.MaxBookingsPerTimeSlot, nil
	}
	return s.DefaultCapacity, nil
}

// GetSettings returns the effective appointment settings, falling back to the
// configured default when none are stored yet.
func (s *DefaultCatalogService) GetSettings() (*models.AppointmentSettings, error) {
	settings, err := s.Settings.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &models.AppointmentSettings{
			SettingName:            models.DefaultSettingName,
			MaxBookingsPerTimeSlot: s.DefaultCapacity,
		}
	}
	return settings, nil
}

// UpdateSettings stores a new global per-slot booking cap. Lowering the cap
// never disturbs existing appointments; it only constrains new reservations.
func (s *DefaultCatalogService) UpdateSettings(maxBookings int) (*models.AppointmentSettings, error) {
	if maxBookings < 1 {
		return nil, fmt.Errorf("maxBookingsPerTimeSlot must be at least 1")
	}
	settings := &models.AppointmentSettings{
		SettingName:            models.DefaultSettingName,
		MaxBookingsPerTimeSlot: maxBookings,
	}
	if err := s.Settings.Upsert(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func validateService(svc *models.ServiceDefinition) error {
	if svc.ID == "" {
		return fmt.Errorf("service id is required")
	}
	if svc.BasePrice < 0 {
		return fmt.Errorf("base price must not be negative")
	}
	if svc.DurationHours < 1 {
		return fmt.Errorf("duration must be at least 1 hour")
	}
	if svc.MemberDiscountPercent < 0 || svc.MemberDiscountPercent > 100 {
		return fmt.Errorf("member discount must be between 0 and 100")
	}
	if svc.CapacityLimit < 0 {
		return fmt.Errorf("capacity limit must not be negative")
	}
	return nil
}

// --- cache plumbing ---

func (s *DefaultCatalogService) readCache(key string, out interface{}) bool {
	if s.Cache == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	raw, err := s.Cache.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(raw), out) == nil
}

func (s *DefaultCatalogService) writeCache(key string, v interface{}) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Set(ctx, key, raw, utils.CatalogCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to write catalog cache", zap.String("key", key), zap.Error(err))
	}
}

func (s *DefaultCatalogService) invalidate(key string) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Del(ctx, key).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate catalog cache", zap.String("key", key), zap.Error(err))
	}
}
