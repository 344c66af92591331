package catalog

import "petshop/models"

// CatalogService exposes the service and day-care catalog plus the booking
// settings that hang off it.
type CatalogService interface {
	// GetService retrieves a service definition by id.
	GetService(id string) (*models.ServiceDefinition, error)
	// ListServices retrieves all service definitions.
	ListServices() ([]models.ServiceDefinition, error)
	// CreateService inserts a new service definition (admin).
	CreateService(svc *models.ServiceDefinition) error
	// UpdateService replaces an existing service definition (admin).
	UpdateService(svc *models.ServiceDefinition) error
	// DeleteService removes a service definition (admin).
	DeleteService(id string) error

	// GetDayCareOption retrieves a day-care option by type.
	GetDayCareOption(optionType string) (*models.DayCareOption, error)
	// ListDayCareOptions retrieves all day-care options.
	ListDayCareOptions() ([]models.DayCareOption, error)
	// UpdateDayCareOption inserts or replaces a day-care option (admin).
	UpdateDayCareOption(opt *models.DayCareOption) error

	// EffectiveCapacity resolves the per-hour booking capacity for a service:
	// the service's own limit when set, otherwise the stored global setting,
	// otherwise the configured default.
	EffectiveCapacity(svc *models.ServiceDefinition) (int, error)
	// GetSettings returns the effective appointment settings.
	GetSettings() (*models.AppointmentSettings, error)
	// UpdateSettings stores a new global per-slot booking cap (admin).
	UpdateSettings(maxBookings int) (*models.AppointmentSettings, error)

	// Seed inserts the default catalog once; it never overwrites admin edits.
	Seed() error
}
