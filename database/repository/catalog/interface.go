package catalogRepo

import (
	"errors"

	"petshop/models"
)

// ErrNotFound is returned when no catalog entry matches the lookup.
var ErrNotFound = errors.New("catalog entry not found")

// CatalogRepository defines data access for service definitions and day-care
// options.
type CatalogRepository interface {
	// GetService retrieves a service definition by its stable id.
	GetService(id string) (*models.ServiceDefinition, error)
	// ListServices retrieves all service definitions.
	ListServices() ([]models.ServiceDefinition, error)
	// CreateService inserts a new service definition.
	CreateService(svc *models.ServiceDefinition) error
	// UpdateService replaces an existing service definition.
	UpdateService(svc *models.ServiceDefinition) error
	// DeleteService removes a service definition.
	DeleteService(id string) error
	// CountServices reports how many service definitions exist (seed guard).
	CountServices() (int64, error)

	// GetDayCareOption retrieves a day-care option by type.
	GetDayCareOption(optionType string) (*models.DayCareOption, error)
	// ListDayCareOptions retrieves all day-care options.
	ListDayCareOptions() ([]models.DayCareOption, error)
	// UpsertDayCareOption inserts or replaces a day-care option by type.
	UpsertDayCareOption(opt *models.DayCareOption) error
	// CountDayCareOptions reports how many day-care options exist (seed guard).
	CountDayCareOptions() (int64, error)
}
