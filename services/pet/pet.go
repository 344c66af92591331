package pet

import (
	"errors"
	"fmt"
	"time"

	petRepo "petshop/database/repository/pet"
	"petshop/models"

	"github.com/google/uuid"
)

// ErrNotFound is surfaced when the pet does not exist or is not visible to
// the caller.
var ErrNotFound = errors.New("pet not found")

// PetService manages member pet profiles and the pets-for-sale registry.
type PetService interface {
	// CreateProfile adds a pet profile for a member.
	CreateProfile(ownerID string, pet *models.Pet) (*models.Pet, error)
	// ListProfiles returns a member's pet profiles.
	ListProfiles(ownerID string) ([]models.Pet, error)
	// UpdateProfile edits one of the member's pet profiles.
	UpdateProfile(ownerID string, pet *models.Pet) (*models.Pet, error)
	// DeleteProfile removes one of the member's pet profiles.
	DeleteProfile(ownerID, petID string) error

	// ListSalePets returns the public pets-for-sale listings.
	ListSalePets(includeSold bool) ([]models.SalePet, error)
	// GetSalePet returns one listing.
	GetSalePet(id string) (*models.SalePet, error)
	// CreateSalePet adds a listing (admin).
	CreateSalePet(p *models.SalePet) (*models.SalePet, error)
	// UpdateSalePet edits a listing, including marking it sold (admin).
	UpdateSalePet(p *models.SalePet) (*models.SalePet, error)
	// DeleteSalePet removes a listing (admin).
	DeleteSalePet(id string) error
}

// DefaultPetService is the production implementation.
type DefaultPetService struct {
	Repo petRepo.PetRepository
}

// NewDefaultPetService creates a pet service over the given repository.
func NewDefaultPetService(repo petRepo.PetRepository) *DefaultPetService {
	return &DefaultPetService{Repo: repo}
}

func validatePetType(t string) error {
	if t != models.PetTypeDog && t != models.PetTypeCat {
		return fmt.Errorf("pet type must be dog or cat")
	}
	return nil
}

// CreateProfile adds a pet profile for a member.
func (s *DefaultPetService) CreateProfile(ownerID string, pet *models.Pet) (*models.Pet, error) {
	if pet.Name == "" {
		return nil, fmt.Errorf("pet name is required")
	}
	if err := validatePetType(pet.Type); err != nil {
		return nil, err
	}
	now := time.Now()
	pet.ID = uuid.New().String()
	pet.OwnerID = ownerID
	pet.CreatedAt = now
	pet.UpdatedAt = now
	if err := s.Repo.Create(pet); err != nil {
		return nil, err
	}
	return pet, nil
}

// ListProfiles returns a member's pet profiles.
func (s *DefaultPetService) ListProfiles(ownerID string) ([]models.Pet, error) {
	return s.Repo.FindByOwner(ownerID)
}

// UpdateProfile edits a pet profile. The profile must belong to the caller.
func (s *DefaultPetService) UpdateProfile(ownerID string, pet *models.Pet) (*models.Pet, error) {
	existing, err := s.Repo.GetByID(pet.ID)
	if err != nil {
		if errors.Is(err, petRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if existing.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	if pet.Name == "" {
		return nil, fmt.Errorf("pet name is required")
	}
	if err := validatePetType(pet.Type); err != nil {
		return nil, err
	}
	pet.OwnerID = ownerID
	pet.CreatedAt = existing.CreatedAt
	pet.UpdatedAt = time.Now()
	if err := s.Repo.Update(pet); err != nil {
		return nil, err
	}
	return pet, nil
}

// DeleteProfile removes one of the member's pet profiles.
func (s *DefaultPetService) DeleteProfile(ownerID, petID string) error {
	existing, err := s.Repo.GetByID(petID)
	if err != nil {
		if errors.Is(err, petRepo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if existing.OwnerID != ownerID {
		return ErrNotFound
	}
	return s.Repo.Delete(petID)
}

// ListSalePets returns the public pets-for-sale listings.
func (s *DefaultPetService) ListSalePets(includeSold bool) ([]models.SalePet, error) {
	return s.Repo.ListSalePets(includeSold)
}

// GetSalePet returns one listing.
func (s *DefaultPetService) GetSalePet(id string) (*models.SalePet, error) {
	p, err := s.Repo.GetSalePet(id)
	if err != nil {
		if errors.Is(err, petRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// CreateSalePet adds a listing.
func (s *DefaultPetService) CreateSalePet(p *models.SalePet) (*models.SalePet, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("pet name is required")
	}
	if p.Price < 0 {
		return nil, fmt.Errorf("price must not be negative")
	}
	now := time.Now()
	p.ID = uuid.New().String()
	p.Sold = false
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := s.Repo.CreateSalePet(p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateSalePet edits a listing.
func (s *DefaultPetService) UpdateSalePet(p *models.SalePet) (*models.SalePet, error) {
	existing, err := s.GetSalePet(p.ID)
	if err != nil {
		return nil, err
	}
	if p.Price < 0 {
		return nil, fmt.Errorf("price must not be negative")
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now()
	if err := s.Repo.UpdateSalePet(p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteSalePet removes a listing.
func (s *DefaultPetService) DeleteSalePet(id string) error {
	if err := s.Repo.DeleteSalePet(id); err != nil {
		if errors.Is(err, petRepo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
