package shop

import (
	"fmt"

	shopRepo "petshop/database/repository/shop"
	"petshop/models"
)

// ShopService serves the public shop-information page and lets admins edit it.
type ShopService interface {
	// GetInfo returns the shop info, or a zero-value placeholder when unset.
	GetInfo() (*models.ShopInfo, error)
	// UpdateInfo stores the shop info (admin).
	UpdateInfo(info *models.ShopInfo) (*models.ShopInfo, error)
}

// DefaultShopService is the production implementation.
type DefaultShopService struct {
	Repo shopRepo.ShopRepository
}

// NewDefaultShopService creates a shop service over the given repository.
func NewDefaultShopService(repo shopRepo.ShopRepository) *DefaultShopService {
	return &DefaultShopService{Repo: repo}
}

// GetInfo returns the shop info.
func (s *DefaultShopService) GetInfo() (*models.ShopInfo, error) {
	info, err := s.Repo.Get()
	if err != nil {
		return nil, err
	}
	if info == nil {
		info = &models.ShopInfo{}
	}
	return info, nil
}

// UpdateInfo stores the shop info.
func (s *DefaultShopService) UpdateInfo(info *models.ShopInfo) (*models.ShopInfo, error) {
	if info.Name == "" {
		return nil, fmt.Errorf("shop name is required")
	}
	if err := s.Repo.Upsert(info); err != nil {
		return nil, err
	}
	return info, nil
}
