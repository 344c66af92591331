package catalog

import (
	"petshop/models"
	"petshop/utils"

	"go.uber.org/zap"
)

// Seed inserts the default catalog on first boot. Each collection is seeded
// only when it is empty, so admin edits and deletions survive restarts.
func (s *DefaultCatalogService) Seed() error {
	logger := utils.GetLogger()

	count, err := s.Repo.CountServices()
	if err != nil {
		return err
	}
	if count == 0 {
		defaults := []models.ServiceDefinition{
			{ID: "basic", Name: "Basic Wash", BasePrice: 60, DurationHours: 1, MemberDiscountPercent: 8},
			{ID: "full", Name: "Full Grooming", BasePrice: 120, DurationHours: 2, MemberDiscountPercent: 10},
			{ID: "spa", Name: "Spa Package", BasePrice: 220, DurationHours: 4, MemberDiscountPercent: 10},
		}
		for i := range defaults {
			if err := s.Repo.CreateService(&defaults[i]); err != nil {
				return err
			}
		}
		logger.Info("seeded default services", zap.Int("count", len(defaults)))
	}

	dcCount, err := s.Repo.CountDayCareOptions()
	if err != nil {
		return err
	}
	if dcCount == 0 {
		options := []models.DayCareOption{
			{Type: models.DayCareDaily, PricePerDay: 25},
			{Type: models.DayCareLongTerm, PricePerDay: 80},
		}
		for i := range options {
			if err := s.Repo.UpsertDayCareOption(&options[i]); err != nil {
				return err
			}
		}
		logger.Info("seeded default day-care options", zap.Int("count", len(options)))
	}

	return nil
}
