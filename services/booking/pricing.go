package booking

import (
	"errors"

	catalogRepo "petshop/database/repository/catalog"
	"petshop/models"
	"petshop/utils"
)

// ComputeQuote calculates the price breakdown for a service booking.
//
// The member discount applies to the service base price only, never to the
// day-care add-on. That asymmetry is a product rule, not an oversight.
func ComputeQuote(svc *models.ServiceDefinition, dayCare *models.DayCareOption, sel *models.DayCareSelection, isMember bool) (*models.Quote, error) {
	quote := &models.Quote{BasePrice: svc.BasePrice}

	if sel != nil {
		if dayCare == nil {
			return nil, &NotFoundError{Resource: "day-care option", ID: sel.Type}
		}
		switch sel.Type {
		case models.DayCareDaily:
			quote.DayCarePrice = dayCare.PricePerDay
		case models.DayCareLongTerm:
			if sel.Days < 2 {
				return nil, &ValidationError{Field: "dayCare.days", Message: "long-term day-care requires at least 2 days"}
			}
			quote.DayCarePrice = float64(sel.Days) * dayCare.PricePerDay
		default:
			return nil, &ValidationError{Field: "dayCare.type", Message: "must be daily or longTerm"}
		}
	}

	if isMember {
		quote.DiscountAmount = utils.Round2(svc.BasePrice * svc.MemberDiscountPercent / 100)
	}

	quote.DayCarePrice = utils.Round2(quote.DayCarePrice)
	quote.Total = utils.Round2(quote.BasePrice - quote.DiscountAmount + quote.DayCarePrice)
	return quote, nil
}

// Quote resolves the catalog entries and computes the price breakdown.
func (s *DefaultBookingService) Quote(serviceID string, sel *models.DayCareSelection, isMember bool) (*models.Quote, error) {
	svc, err := s.Catalog.GetService(serviceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			return nil, &NotFoundError{Resource: "service", ID: serviceID}
		}
		return nil, &StoreError{Op: "catalog lookup", Err: err}
	}

	var dayCare *models.DayCareOption
	if sel != nil {
		dayCare, err = s.Catalog.GetDayCareOption(sel.Type)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrNotFound) {
				return nil, &NotFoundError{Resource: "day-care option", ID: sel.Type}
			}
			return nil, &StoreError{Op: "catalog lookup", Err: err}
		}
	}

	return ComputeQuote(svc, dayCare, sel, isMember)
}
