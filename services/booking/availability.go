package booking

import (
	"errors"
	"time"

	catalogRepo "petshop/database/repository/catalog"
	"petshop/models"
	"petshop/utils"
)

// ComputeSlots returns the bookable start-time grid for a date and service.
//
// Bookings of every service count against each hour they cover: the services
// share one physical facility, so a 4-hour spa groom occupies the same room
// capacity a 1-hour wash does. A start hour is offered only when every hour
// of the service's window is under capacity, and never when the window would
// run past closing.
func (s *DefaultBookingService) ComputeSlots(date, serviceID string) ([]models.Slot, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, &ValidationError{Field: "date", Message: "expected YYYY-MM-DD"}
	}

	svc, err := s.Catalog.GetService(serviceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			return nil, &NotFoundError{Resource: "service", ID: serviceID}
		}
		return nil, &StoreError{Op: "catalog lookup", Err: err}
	}
	capacity, err := s.Catalog.EffectiveCapacity(svc)
	if err != nil {
		return nil, &StoreError{Op: "settings lookup", Err: err}
	}

	booked, err := s.bookedByHour(date)
	if err != nil {
		return nil, err
	}

	now := s.now()
	isToday := date == now.Format("2006-01-02")
	lastStart := s.ClosingHour - svc.DurationHours

	var slots []models.Slot
	for h := s.OpeningHour; h <= lastStart; h++ {
		// Slots at or before the current hour are never offerable today.
		if isToday && h <= now.Hour() {
			continue
		}
		slots = append(slots, models.Slot{
			Time:      utils.FormatHour(h),
			Capacity:  capacity,
			Booked:    booked[h],
			Available: windowFree(booked, h, svc.DurationHours, capacity),
		})
	}
	return slots, nil
}

// CheckSlot evaluates one candidate start time for a date and service.
func (s *DefaultBookingService) CheckSlot(date, timeLabel, serviceID string) (*models.Slot, error) {
	hour, err := utils.ParseHour(timeLabel)
	if err != nil {
		return nil, &ValidationError{Field: "time", Message: "expected HH:00"}
	}
	slots, err := s.ComputeSlots(date, serviceID)
	if err != nil {
		return nil, err
	}
	for i := range slots {
		if slots[i].Time == utils.FormatHour(hour) {
			return &slots[i], nil
		}
	}
	// Outside the offerable grid: past, before opening, or too close to closing.
	return &models.Slot{Time: utils.FormatHour(hour), Available: false}, nil
}

// bookedByHour tallies, per hour, the non-cancelled appointments whose
// service window covers that hour.
func (s *DefaultBookingService) bookedByHour(date string) (map[int]int, error) {
	appts, err := s.Repo.FindByDate(date, true)
	if err != nil {
		return nil, &StoreError{Op: "load appointments", Err: err}
	}
	booked := make(map[int]int)
	for _, a := range appts {
		for h := a.Hour; h < a.Hour+a.DurationHours; h++ {
			booked[h]++
		}
	}
	return booked, nil
}

// windowFree reports whether every hour in [start, start+duration) is under
// capacity. A 3-hour service must not be offered a start where any of its 3
// hours is already full, even if the start hour itself has room.
func windowFree(booked map[int]int, start, duration, capacity int) bool {
	for h := start; h < start+duration; h++ {
		if booked[h] >= capacity {
			return false
		}
	}
	return true
}
