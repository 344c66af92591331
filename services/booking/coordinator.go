package booking

import (
	"errors"
	"fmt"
	"time"

	appointmentRepo "petshop/database/repository/appointment"
	catalogRepo "petshop/database/repository/catalog"
	"petshop/models"
	"petshop/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// CreateAppointment books a slot. Availability fetched earlier by the client
// is advisory only: the actual capacity check happens here, inside the
// repository's reservation transaction, so two callers racing for the last
// free slot cannot both succeed.
func (s *DefaultBookingService) CreateAppointment(req models.AppointmentRequest, ident models.Identity) (*models.Appointment, error) {
	if err := s.validateRequest(&req, ident); err != nil {
		return nil, err
	}

	svc, capacity, err := s.resolveService(req.ServiceID)
	if err != nil {
		return nil, err
	}

	hour, _ := utils.ParseHour(req.Time) // validated above
	if err := s.validateWindow(req.Date, hour, svc.DurationHours); err != nil {
		return nil, err
	}

	quote, err := s.Quote(req.ServiceID, req.DayCare, s.isMember(ident, req.Owner.Email))
	if err != nil {
		return nil, err
	}

	now := s.now()
	appt := &models.Appointment{
		ID:            uuid.New().String(),
		PetName:       req.PetName,
		PetType:       req.PetType,
		Date:          req.Date,
		Hour:          hour,
		Time:          utils.FormatHour(hour),
		ServiceID:     svc.ID,
		DurationHours: svc.DurationHours,
		DayCare:       req.DayCare,
		TotalPrice:    quote.Total,
		Status:        models.StatusBooked,
		Owner:         req.Owner,
		UserID:        ident.UserID,
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repo.ReserveAndInsert(appt, capacity); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotFull) {
			return nil, &CapacityError{Date: appt.Date, Time: appt.Time}
		}
		return nil, &StoreError{Op: "create appointment", Err: err}
	}

	s.afterBooking(appt)
	return appt, nil
}

// UpdateAppointment edits an appointment. Only date/time/service changes go
// through a fresh capacity reservation; pure field edits do not. Status
// changes are validated against the state machine and may not be combined
// with a reschedule in the same request.
func (s *DefaultBookingService) UpdateAppointment(id string, upd models.AppointmentUpdate, ident models.Identity) (*models.Appointment, error) {
	appt, err := s.getOwned(id, ident)
	if err != nil {
		return nil, err
	}

	if upd.Status != nil && *upd.Status != appt.Status {
		if upd.Date != nil || upd.Time != nil || upd.ServiceID != nil {
			return nil, &ValidationError{Field: "status", Message: "cannot combine a status change with a reschedule"}
		}
		return s.applyStatusChange(appt, *upd.Status, ident)
	}

	if appt.Status != models.StatusBooked {
		return nil, &ValidationError{Field: "status", Message: "only booked appointments can be modified"}
	}

	if err := applyFieldEdits(appt, &upd); err != nil {
		return nil, err
	}

	newDate := appt.Date
	if upd.Date != nil {
		newDate = *upd.Date
	}
	newHour := appt.Hour
	if upd.Time != nil {
		h, perr := utils.ParseHour(*upd.Time)
		if perr != nil {
			return nil, &ValidationError{Field: "time", Message: "expected HH:00"}
		}
		newHour = h
	}
	newServiceID := appt.ServiceID
	if upd.ServiceID != nil {
		newServiceID = *upd.ServiceID
	}
	rescheduled := newDate != appt.Date || newHour != appt.Hour || newServiceID != appt.ServiceID

	if upd.DayCare != nil {
		appt.DayCare = upd.DayCare
	}

	if rescheduled {
		return s.reschedule(appt, newDate, newHour, newServiceID, ident)
	}

	// Price stays frozen unless the billable selection itself changed.
	if upd.DayCare != nil {
		quote, qerr := s.Quote(appt.ServiceID, appt.DayCare, s.isMember(ident, appt.Owner.Email))
		if qerr != nil {
			return nil, qerr
		}
		appt.TotalPrice = quote.Total
	}

	patch := bson.M{
		"petName":    appt.PetName,
		"petType":    appt.PetType,
		"owner":      appt.Owner,
		"notes":      appt.Notes,
		"dayCare":    appt.DayCare,
		"totalPrice": appt.TotalPrice,
	}
	if err := s.Repo.UpdateByID(appt.ID, patch); err != nil {
		return nil, &StoreError{Op: "update appointment", Err: err}
	}
	return appt, nil
}

// CancelAppointment moves a Booked appointment to Cancelled and frees the
// hours it held.
func (s *DefaultBookingService) CancelAppointment(id string, ident models.Identity) error {
	appt, err := s.getOwned(id, ident)
	if err != nil {
		return err
	}
	_, err = s.applyStatusChange(appt, models.StatusCancelled, ident)
	return err
}

// GetAppointment fetches one appointment visible to the caller, applying
// lazy completion before returning it.
func (s *DefaultBookingService) GetAppointment(id string, ident models.Identity) (*models.Appointment, error) {
	appt, err := s.getOwned(id, ident)
	if err != nil {
		return nil, err
	}
	appts := s.finishElapsed([]models.Appointment{*appt})
	return &appts[0], nil
}

// ListUserAppointments lists the caller's own appointments.
func (s *DefaultBookingService) ListUserAppointments(ident models.Identity) ([]models.Appointment, error) {
	appts, err := s.Repo.FindByUser(ident.UserID)
	if err != nil {
		return nil, &StoreError{Op: "list appointments", Err: err}
	}
	return s.finishElapsed(appts), nil
}

// ListAppointmentsByDate lists every appointment on a date (back-office view).
func (s *DefaultBookingService) ListAppointmentsByDate(date string) ([]models.Appointment, error) {
	appts, err := s.Repo.FindByDate(date, false)
	if err != nil {
		return nil, &StoreError{Op: "list appointments", Err: err}
	}
	return s.finishElapsed(appts), nil
}

// --- helpers ---

func (s *DefaultBookingService) validateRequest(req *models.AppointmentRequest, ident models.Identity) error {
	if req.PetName == "" {
		return &ValidationError{Field: "petName", Message: "required"}
	}
	if req.PetType != models.PetTypeDog && req.PetType != models.PetTypeCat {
		return &ValidationError{Field: "petType", Message: "must be dog or cat"}
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return &ValidationError{Field: "date", Message: "expected YYYY-MM-DD"}
	}
	if _, err := utils.ParseHour(req.Time); err != nil {
		return &ValidationError{Field: "time", Message: "expected HH:00"}
	}
	if req.ServiceID == "" {
		return &ValidationError{Field: "serviceId", Message: "required"}
	}
	if !ident.Authenticated {
		if req.Owner.Name == "" || req.Owner.Email == "" {
			return &ValidationError{Field: "owner", Message: "guest bookings require owner name and email"}
		}
	} else if req.Owner.Name == "" && s.Users != nil {
		// Fill the contact from the member's account.
		if u, err := s.Users.GetByID(ident.UserID); err == nil {
			req.Owner = models.OwnerContact{Name: u.Name, Phone: u.Phone, Email: u.Email}
		}
	}
	return nil
}

func (s *DefaultBookingService) resolveService(serviceID string) (*models.ServiceDefinition, int, error) {
	svc, err := s.Catalog.GetService(serviceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			return nil, 0, &NotFoundError{Resource: "service", ID: serviceID}
		}
		return nil, 0, &StoreError{Op: "catalog lookup", Err: err}
	}
	capacity, err := s.Catalog.EffectiveCapacity(svc)
	if err != nil {
		return nil, 0, &StoreError{Op: "settings lookup", Err: err}
	}
	return svc, capacity, nil
}

// validateWindow checks the start against the business-hour grid and rejects
// same-day starts that have already passed.
func (s *DefaultBookingService) validateWindow(date string, hour, duration int) error {
	if hour < s.OpeningHour || hour > s.ClosingHour-duration {
		return &ValidationError{Field: "time", Message: fmt.Sprintf("service must run within business hours (%02d:00-%02d:00)", s.OpeningHour, s.ClosingHour)}
	}
	now := s.now()
	day, _ := time.ParseInLocation("2006-01-02", date, now.Location())
	start := day.Add(time.Duration(hour) * time.Hour)
	if start.Before(now) || (date == now.Format("2006-01-02") && hour <= now.Hour()) {
		return &ValidationError{Field: "time", Message: "slot is in the past"}
	}
	return nil
}

// isMember reports whether the caller qualifies for the member discount: an
// authenticated session, or an existing account matching the contact email.
func (s *DefaultBookingService) isMember(ident models.Identity, email string) bool {
	if ident.Authenticated {
		return true
	}
	if email == "" || s.Users == nil {
		return false
	}
	u, err := s.Users.GetByEmail(email)
	return err == nil && u != nil
}

// getOwned loads an appointment and hides it from callers who neither own it
// nor hold the admin role.
func (s *DefaultBookingService) getOwned(id string, ident models.Identity) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, &NotFoundError{Resource: "appointment", ID: id}
		}
		return nil, &StoreError{Op: "load appointment", Err: err}
	}
	if !ident.Admin && (appt.UserID == "" || appt.UserID != ident.UserID) {
		return nil, &NotFoundError{Resource: "appointment", ID: id}
	}
	return appt, nil
}

func applyFieldEdits(appt *models.Appointment, upd *models.AppointmentUpdate) error {
	if upd.PetName != nil {
		if *upd.PetName == "" {
			return &ValidationError{Field: "petName", Message: "required"}
		}
		appt.PetName = *upd.PetName
	}
	if upd.PetType != nil {
		if *upd.PetType != models.PetTypeDog && *upd.PetType != models.PetTypeCat {
			return &ValidationError{Field: "petType", Message: "must be dog or cat"}
		}
		appt.PetType = *upd.PetType
	}
	if upd.Owner != nil {
		appt.Owner = *upd.Owner
	}
	if upd.Notes != nil {
		appt.Notes = *upd.Notes
	}
	return nil
}

// applyStatusChange validates and persists a status transition. Cancelling
// frees the reserved hours; an admin resurrecting a cancelled appointment
// must win them back under the current capacity.
func (s *DefaultBookingService) applyStatusChange(appt *models.Appointment, to string, ident models.Identity) (*models.Appointment, error) {
	if !validStatus(to) {
		return nil, &ValidationError{Field: "status", Message: "unknown status"}
	}
	from := appt.Status
	if !CanTransition(from, to, ident.Admin) {
		return nil, &TransitionError{From: from, To: to}
	}
	if from == to {
		return appt, nil
	}

	if to == models.StatusBooked && from == models.StatusCancelled {
		// Re-claim the window; pass a zero-length old window so nothing is
		// released that was not held.
		_, capacity, err := s.resolveService(appt.ServiceID)
		if err != nil {
			return nil, err
		}
		appt.Status = models.StatusBooked
		appt.UpdatedAt = s.now()
		if err := s.Repo.Reschedule(appt, appt.Date, appt.Hour, 0, capacity); err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotFull) {
				return nil, &CapacityError{Date: appt.Date, Time: appt.Time}
			}
			return nil, &StoreError{Op: "restore appointment", Err: err}
		}
		return appt, nil
	}

	if err := s.Repo.UpdateByID(appt.ID, bson.M{"status": to}); err != nil {
		return nil, &StoreError{Op: "update status", Err: err}
	}
	appt.Status = to

	if to == models.StatusCancelled && from != models.StatusCancelled {
		if err := s.Repo.ReleaseWindow(appt.Date, appt.Hour, appt.DurationHours); err != nil {
			utils.GetLogger().Warn("failed to release cancelled slot window",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
		if s.Notifier != nil && appt.UserID != "" {
			if err := s.Notifier.Notify(appt.UserID, models.NotificationBookingCancelled,
				"Appointment cancelled",
				fmt.Sprintf("Your %s appointment on %s at %s was cancelled.", appt.ServiceID, appt.Date, appt.Time)); err != nil {
				utils.GetLogger().Warn("failed to store cancellation notification", zap.Error(err))
			}
		}
	}
	return appt, nil
}

// reschedule moves an appointment to a new window and/or service, releasing
// the old hours and claiming the new ones in one repository transaction.
func (s *DefaultBookingService) reschedule(appt *models.Appointment, newDate string, newHour int, newServiceID string, ident models.Identity) (*models.Appointment, error) {
	if _, err := time.Parse("2006-01-02", newDate); err != nil {
		return nil, &ValidationError{Field: "date", Message: "expected YYYY-MM-DD"}
	}
	svc, capacity, err := s.resolveService(newServiceID)
	if err != nil {
		return nil, err
	}
	if err := s.validateWindow(newDate, newHour, svc.DurationHours); err != nil {
		return nil, err
	}

	quote, err := s.Quote(svc.ID, appt.DayCare, s.isMember(ident, appt.Owner.Email))
	if err != nil {
		return nil, err
	}

	oldDate, oldHour, oldDuration := appt.Date, appt.Hour, appt.DurationHours
	appt.Date = newDate
	appt.Hour = newHour
	appt.Time = utils.FormatHour(newHour)
	appt.ServiceID = svc.ID
	appt.DurationHours = svc.DurationHours
	appt.TotalPrice = quote.Total
	appt.UpdatedAt = s.now()

	if err := s.Repo.Reschedule(appt, oldDate, oldHour, oldDuration, capacity); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotFull) {
			return nil, &CapacityError{Date: newDate, Time: appt.Time}
		}
		return nil, &StoreError{Op: "reschedule appointment", Err: err}
	}
	return appt, nil
}

// afterBooking records the confirmation notification and schedules the
// reminder. Neither failure blocks the booking.
func (s *DefaultBookingService) afterBooking(appt *models.Appointment) {
	if appt.UserID == "" {
		return
	}
	logger := utils.GetLogger()
	if s.Notifier != nil {
		if err := s.Notifier.Notify(appt.UserID, models.NotificationBookingConfirmed,
			"Appointment confirmed",
			fmt.Sprintf("Your %s appointment is booked for %s at %s.", appt.ServiceID, appt.Date, appt.Time)); err != nil {
			logger.Warn("failed to store booking notification", zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}
	if s.Reminders != nil {
		if err := s.Reminders.ScheduleAppointmentReminder(appt); err != nil {
			logger.Warn("failed to schedule reminder", zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}
}
