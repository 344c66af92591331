package booking

import (
	"time"

	appointmentRepo "petshop/database/repository/appointment"
	userRepo "petshop/database/repository/user"
	"petshop/models"
	"petshop/services/catalog"
)

// BookingService is the appointment booking engine: slot availability,
// price quoting and appointment lifecycle.
type BookingService interface {
	// ComputeSlots returns the bookable start-time grid for a date and service.
	ComputeSlots(date, serviceID string) ([]models.Slot, error)
	// CheckSlot evaluates a single start time for a date and service.
	CheckSlot(date, timeLabel, serviceID string) (*models.Slot, error)
	// Quote computes the price breakdown for a service + optional day-care.
	Quote(serviceID string, sel *models.DayCareSelection, isMember bool) (*models.Quote, error)
	// CreateAppointment books a slot, re-validating capacity at write time.
	CreateAppointment(req models.AppointmentRequest, ident models.Identity) (*models.Appointment, error)
	// UpdateAppointment edits an appointment; date/time/service changes go
	// through a fresh capacity reservation.
	UpdateAppointment(id string, upd models.AppointmentUpdate, ident models.Identity) (*models.Appointment, error)
	// CancelAppointment moves a Booked appointment to Cancelled and frees its hours.
	CancelAppointment(id string, ident models.Identity) error
	// GetAppointment fetches one appointment visible to the caller.
	GetAppointment(id string, ident models.Identity) (*models.Appointment, error)
	// ListUserAppointments lists the caller's own appointments.
	ListUserAppointments(ident models.Identity) ([]models.Appointment, error)
	// ListAppointmentsByDate lists all appointments for a date (back-office).
	ListAppointmentsByDate(date string) ([]models.Appointment, error)
}

// ReminderScheduler schedules an appointment reminder for later delivery.
type ReminderScheduler interface {
	ScheduleAppointmentReminder(appt *models.Appointment) error
}

// Notifier records an in-app notification for a member.
type Notifier interface {
	Notify(userID, notifType, title, body string) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo    appointmentRepo.AppointmentRepository
	Catalog catalog.CatalogService
	Users   userRepo.UserRepository

	// Optional collaborators; booking proceeds if they are absent or failing.
	Notifier  Notifier
	Reminders ReminderScheduler

	// Business-hour grid bounds, from configuration.
	OpeningHour int
	ClosingHour int

	// Clock override for tests; defaults to time.Now.
	Clock func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}
