package appointmentRepo

import (
	"errors"

	"petshop/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrSlotFull is returned when a reservation would push any hour of the
// requested window past its capacity.
var ErrSlotFull = errors.New("slot capacity exhausted")

// ErrNotFound is returned when no appointment matches the given id.
var ErrNotFound = errors.New("appointment not found")

// AppointmentRepository defines data access for appointments and the
// per-(date,hour) reservation counters that guard slot capacity.
type AppointmentRepository interface {
	// GetByID retrieves an appointment by its unique ID.
	GetByID(id string) (*models.Appointment, error)
	// FindByDate retrieves appointments for a calendar date, optionally
	// excluding cancelled ones.
	FindByDate(date string, excludeCancelled bool) ([]models.Appointment, error)
	// FindByUser retrieves all appointments made by a member.
	FindByUser(userID string) ([]models.Appointment, error)
	// FindAll retrieves appointments matching an arbitrary filter.
	FindAll(filter bson.M) ([]models.Appointment, error)
	// UpdateByID applies a partial update to one appointment.
	UpdateByID(id string, patch bson.M) error
	// MarkCompleted flips the given Booked appointments to Completed.
	MarkCompleted(ids []string) error
	// Delete removes an appointment record.
	Delete(id string) error

	// ReserveAndInsert atomically claims every hour of the appointment's
	// window (conditional counter increments, capacity-bounded) and inserts
	// the record, all in one transaction. Returns ErrSlotFull when any hour
	// is already at capacity.
	ReserveAndInsert(appt *models.Appointment, capacity int) error
	// Reschedule releases the old window, claims the new one and persists the
	// updated record, all in one transaction.
	Reschedule(appt *models.Appointment, oldDate string, oldHour, oldDuration, capacity int) error
	// ReleaseWindow returns the hours held by a cancelled appointment.
	ReleaseWindow(date string, hour, duration int) error
}
