package models

import "time"

// Appointment statuses. Booked is the only non-terminal state: it moves to
// Completed once the start time has passed (applied lazily on read) or to
// Cancelled explicitly. Admins may force any transition.
const (
	StatusBooked    = "Booked"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Pet types accepted for appointments.
const (
	PetTypeDog = "dog"
	PetTypeCat = "cat"
)

// OwnerContact identifies who to reach about an appointment. Required for
// guest bookings; derived from the account for authenticated ones.
type OwnerContact struct {
	Name  string `bson:"name" json:"name"`
	Phone string `bson:"phone" json:"phone"`
	Email string `bson:"email" json:"email"`
}

// Appointment is a confirmed booking record. DurationHours and TotalPrice are
// copied from the catalog at booking time and never change afterwards, even if
// the service definition is later edited.
type Appointment struct {
	ID            string            `bson:"id" json:"id"`
	PetName       string            `bson:"petName" json:"petName"`
	PetType       string            `bson:"petType" json:"petType"` // "dog" or "cat"
	Date          string            `bson:"date" json:"date"`       // "YYYY-MM-DD"
	Hour          int               `bson:"hour" json:"-"`          // start hour of day
	Time          string            `bson:"time" json:"time"`       // canonical "HH:00" label
	ServiceID     string            `bson:"serviceId" json:"serviceId"`
	DurationHours int               `bson:"durationHours" json:"durationHours"`
	DayCare       *DayCareSelection `bson:"dayCare,omitempty" json:"dayCare,omitempty"`
	TotalPrice    float64           `bson:"totalPrice" json:"totalPrice"`
	Status        string            `bson:"status" json:"status"`
	Owner         OwnerContact      `bson:"owner" json:"owner"`
	UserID        string            `bson:"userId,omitempty" json:"userId,omitempty"` // empty for guest bookings
	Notes         string            `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// StartTime resolves the appointment's concrete start instant in the given
// location. Returns the zero time if the date is malformed.
func (a *Appointment) StartTime(loc *time.Location) time.Time {
	d, err := time.ParseInLocation("2006-01-02", a.Date, loc)
	if err != nil {
		return time.Time{}
	}
	return d.Add(time.Duration(a.Hour) * time.Hour)
}
