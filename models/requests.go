package models

// AppointmentRequest is the explicit DTO for creating an appointment. Loose
// JSON payloads are bound here and validated field by field before any domain
// logic runs.
type AppointmentRequest struct {
	PetName   string            `json:"petName"`
	PetType   string            `json:"petType"`
	Date      string            `json:"date"` // "YYYY-MM-DD"
	Time      string            `json:"time"` // "HH:00"
	ServiceID string            `json:"serviceId"`
	DayCare   *DayCareSelection `json:"dayCare,omitempty"`
	Owner     OwnerContact      `json:"owner"`
	Notes     string            `json:"notes,omitempty"`
}

// AppointmentUpdate carries a partial edit of an existing appointment. Nil
// pointers mean "leave unchanged". Date/time/service changes trigger a fresh
// capacity reservation; pure field edits (notes, pet name) do not.
type AppointmentUpdate struct {
	PetName   *string           `json:"petName,omitempty"`
	PetType   *string           `json:"petType,omitempty"`
	Date      *string           `json:"date,omitempty"`
	Time      *string           `json:"time,omitempty"`
	ServiceID *string           `json:"serviceId,omitempty"`
	DayCare   *DayCareSelection `json:"dayCare,omitempty"`
	Owner     *OwnerContact     `json:"owner,omitempty"`
	Notes     *string           `json:"notes,omitempty"`
	Status    *string           `json:"status,omitempty"`
}

// Identity describes the caller as resolved by the auth middleware. The
// booking engine itself never authenticates anyone.
type Identity struct {
	Authenticated bool
	UserID        string
	Email         string
	Admin         bool
}
