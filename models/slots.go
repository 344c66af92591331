package models

// Slot is a one-hour start-time bucket within business hours on a given date.
// Booked counts every non-cancelled appointment whose service window covers
// the hour, regardless of which service it belongs to: all services share the
// same physical facility.
type Slot struct {
	Time      string `json:"time"` // "HH:00"
	Capacity  int    `json:"capacity"`
	Booked    int    `json:"booked"`
	Available bool   `json:"available"`
}
