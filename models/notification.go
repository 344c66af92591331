package models

import "time"

// Notification types.
const (
	NotificationBookingConfirmed = "bookingConfirmed"
	NotificationBookingReminder  = "bookingReminder"
	NotificationBookingCancelled = "bookingCancelled"
)

// Notification is a stored in-app message for a member.
type Notification struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Type      string    `bson:"type" json:"type"`
	Title     string    `bson:"title" json:"title"`
	Body      string    `bson:"body" json:"body"`
	Read      bool      `bson:"read" json:"read"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// ReminderPayload is the asynq task payload for scheduled appointment
// reminders.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	UserID        string `json:"userId"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	FireDate      string `json:"fireDate"`
}
