package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"petshop/config"
	"petshop/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask builds an asynq task carrying a reminder payload, scheduled
// to fire at the given time.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderQueue enqueues appointment reminders onto the Redis-backed queue.
// It fires one day before the appointment start, or skips scheduling when the
// booking is made closer than that.
type ReminderQueue struct {
	client *asynq.Client
}

// NewReminderQueue connects an enqueue client to the reminder queue.
func NewReminderQueue() *ReminderQueue {
	return &ReminderQueue{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// ScheduleAppointmentReminder enqueues a reminder for a booked appointment.
func (q *ReminderQueue) ScheduleAppointmentReminder(appt *models.Appointment) error {
	start := appt.StartTime(time.Local)
	if start.IsZero() {
		return fmt.Errorf("appointment %s has no parsable start time", appt.ID)
	}

	fireAt := start.Add(-24 * time.Hour)
	if !fireAt.After(time.Now()) {
		// Booked less than a day ahead; nothing useful to remind about.
		return nil
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		UserID:        appt.UserID,
		Title:         "Upcoming appointment",
		Body:          fmt.Sprintf("Reminder: %s for %s tomorrow at %s.", appt.ServiceID, appt.PetName, appt.Time),
		FireDate:      fireAt.Format(time.RFC3339),
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := q.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder for appointment %s: %w", appt.ID, err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (q *ReminderQueue) Close() error {
	return q.client.Close()
}
