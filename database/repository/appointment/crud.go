package appointmentRepo

import (
	"fmt"
	"time"

	"petshop/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetByID retrieves an appointment by its unique ID.
func (r *MongoAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.apptColl.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	return &appt, nil
}

// UpdateByID applies a partial update to one appointment.
func (r *MongoAppointmentRepo) UpdateByID(id string, patch bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	patch["updatedAt"] = time.Now()
	res, err := r.apptColl.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": patch})
	if err != nil {
		return fmt.Errorf("error updating appointment %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkCompleted flips the given Booked appointments to Completed. Used by the
// lazy-completion read path.
func (r *MongoAppointmentRepo) MarkCompleted(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": bson.M{"$in": ids}, "status": models.StatusBooked}
	update := bson.M{"$set": bson.M{"status": models.StatusCompleted, "updatedAt": time.Now()}}
	if _, err := r.apptColl.UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("error marking appointments completed: %w", err)
	}
	return nil
}

// Delete removes an appointment record.
func (r *MongoAppointmentRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.apptColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting appointment %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
