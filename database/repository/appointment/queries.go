package appointmentRepo

import (
	"fmt"
	"time"

	"petshop/models"

	"go.mongodb.org/mongo-driver/bson"
)

// FindByDate retrieves appointments for a calendar date, optionally excluding
// cancelled ones. Availability computation always excludes cancellations.
func (r *MongoAppointmentRepo) FindByDate(date string, excludeCancelled bool) ([]models.Appointment, error) {
	filter := bson.M{"date": date}
	if excludeCancelled {
		filter["status"] = bson.M{"$ne": models.StatusCancelled}
	}
	return r.FindAll(filter)
}

// FindByUser retrieves all appointments made by a member.
func (r *MongoAppointmentRepo) FindByUser(userID string) ([]models.Appointment, error) {
	return r.FindAll(bson.M{"userId": userID})
}

// FindAll retrieves appointments matching an arbitrary filter.
func (r *MongoAppointmentRepo) FindAll(filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.apptColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}
