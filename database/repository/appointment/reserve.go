package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"petshop/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// claimHours performs the capacity compare-and-swap for every hour of a
// window. The filter only matches a counter still below capacity; when no
// counter matches the upsert falls through to an insert, and a duplicate-key
// rejection from the unique (date, hour) index means a counter document
// already exists outside the filter. That document may be at capacity, or it
// may have been inserted a moment ago by a racing claim, so the conditional
// increment is retried once against the now-existing counter before the hour
// is declared full.
func (r *MongoAppointmentRepo) claimHours(ctx context.Context, date string, hour, duration, capacity int) error {
	for h := hour; h < hour+duration; h++ {
		filter := bson.M{
			"date":  date,
			"hour":  h,
			"count": bson.M{"$lt": capacity},
		}
		update := bson.M{"$inc": bson.M{"count": 1}}
		opts := options.Update().SetUpsert(true)
		_, err := r.slotColl.UpdateOne(ctx, filter, update, opts)
		if mongo.IsDuplicateKeyError(err) {
			res, retryErr := r.slotColl.UpdateOne(ctx, filter, update)
			if retryErr != nil {
				return fmt.Errorf("failed to claim hour %d on %s: %w", h, date, retryErr)
			}
			if res.MatchedCount == 0 {
				return ErrSlotFull
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to claim hour %d on %s: %w", h, date, err)
		}
	}
	return nil
}

// releaseHours returns previously claimed hours.
func (r *MongoAppointmentRepo) releaseHours(ctx context.Context, date string, hour, duration int) error {
	for h := hour; h < hour+duration; h++ {
		filter := bson.M{"date": date, "hour": h, "count": bson.M{"$gt": 0}}
		update := bson.M{"$inc": bson.M{"count": -1}}
		if _, err := r.slotColl.UpdateOne(ctx, filter, update); err != nil {
			return fmt.Errorf("failed to release hour %d on %s: %w", h, date, err)
		}
	}
	return nil
}

// withTransaction runs fn inside a Mongo session transaction. The driver's
// WithTransaction helper re-runs fn on transient transaction errors, so two
// reservations colliding on the same counter document do not surface a
// write conflict to the caller.
func (r *MongoAppointmentRepo) withTransaction(fn func(sc mongo.SessionContext) error) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	client := r.apptColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

// ReserveAndInsert atomically claims every hour of the appointment's window
// and inserts the record. Two concurrent bookings racing for a last free hour
// cannot both commit: the loser's counter update misses its capacity filter
// and aborts the whole transaction with ErrSlotFull.
func (r *MongoAppointmentRepo) ReserveAndInsert(appt *models.Appointment, capacity int) error {
	return r.withTransaction(func(sc mongo.SessionContext) error {
		if err := r.claimHours(sc, appt.Date, appt.Hour, appt.DurationHours, capacity); err != nil {
			return err
		}
		if _, err := r.apptColl.InsertOne(sc, appt); err != nil {
			return fmt.Errorf("error creating appointment: %w", err)
		}
		return nil
	})
}

// Reschedule releases the old window, claims the new one and persists the
// updated appointment record in a single transaction.
func (r *MongoAppointmentRepo) Reschedule(appt *models.Appointment, oldDate string, oldHour, oldDuration, capacity int) error {
	return r.withTransaction(func(sc mongo.SessionContext) error {
		if err := r.releaseHours(sc, oldDate, oldHour, oldDuration); err != nil {
			return err
		}
		if err := r.claimHours(sc, appt.Date, appt.Hour, appt.DurationHours, capacity); err != nil {
			return err
		}
		res, err := r.apptColl.ReplaceOne(sc, bson.M{"id": appt.ID}, appt)
		if err != nil {
			return fmt.Errorf("error updating appointment %s: %w", appt.ID, err)
		}
		if res.MatchedCount == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// ReleaseWindow returns the hours held by a cancelled appointment.
func (r *MongoAppointmentRepo) ReleaseWindow(date string, hour, duration int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	return r.releaseHours(ctx, date, hour, duration)
}
