package appointmentRepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMockRepo(mt *mtest.T) *MongoAppointmentRepo {
	return &MongoAppointmentRepo{apptColl: mt.Coll, slotColl: mt.Coll}
}

func duplicateKeyResponse() bson.D {
	return mtest.CreateWriteErrorsResponse(mtest.WriteError{
		Index:   0,
		Code:    11000,
		Message: "E11000 duplicate key error",
	})
}

func updateResponse(matched int) bson.D {
	return mtest.CreateSuccessResponse(
		bson.E{Key: "n", Value: matched},
		bson.E{Key: "nModified", Value: matched},
	)
}

func TestClaimHoursBelowCapacity(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("conditional increment matches", func(mt *mtest.T) {
		repo := newMockRepo(mt)
		mt.AddMockResponses(updateResponse(1))

		err := repo.claimHours(context.Background(), "2026-03-10", 10, 1, 5)
		require.NoError(mt, err)
	})
}

func TestClaimHoursRetriesAfterCounterInsertRace(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	// A racing claim can insert the counter document between the filter
	// evaluation and the upsert's insert. The duplicate key must not be read
	// as a full slot while the fresh counter is still below capacity.
	mt.Run("duplicate key then successful increment", func(mt *mtest.T) {
		repo := newMockRepo(mt)
		mt.AddMockResponses(duplicateKeyResponse(), updateResponse(1))

		err := repo.claimHours(context.Background(), "2026-03-10", 10, 1, 5)
		require.NoError(mt, err)
	})

	mt.Run("duplicate key and counter at capacity", func(mt *mtest.T) {
		repo := newMockRepo(mt)
		mt.AddMockResponses(duplicateKeyResponse(), updateResponse(0))

		err := repo.claimHours(context.Background(), "2026-03-10", 10, 1, 5)
		assert.ErrorIs(mt, err, ErrSlotFull)
	})
}

func TestClaimHoursStopsOnFullHourInWindow(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("second hour of the window is full", func(mt *mtest.T) {
		repo := newMockRepo(mt)
		mt.AddMockResponses(
			updateResponse(1),
			duplicateKeyResponse(),
			updateResponse(0),
		)

		err := repo.claimHours(context.Background(), "2026-03-10", 10, 2, 5)
		assert.ErrorIs(mt, err, ErrSlotFull)
	})
}
