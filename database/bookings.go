package database

import (
	"context"
	"fmt"
	"time"

	apperrors "travel-webapp/errors"
	"travel-webapp/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{coll: db.Collection(BookingsCollectionName)}
}

func (r *BookingRepository) Insert(ctx context.Context, booking *model.Booking) error {
	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("cannot insert booking: %v", err)
	}
	return nil
}

// userBookingsPipeline lists a user's bookings newest-created first, each
// joined with its destination document.
func userBookingsPipeline(userId primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "user", Value: userId}}}},
		{{Key: "$sort", Value: newestFirst()}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: DestinationsCollectionName},
			{Key: "localField", Value: "destination"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "destination_info"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$destination_info"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}
}

func newestFirst() bson.D {
	return bson.D{{Key: "created_at", Value: -1}}
}

func (r *BookingRepository) ListForUser(ctx context.Context, userId primitive.ObjectID) ([]model.BookingWithDestination, error) {
	cur, err := r.coll.Aggregate(ctx, userBookingsPipeline(userId))
	if err != nil {
		return nil, fmt.Errorf("cannot read bookings: %v", err)
	}

	bookings := []model.BookingWithDestination{}
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("cannot read bookings: %v", err)
	}
	return bookings, nil
}

// Cancel flips the booking to cancelled, but only when it belongs to userId.
// A missing booking and one owned by somebody else are indistinguishable:
// both come back as ErrNotFound.
func (r *BookingRepository) Cancel(ctx context.Context, userId, bookingId primitive.ObjectID) (*model.Booking, error) {
	var booking model.Booking
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": bookingId, "user": userId},
		bson.M{"$set": bson.M{
			"status":     model.BookingStatusCancelled,
			"updated_at": time.Now(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("cannot cancel booking: %v", err)
	}
	return &booking, nil
}
