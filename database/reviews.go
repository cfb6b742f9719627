package database

import (
	"context"
	"fmt"

	"travel-webapp/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewRepository struct {
	coll *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{coll: db.Collection(ReviewsCollectionName)}
}

func (r *ReviewRepository) Insert(ctx context.Context, review *model.Review) error {
	_, err := r.coll.InsertOne(ctx, review)
	if err != nil {
		return fmt.Errorf("cannot insert review: %v", err)
	}
	return nil
}

func destinationReviewsPipeline(destinationId primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "destination", Value: destinationId}}}},
		{{Key: "$sort", Value: newestFirst()}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: UsersCollectionName},
			{Key: "localField", Value: "user"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "reviewer"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$reviewer"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$addFields", Value: bson.D{{Key: "username", Value: "$reviewer.username"}}}},
		{{Key: "$project", Value: bson.D{{Key: "reviewer", Value: 0}}}},
	}
}

func userReviewsPipeline(userId primitive.ObjectID) mongo.Pipeline {
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

func (r *ReviewRepository) ListForDestination(ctx context.Context, destinationId primitive.ObjectID) ([]model.ReviewWithUser, error) {
	cur, err := r.coll.Aggregate(ctx, destinationReviewsPipeline(destinationId))
	if err != nil {
		return nil, fmt.Errorf("cannot read reviews: %v", err)
	}

	reviews := []model.ReviewWithUser{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("cannot read reviews: %v", err)
	}
	return reviews, nil
}

func (r *ReviewRepository) ListForUser(ctx context.Context, userId primitive.ObjectID) ([]model.ReviewWithDestination, error) {
	cur, err := r.coll.Aggregate(ctx, userReviewsPipeline(userId))
	if err != nil {
		return nil, fmt.Errorf("cannot read reviews: %v", err)
	}

	reviews := []model.ReviewWithDestination{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("cannot read reviews: %v", err)
	}
	return reviews, nil
}
