package database

import (
	"context"
	"fmt"
	"regexp"

	apperrors "travel-webapp/errors"
	"travel-webapp/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DestinationRepository struct {
	coll *mongo.Collection
}

func NewDestinationRepository(db *mongo.Database) *DestinationRepository {
	return &DestinationRepository{coll: db.Collection(DestinationsCollectionName)}
}

// searchFilter matches destinations whose name or location contains the term,
// case-insensitively. An empty term matches everything.
func searchFilter(term string) bson.M {
	if term == "" {
		return bson.M{}
	}
	re := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"name": re},
		bson.M{"location": re},
	}}
}

func (r *DestinationRepository) Search(ctx context.Context, term string) ([]model.Destination, error) {
	cur, err := r.coll.Find(ctx, searchFilter(term))
	if err != nil {
		return nil, fmt.Errorf("cannot read destinations: %v", err)
	}

	destinations := []model.Destination{}
	if err := cur.All(ctx, &destinations); err != nil {
		return nil, fmt.Errorf("cannot read destinations: %v", err)
	}
	return destinations, nil
}

func (r *DestinationRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Destination, error) {
	var destination model.Destination
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&destination)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read destination: %v", err)
	}
	return &destination, nil
}
