package database

import (
	"context"
	"fmt"

	"travel-webapp/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ctx = context.TODO()

const (
	UsersCollectionName        = "users"
	DestinationsCollectionName = "destinations"
	BookingsCollectionName     = "bookings"
	ReviewsCollectionName      = "reviews"
)

func DBInit() (*mongo.Database, error) {
	connString := config.Get("MONGODB_URI", config.DefaultMongoURI)

	clientOptions := options.Client().ApplyURI(connString)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to the db: %v", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("db is not available: %v", err)
	}

	return client.Database(config.DatabaseName), nil
}

// EnsureIndexes creates the unique email index. The signup flow still does a
// friendly existence pre-check, but this index is the authoritative guard
// against two concurrent signups racing past it.
func EnsureIndexes(db *mongo.Database) error {
	_, err := db.Collection(UsersCollectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("cannot create unique index on users.email: %v", err)
	}
	return nil
}
