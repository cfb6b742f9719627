package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	Id            primitive.ObjectID `json:"_id" bson:"_id"`
	UserId        primitive.ObjectID `json:"user" bson:"user"`
	DestinationId primitive.ObjectID `json:"destination" bson:"destination"`
	Rating        int                `json:"rating" bson:"rating"`
	Comment       string             `json:"comment" bson:"comment,omitempty"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
}

// ReviewWithUser is a review joined with the reviewer's display name,
// shown on a destination's review page.
type ReviewWithUser struct {
	Review   `bson:",inline"`
	Username string `json:"username" bson:"username"`
}

// ReviewWithDestination is a review joined with the destination it is about,
// shown on the user's own reviews page.
type ReviewWithDestination struct {
	Review      `bson:",inline"`
	Destination Destination `json:"destination_info" bson:"destination_info"`
}
