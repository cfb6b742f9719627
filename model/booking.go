package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BookingStatusPending = "pending"
	// BookingStatusConfirmed is part of the stored enum but nothing in the app
	// transitions a booking into it; only direct data edits can produce it.
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	Id            primitive.ObjectID `json:"_id" bson:"_id"`
	UserId        primitive.ObjectID `json:"user" bson:"user"`
	DestinationId primitive.ObjectID `json:"destination" bson:"destination"`
	GuestName     string             `json:"guest_name" bson:"guest_name,omitempty"`
	Checkin       time.Time          `json:"checkin" bson:"checkin"`
	Checkout      time.Time          `json:"checkout" bson:"checkout"`
	Status        string             `json:"status" bson:"status"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// BookingWithDestination is a booking joined with the display data of the
// destination it references, as listed on the bookings and dashboard pages.
type BookingWithDestination struct {
	Booking     `bson:",inline"`
	Destination Destination `json:"destination_info" bson:"destination_info"`
}
