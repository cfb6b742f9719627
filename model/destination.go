package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Destination struct {
	Id          primitive.ObjectID `json:"_id" bson:"_id"`
	Name        string             `json:"name" bson:"name"`
	Location    string             `json:"location" bson:"location"`
	Description string             `json:"description" bson:"description,omitempty"`
	Price       float64            `json:"price" bson:"price,omitempty"`
	Image       string             `json:"image" bson:"image,omitempty"`
}
