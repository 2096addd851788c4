package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Contest is a catalog item. The descriptive text lives in the "contest"
// field to stay wire-compatible with existing documents and clients.
type Contest struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Category    string             `bson:"category" json:"category"`
	Price       float64            `bson:"price" json:"price"`
	Description string             `bson:"contest" json:"contest"`
	Image       string             `bson:"image" json:"image"`
}

type ContestUpdate struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"contest"`
	Image       string  `json:"image"`
}
