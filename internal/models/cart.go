package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	ContestID string             `bson:"contest_id" json:"contestId"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Category  string             `bson:"category,omitempty" json:"category,omitempty"`
	Price     float64            `bson:"price,omitempty" json:"price,omitempty"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
}
