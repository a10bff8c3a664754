package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Treatment struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code      string             `json:"code" bson:"code"`
	Name      string             `json:"name" bson:"name"`
	Price     int64              `json:"price" bson:"price"`
	Active    bool               `json:"active" bson:"active"`
	TimeModel `bson:",inline"`
}
