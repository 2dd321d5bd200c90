package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string               `bson:"name" json:"name" validate:"required"`
	Email     string               `bson:"email" json:"email" validate:"required,email"`
	Password  string               `bson:"password,omitempty" json:"-"`
	Image     string               `bson:"image" json:"image"`
	Places    []primitive.ObjectID `bson:"places" json:"places"`
	CreatedAt time.Time            `bson:"created_at" json:"created_at"`
}
