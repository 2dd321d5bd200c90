package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Location is a geocoded coordinate pair.
type Location struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

type Place struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Description string             `bson:"description" json:"description" validate:"required,min=5"`
	Address     string             `bson:"address" json:"address" validate:"required"`
	Location    Location           `bson:"location" json:"location"`
	Image       string             `bson:"image" json:"image"`
	Creator     primitive.ObjectID `bson:"creator" json:"creator"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// OwnedBy is the single ownership check used everywhere a creator-only
// operation needs it. IDs are compared as ObjectIDs, never as hex strings.
func (p Place) OwnedBy(userID primitive.ObjectID) bool {
	return p.Creator == userID
}
