package store

import (
	"context"
	"errors"

	"github.com/kavinraj03/PlaceHub/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when a lookup matches no document. Every other
// store error means the underlying database failed.
var ErrNotFound = errors.New("document not found")

// UserStore persists User documents.
type UserStore interface {
	Insert(ctx context.Context, user models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
}

// PlaceStore persists Place documents. CreateWithOwner and DeleteWithOwner
// mutate the place collection and the owner's place set in one transaction,
// keeping the two collections mutually consistent.
type PlaceStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Place, error)
	FindByCreator(ctx context.Context, creator primitive.ObjectID) ([]models.Place, error)
	Update(ctx context.Context, place models.Place) error
	CreateWithOwner(ctx context.Context, place models.Place) error
	DeleteWithOwner(ctx context.Context, place models.Place) error
}
