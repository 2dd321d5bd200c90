package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/kavinraj03/PlaceHub/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoPlaceStore struct {
	client *mongo.Client
	places *mongo.Collection
	users  *mongo.Collection
}

func NewMongoPlaceStore(client *mongo.Client, db *mongo.Database) *MongoPlaceStore {
	return &MongoPlaceStore{
		client: client,
		places: db.Collection("places"),
		users:  db.Collection("users"),
	}
}

func (s *MongoPlaceStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Place, error) {
	var place models.Place
	err := s.places.FindOne(ctx, bson.M{"_id": id}).Decode(&place)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Place{}, ErrNotFound
	}
	if err != nil {
		return models.Place{}, fmt.Errorf("find place by id: %w", err)
	}
	return place, nil
}

func (s *MongoPlaceStore) FindByCreator(ctx context.Context, creator primitive.ObjectID) ([]models.Place, error) {
	cursor, err := s.places.Find(ctx, bson.M{"creator": creator})
	if err != nil {
		return nil, fmt.Errorf("find places by creator: %w", err)
	}
	defer cursor.Close(ctx)

	places := []models.Place{}
	if err := cursor.All(ctx, &places); err != nil {
		return nil, fmt.Errorf("decode places: %w", err)
	}
	return places, nil
}

func (s *MongoPlaceStore) Update(ctx context.Context, place models.Place) error {
	res, err := s.places.UpdateOne(
		ctx,
		bson.M{"_id": place.ID},
		bson.M{"$set": bson.M{
			"title":       place.Title,
			"description": place.Description,
		}},
	)
	if err != nil {
		return fmt.Errorf("update place: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateWithOwner inserts the place and appends its id to the owner's place
// set in a single transaction. Both writes commit or neither does.
func (s *MongoPlaceStore) CreateWithOwner(ctx context.Context, place models.Place) error {
	sess, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := s.places.InsertOne(sc, place); err != nil {
			return nil, fmt.Errorf("insert place: %w", err)
		}
		res, err := s.users.UpdateOne(
			sc,
			bson.M{"_id": place.Creator},
			bson.M{"$addToSet": bson.M{"places": place.ID}},
		)
		if err != nil {
			return nil, fmt.Errorf("push place onto owner: %w", err)
		}
		if res.MatchedCount == 0 {
			return nil, ErrNotFound
		}
		return nil, nil
	})
	return err
}

// DeleteWithOwner removes the place and pulls its id from the owner's place
// set in a single transaction.
func (s *MongoPlaceStore) DeleteWithOwner(ctx context.Context, place models.Place) error {
	sess, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := s.places.DeleteOne(sc, bson.M{"_id": place.ID})
		if err != nil {
			return nil, fmt.Errorf("delete place: %w", err)
		}
		if res.DeletedCount == 0 {
			return nil, ErrNotFound
		}
		if _, err := s.users.UpdateOne(
			sc,
			bson.M{"_id": place.Creator},
			bson.M{"$pull": bson.M{"places": place.ID}},
		); err != nil {
			return nil, fmt.Errorf("pull place from owner: %w", err)
		}
		return nil, nil
	})
	return err
}

var _ PlaceStore = (*MongoPlaceStore)(nil)
var _ UserStore = (*MongoUserStore)(nil)
