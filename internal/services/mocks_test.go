package services

import (
	"context"

	"github.com/kavinraj03/PlaceHub/internal/models"
	"github.com/kavinraj03/PlaceHub/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockUserStore struct {
	insertFunc      func(ctx context.Context, user models.User) error
	findByIDFunc    func(ctx context.Context, id primitive.ObjectID) (models.User, error)
	findByEmailFunc func(ctx context.Context, email string) (models.User, error)
	findAllFunc     func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserStore) Insert(ctx context.Context, user models.User) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, user)
	}
	return nil
}

func (m *mockUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return models.User{}, store.ErrNotFound
}

func (m *mockUserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return models.User{}, store.ErrNotFound
}

func (m *mockUserStore) FindAll(ctx context.Context) ([]models.User, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

type mockPlaceStore struct {
	findByIDFunc        func(ctx context.Context, id primitive.ObjectID) (models.Place, error)
	findByCreatorFunc   func(ctx context.Context, creator primitive.ObjectID) ([]models.Place, error)
	updateFunc          func(ctx context.Context, place models.Place) error
	createWithOwnerFunc func(ctx context.Context, place models.Place) error
	deleteWithOwnerFunc func(ctx context.Context, place models.Place) error
}

func (m *mockPlaceStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Place, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return models.Place{}, store.ErrNotFound
}

func (m *mockPlaceStore) FindByCreator(ctx context.Context, creator primitive.ObjectID) ([]models.Place, error) {
	if m.findByCreatorFunc != nil {
		return m.findByCreatorFunc(ctx, creator)
	}
	return nil, nil
}

func (m *mockPlaceStore) Update(ctx context.Context, place models.Place) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, place)
	}
	return nil
}

func (m *mockPlaceStore) CreateWithOwner(ctx context.Context, place models.Place) error {
	if m.createWithOwnerFunc != nil {
		return m.createWithOwnerFunc(ctx, place)
	}
	return nil
}

func (m *mockPlaceStore) DeleteWithOwner(ctx context.Context, place models.Place) error {
	if m.deleteWithOwnerFunc != nil {
		return m.deleteWithOwnerFunc(ctx, place)
	}
	return nil
}

type mockGeocoder struct {
	resolveFunc func(ctx context.Context, address string) (models.Location, error)
}

func (m *mockGeocoder) Resolve(ctx context.Context, address string) (models.Location, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, address)
	}
	return models.Location{Lat: 37.422, Lng: -122.084}, nil
}

type mockUploader struct {
	uploadFunc  func(ctx context.Context, data []byte, contentType string) (string, string, error)
	removeFunc  func(ctx context.Context, key string) error
	uploads     int
	removedKeys chan string
}

func newMockUploader() *mockUploader {
	return &mockUploader{removedKeys: make(chan string, 8)}
}

func (m *mockUploader) Upload(ctx context.Context, data []byte, contentType string) (string, string, error) {
	m.uploads++
	if m.uploadFunc != nil {
		return m.uploadFunc(ctx, data, contentType)
	}
	return "http://assets.local/img.png", "img.png", nil
}

func (m *mockUploader) Remove(ctx context.Context, key string) error {
	if m.removedKeys != nil {
		m.removedKeys <- key
	}
	if m.removeFunc != nil {
		return m.removeFunc(ctx, key)
	}
	return nil
}

// memStore is an in-memory UserStore+PlaceStore pair for round-trip tests.
// Its transactional ops mirror the Mongo implementation's semantics.
type memStore struct {
	users  map[primitive.ObjectID]models.User
	places map[primitive.ObjectID]models.Place
}

func newMemStore() *memStore {
	return &memStore{
		users:  make(map[primitive.ObjectID]models.User),
		places: make(map[primitive.ObjectID]models.Place),
	}
}

func (m *memStore) Insert(ctx context.Context, user models.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *memStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return user, nil
}

func (m *memStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (m *memStore) FindAll(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	for _, user := range m.users {
		users = append(users, user)
	}
	return users, nil
}

func (m *memStore) FindPlaceByID(ctx context.Context, id primitive.ObjectID) (models.Place, error) {
	place, ok := m.places[id]
	if !ok {
		return models.Place{}, store.ErrNotFound
	}
	return place, nil
}

func (m *memStore) FindByCreator(ctx context.Context, creator primitive.ObjectID) ([]models.Place, error) {
	places := []models.Place{}
	for _, place := range m.places {
		if place.Creator == creator {
			places = append(places, place)
		}
	}
	return places, nil
}

func (m *memStore) Update(ctx context.Context, place models.Place) error {
	if _, ok := m.places[place.ID]; !ok {
		return store.ErrNotFound
	}
	m.places[place.ID] = place
	return nil
}

func (m *memStore) CreateWithOwner(ctx context.Context, place models.Place) error {
	owner, ok := m.users[place.Creator]
	if !ok {
		return store.ErrNotFound
	}
	m.places[place.ID] = place
	owner.Places = append(owner.Places, place.ID)
	m.users[owner.ID] = owner
	return nil
}

func (m *memStore) DeleteWithOwner(ctx context.Context, place models.Place) error {
	if _, ok := m.places[place.ID]; !ok {
		return store.ErrNotFound
	}
	delete(m.places, place.ID)
	owner, ok := m.users[place.Creator]
	if !ok {
		return nil
	}
	kept := owner.Places[:0]
	for _, id := range owner.Places {
		if id != place.ID {
			kept = append(kept, id)
		}
	}
	owner.Places = kept
	m.users[owner.ID] = owner
	return nil
}

// placeStoreView adapts memStore to the PlaceStore interface, whose FindByID
// collides with the user lookup.
type placeStoreView struct{ *memStore }

func (v placeStoreView) FindByID(ctx context.Context, id primitive.ObjectID) (models.Place, error) {
	return v.memStore.FindPlaceByID(ctx, id)
}
