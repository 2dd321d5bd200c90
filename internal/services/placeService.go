package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/kavinraj03/PlaceHub/internal/geocode"
	"github.com/kavinraj03/PlaceHub/internal/httperr"
	"github.com/kavinraj03/PlaceHub/internal/models"
	"github.com/kavinraj03/PlaceHub/internal/storage"
	"github.com/kavinraj03/PlaceHub/internal/store"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreatePlaceInput struct {
	Title       string
	Description string
	Address     string
	// ImageURL is an already-hosted image (uploaded via the standalone
	// upload endpoint). ImageFile, when set, takes precedence.
	ImageURL  string
	ImageFile *ImageUpload
}

type UpdatePlaceInput struct {
	Title       string
	Description string
}

type PlaceService struct {
	places store.PlaceStore
	users  store.UserStore
	geo    geocode.Geocoder
	images storage.Uploader
	log    zerolog.Logger
}

func NewPlaceService(places store.PlaceStore, users store.UserStore, geo geocode.Geocoder, images storage.Uploader, log zerolog.Logger) *PlaceService {
	return &PlaceService{
		places: places,
		users:  users,
		geo:    geo,
		images: images,
		log:    log,
	}
}

func (s *PlaceService) GetByID(ctx context.Context, id primitive.ObjectID) (models.Place, error) {
	place, err := s.places.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Place{}, httperr.NotFound("Could not find a place for the provided id")
	}
	if err != nil {
		return models.Place{}, httperr.Upstream(err, "Something went wrong, could not find a place")
	}
	return place, nil
}

// GetByUser returns every place the user owns. A missing user is a 404; a
// user with no places gets an empty list.
func (s *PlaceService) GetByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Place, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, httperr.NotFound("Could not find a user for the provided id")
		}
		return nil, httperr.Upstream(err, "Fetching places failed, please try again later")
	}

	places, err := s.places.FindByCreator(ctx, userID)
	if err != nil {
		return nil, httperr.Upstream(err, "Fetching places failed, please try again later")
	}
	if places == nil {
		places = []models.Place{}
	}
	return places, nil
}

// Create geocodes the address, checks the owner exists, and commits the
// place and the owner's place-set entry in one transaction. Any failing
// step aborts the whole operation.
func (s *PlaceService) Create(ctx context.Context, input CreatePlaceInput, creator primitive.ObjectID) (models.Place, error) {
	location, err := s.geo.Resolve(ctx, input.Address)
	if err != nil {
		return models.Place{}, err
	}

	if _, err := s.users.FindByID(ctx, creator); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Place{}, httperr.NotFound("Could not find user for provided id")
		}
		return models.Place{}, httperr.Upstream(err, "Creating place failed, please try again")
	}

	imageURL := input.ImageURL
	imageKey := ""
	if input.ImageFile != nil {
		imageURL, imageKey, err = s.images.Upload(ctx, input.ImageFile.Data, input.ImageFile.ContentType)
		if err != nil {
			return models.Place{}, err
		}
	}

	place := models.Place{
		ID:          primitive.NewObjectID(),
		Title:       input.Title,
		Description: input.Description,
		Address:     input.Address,
		Location:    location,
		Image:       imageURL,
		Creator:     creator,
		CreatedAt:   time.Now(),
	}

	if err := s.places.CreateWithOwner(ctx, place); err != nil {
		if imageKey != "" {
			s.removeImage(imageKey)
		}
		if errors.Is(err, store.ErrNotFound) {
			return models.Place{}, httperr.NotFound("Could not find user for provided id")
		}
		return models.Place{}, httperr.Upstream(err, "Creating place failed, please try again")
	}

	return place, nil
}

// Update lets the creator change title and description. Nothing else is
// mutable after creation.
func (s *PlaceService) Update(ctx context.Context, id primitive.ObjectID, input UpdatePlaceInput, requester primitive.ObjectID) (models.Place, error) {
	place, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Place{}, err
	}

	if !place.OwnedBy(requester) {
		return models.Place{}, httperr.Forbidden("You are not allowed to edit this place")
	}

	place.Title = input.Title
	place.Description = input.Description

	if err := s.places.Update(ctx, place); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Place{}, httperr.NotFound("Could not find a place for the provided id")
		}
		return models.Place{}, httperr.Upstream(err, "Something went wrong, could not update place")
	}

	return place, nil
}

// Delete removes the place and its entry in the owner's place set, then
// deletes the stored image best-effort. The image cleanup failing does not
// surface: the place deletion has already committed.
func (s *PlaceService) Delete(ctx context.Context, id primitive.ObjectID, requester primitive.ObjectID) error {
	place, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !place.OwnedBy(requester) {
		return httperr.Forbidden("You are not allowed to delete this place")
	}

	imageKey := objectKeyFromURL(place.Image)

	if err := s.places.DeleteWithOwner(ctx, place); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return httperr.NotFound("Could not find a place for the provided id")
		}
		return httperr.Upstream(err, "Something went wrong, could not delete the place")
	}

	if imageKey != "" {
		s.removeImage(imageKey)
	}
	return nil
}

func (s *PlaceService) removeImage(key string) {
	go func() {
		if err := s.images.Remove(context.Background(), key); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("failed to remove place image")
		}
	}()
}

// objectKeyFromURL recovers the storage key from a public asset URL.
func objectKeyFromURL(url string) string {
	if url == "" {
		return ""
	}
	if i := strings.LastIndex(url, "/"); i >= 0 {
		return url[i+1:]
	}
	return url
}
