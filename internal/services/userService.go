package services

import (
	"context"
	"errors"
	"time"

	"github.com/kavinraj03/PlaceHub/internal/httperr"
	"github.com/kavinraj03/PlaceHub/internal/models"
	"github.com/kavinraj03/PlaceHub/internal/storage"
	"github.com/kavinraj03/PlaceHub/internal/store"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ImageUpload is an in-memory uploaded image.
type ImageUpload struct {
	Data        []byte
	ContentType string
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
	Image    ImageUpload
}

// AuthResult is what signup and login hand back to the client.
type AuthResult struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

type UserService struct {
	users  store.UserStore
	creds  *CredentialService
	images storage.Uploader
	log    zerolog.Logger
}

func NewUserService(users store.UserStore, creds *CredentialService, images storage.Uploader, log zerolog.Logger) *UserService {
	return &UserService{
		users:  users,
		creds:  creds,
		images: images,
		log:    log,
	}
}

// List returns all users. Password hashes never leave the store.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, httperr.Upstream(err, "Fetching users failed, please try again later")
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// Signup registers a new user. The image is uploaded before the user is
// persisted; if persistence then fails, the uploaded object is removed
// best-effort so no orphan is left in the bucket.
func (s *UserService) Signup(ctx context.Context, input SignupInput) (AuthResult, error) {
	_, err := s.users.FindByEmail(ctx, input.Email)
	if err == nil {
		return AuthResult{}, httperr.Conflict("Could not create user, email already exists")
	}
	if !errors.Is(err, store.ErrNotFound) {
		return AuthResult{}, httperr.Upstream(err, "Signing up failed, please try again later")
	}

	hash, err := s.creds.Hash(input.Password)
	if err != nil {
		return AuthResult{}, err
	}

	imageURL, imageKey, err := s.images.Upload(ctx, input.Image.Data, input.Image.ContentType)
	if err != nil {
		return AuthResult{}, err
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      input.Name,
		Email:     input.Email,
		Password:  hash,
		Image:     imageURL,
		Places:    []primitive.ObjectID{},
		CreatedAt: time.Now(),
	}

	if err := s.users.Insert(ctx, user); err != nil {
		go func(key string) {
			if rmErr := s.images.Remove(context.Background(), key); rmErr != nil {
				s.log.Warn().Err(rmErr).Str("key", key).Msg("failed to clean up image after signup failure")
			}
		}(imageKey)
		return AuthResult{}, httperr.Upstream(err, "Signing up failed, please try again later")
	}

	token, err := s.creds.IssueToken(user.ID.Hex(), user.Email)
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{UserID: user.ID.Hex(), Email: user.Email, Token: token}, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password are reported distinctly (401 vs 403), as the clients expect.
func (s *UserService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return AuthResult{}, httperr.Unauthorized("Could not identify user, credentials seem to be wrong")
	}
	if err != nil {
		return AuthResult{}, httperr.Upstream(err, "Logging in failed, please try again later")
	}

	if !s.creds.Verify(password, user.Password) {
		return AuthResult{}, httperr.Forbidden("Could not log you in, please check your credentials and try again")
	}

	token, err := s.creds.IssueToken(user.ID.Hex(), user.Email)
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{UserID: user.ID.Hex(), Email: user.Email, Token: token}, nil
}
