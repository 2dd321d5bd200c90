package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/kavinraj03/PlaceHub/internal/httperr"
	"github.com/kavinraj03/PlaceHub/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserIDKey is the Locals key under which the authenticated user's ObjectID
// is stored for downstream handlers.
const UserIDKey = "user_id"

// Auth validates the bearer token and attaches the decoded user identity to
// the request. Requests without a valid token never reach the services.
func Auth(creds *services.CredentialService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return httperr.Unauthorized("Missing token")
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == "" {
			return httperr.Unauthorized("Invalid token format")
		}

		claims, err := creds.ParseToken(tokenString)
		if err != nil {
			return err
		}

		// The hex claim is parsed once here so every ownership check
		// downstream compares ObjectIDs directly.
		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			return httperr.Unauthorized("Invalid token payload")
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// AuthedUser pulls the authenticated user's id out of the request context.
func AuthedUser(c *fiber.Ctx) (primitive.ObjectID, error) {
	userID, ok := c.Locals(UserIDKey).(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, httperr.Unauthorized("Missing token")
	}
	return userID, nil
}
