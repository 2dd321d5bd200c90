package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kavinraj03/PlaceHub/internal/httperr"
	"golang.org/x/crypto/bcrypt"
)

// Claims is the decoded identity carried by a session token.
type Claims struct {
	UserID string
	Email  string
}

// CredentialService hashes passwords and signs session tokens.
type CredentialService struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewCredentialService(secret string) *CredentialService {
	return &CredentialService{
		secret:   []byte(secret),
		tokenTTL: time.Hour,
	}
}

// Hash hashes a password using bcrypt.
func (s *CredentialService) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", httperr.Upstream(err, "Could not create user, please try again")
	}
	return string(hash), nil
}

// Verify compares a plain password with a bcrypt hash. A mismatch is a
// normal outcome, not an error.
func (s *CredentialService) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IssueToken signs an HS256 token for the user, valid for one hour.
func (s *CredentialService) IssueToken(userID, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", httperr.Upstream(err, "Signing credentials failed, please try again later")
	}
	return signed, nil
}

// ParseToken verifies signature and expiry and returns the embedded claims.
func (s *CredentialService) ParseToken(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, httperr.Unauthorized("Invalid token")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, httperr.Unauthorized("Invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, httperr.Unauthorized("Invalid token claims")
	}

	userID, uok := mapClaims["user_id"].(string)
	email, eok := mapClaims["email"].(string)
	if !uok || !eok {
		return Claims{}, httperr.Unauthorized("Invalid token payload")
	}

	return Claims{UserID: userID, Email: email}, nil
}
