// Package token issues and verifies the bearer credentials used by the API.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/kutbudev/agri-api/pkg/models"
)

// Validity is how long an issued credential stays usable.
const Validity = 7 * 24 * time.Hour

// Claims are the verifiable claims carried by a credential. The subject
// holds the user's identifier.
type Claims struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// Service signs and verifies credentials with a server-held symmetric secret.
type Service struct {
	secret []byte
}

// NewService creates a token service from the configured secret.
func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Issue signs a credential for the user, valid for Validity from now.
func (s *Service) Issue(user *models.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Username:    user.Username,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(Validity)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return tok.SignedString(s.secret)
}

// Parse verifies the signature and expiry of a credential and returns its
// claims. Any failure maps to models.ErrUnauthorized.
func (s *Service) Parse(tokenString string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, models.ErrUnauthorized
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok {
		return nil, models.ErrUnauthorized
	}
	return claims, nil
}
