package server

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jonathan/match-engine/internal/server/middleware"
)

// tokenTTL bounds how long an issued API token stays valid.
const tokenTTL = 24 * time.Hour

// Claims represents the JWT claims carried by an API token.
type Claims struct {
	Client string `json:"client"`
	jwt.RegisteredClaims
}

// GetClient returns the client identifier from the claims. Implements
// middleware.ClientGetter.
func (c *Claims) GetClient() string {
	return c.Client
}

// TokenService issues and validates HMAC-signed API tokens.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a token service with the given shared secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// GenerateToken issues a token for the named client.
func (s *TokenService) GenerateToken(client string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Client: client,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken checks the signature and expiry and returns the claims.
// Implements middleware.TokenValidator.
func (s *TokenService) ValidateToken(tokenString string) (middleware.ClientGetter, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token string is empty")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}
	return claims, nil
}
