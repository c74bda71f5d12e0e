package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Tokens are valid for seven days from issue.
const tokenTTL = 7 * 24 * time.Hour

// AuthService issues and verifies the bearer tokens carried on every
// authenticated request. Tokens are self-issued HS256 with the user ID as
// subject; the access-gate middleware resolves the user row per request.
type AuthService interface {
	GenerateToken(userID uuid.UUID) (string, error)
	ParseToken(tokenString string) (uuid.UUID, error)
}

type authService struct {
	jwtSecret []byte
}

func NewAuthService(jwtSecret string) AuthService {
	return &authService{jwtSecret: []byte(jwtSecret)}
}

func (s *authService) GenerateToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    "hotelhub-auth",
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign JWT: %w", err)
	}
	return signed, nil
}

func (s *authService) ParseToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	if !token.Valid {
		return uuid.Nil, fmt.Errorf("token not valid")
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return uuid.Nil, fmt.Errorf("missing subject in token")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid subject in token: %w", err)
	}
	return userID, nil
}
