package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"sanguo/internal/model"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// AuthService mints and checks room-scoped participant tokens
type AuthService struct {
	jwtSecret []byte
	ttl       time.Duration
	now       func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(secret string) *AuthService {
	return &AuthService{
		jwtSecret: []byte(secret),
		ttl:       24 * time.Hour, // 24h for room sessions
		now:       time.Now,
	}
}

// GenerateParticipantToken creates a room-scoped token for a participant
func (s *AuthService) GenerateParticipantToken(roomCode, participantID string) (string, error) {
	now := s.now()
	claims := &model.ParticipantClaims{
		RoomCode:      roomCode,
		ParticipantID: participantID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateParticipantToken validates a participant JWT and returns claims
func (s *AuthService) ValidateParticipantToken(tokenString string) (*model.ParticipantClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.ParticipantClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.ParticipantClaims)
	if !ok || !token.Valid || claims.RoomCode == "" || claims.ParticipantID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
