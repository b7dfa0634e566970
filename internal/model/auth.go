package model

import "github.com/golang-jwt/jwt/v5"

// ParticipantClaims are JWT claims for room-scoped participant tokens
type ParticipantClaims struct {
	RoomCode      string `json:"roomCode"`
	ParticipantID string `json:"participantId"`
	jwt.RegisteredClaims
}
