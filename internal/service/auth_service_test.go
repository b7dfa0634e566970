package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"sanguo/internal/model"
)

func TestParticipantTokenRoundTrip(t *testing.T) {
	auth := NewAuthService("secret")
	tok, err := auth.GenerateParticipantToken("ABC234", "p_1234abcd")
	if err != nil {
		t.Fatalf("GenerateParticipantToken err: %v", err)
	}
	claims, err := auth.ValidateParticipantToken(tok)
	if err != nil {
		t.Fatalf("ValidateParticipantToken err: %v", err)
	}
	if claims.RoomCode != "ABC234" || claims.ParticipantID != "p_1234abcd" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestParticipantTokenRejections(t *testing.T) {
	auth := NewAuthService("secret")
	tok, _ := auth.GenerateParticipantToken("ABC234", "p_1234abcd")

	if _, err := NewAuthService("other").ValidateParticipantToken(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("foreign secret accepted: %v", err)
	}

	expired := NewAuthService("secret")
	expired.now = func() time.Time { return time.Now().Add(25 * time.Hour) }
	if _, err := expired.ValidateParticipantToken(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expired token accepted: %v", err)
	}

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &model.ParticipantClaims{RoomCode: "ABC234", ParticipantID: "p_x"})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := auth.ValidateParticipantToken(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("alg=none token accepted: %v", err)
	}
}
