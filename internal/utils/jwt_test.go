package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

func testSession(issued time.Time) models.Session {
	return models.Session{
		ID:         "3f0c1a6e-2b1d-4f55-9a77-6d2f8f5e2c11",
		IdentityID: 123,
		IssuedAt:   issued,
		ExpiresAt:  issued.Add(24 * time.Hour),
	}
}

func TestGenerateSessionToken_RoundTrip(t *testing.T) {
	issued := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	session := testSession(issued)

	token, err := GenerateSessionToken(session, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	parsed, err := ParseSessionToken(token, "secret-key", issued.Add(time.Hour))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.ID != session.ID {
		t.Errorf("expected session id %s, got %s", session.ID, parsed.ID)
	}
	if parsed.IdentityID != 123 {
		t.Errorf("expected identity id 123, got %d", parsed.IdentityID)
	}
	if !parsed.ExpiresAt.Equal(session.ExpiresAt) {
		t.Errorf("expected expiry %v, got %v", session.ExpiresAt, parsed.ExpiresAt)
	}
	if parsed.Token != token {
		t.Error("expected parsed session to carry the raw token")
	}
}

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	issued := time.Now()

	tests := []struct {
		name    string
		session models.Session
		key     string
	}{
		{"empty session id", models.Session{IssuedAt: issued, ExpiresAt: issued.Add(time.Hour)}, "key"},
		{"empty key", testSession(issued), ""},
		{"expiry before issuance", models.Session{ID: "x", IssuedAt: issued, ExpiresAt: issued.Add(-time.Hour)}, "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateSessionToken(tt.session, tt.key); err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestParseSessionToken_Expired(t *testing.T) {
	issued := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	token, err := GenerateSessionToken(testSession(issued), "secret-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = ParseSessionToken(token, "secret-key", issued.Add(25*time.Hour))
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got: %v", err)
	}
}

func TestParseSessionToken_WrongKey(t *testing.T) {
	issued := time.Now()
	token, err := GenerateSessionToken(testSession(issued), "secret-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = ParseSessionToken(token, "other-key", issued)
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected ErrTokenSignatureInvalid, got: %v", err)
	}
}

func TestParseSessionToken_Garbage(t *testing.T) {
	if _, err := ParseSessionToken("not-a-token", "secret-key", time.Now()); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestParseSessionToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    SessionTokenIssuer,
		ID:        "sid",
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret-key"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err = ParseSessionToken(token, "secret-key", time.Now()); err == nil {
		t.Error("expected HS512 token to be rejected")
	}
}

func TestParseSessionToken_NonNumericSubject(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    SessionTokenIssuer,
		ID:        "sid",
		Subject:   "abc",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret-key"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err = ParseSessionToken(token, "secret-key", time.Now()); err == nil {
		t.Error("expected error for non-numeric subject")
	}
}
