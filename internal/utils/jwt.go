package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// SessionTokenIssuer is the "iss" claim of every session token.
const SessionTokenIssuer = "go-notes-keeper"

// GenerateSessionToken creates a signed HMAC-SHA256 JWT carrying a session.
//
// The token includes the following standard claims:
//   - Issuer    (iss): [SessionTokenIssuer]
//   - ID        (jti): the random session ID
//   - Subject   (sub): the identity storage key encoded as a string
//   - IssuedAt  (iat) and ExpiresAt (exp) taken from the session
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken(session, "secret")
func GenerateSessionToken(session models.Session, signKey string) (string, error) {
	if session.ID == "" || signKey == "" || !session.ExpiresAt.After(session.IssuedAt) {
		return "", errors.New("invalid params for generating session token")
	}

	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    SessionTokenIssuer,
			ID:        session.ID,
			Subject:   strconv.FormatInt(session.IdentityID, 10),
			IssuedAt:  jwt.NewNumericDate(session.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return tokenString, nil
}

// ParseSessionToken verifies the signature, issuer and expiry of a session
// token against the clock reading now and returns the session it carries.
// Only the ID and IdentityID fields of the result are populated from claims
// together with IssuedAt and ExpiresAt.
func ParseSessionToken(tokenString, signKey string, now time.Time) (models.Session, error) {
	claims := &models.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(SessionTokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.ID == "" {
		return models.Session{}, errors.New("empty session id error")
	}
	if claims.Subject == "" {
		return models.Session{}, errors.New("empty subject error")
	}

	identityID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred during converting subject to identity id: %w", err)
	}

	session := models.Session{
		ID:         claims.ID,
		Token:      tokenString,
		IdentityID: identityID,
		ExpiresAt:  claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}

	return session, nil
}
