// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

// fakeGoogle поднимает тестовый сервер с token и userinfo эндпоинтами
func fakeGoogle(t *testing.T, userInfo http.HandlerFunc) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("code") != "good-code" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"access-123","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", userInfo)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestProvider(srv *httptest.Server) *googleIdentityProvider {
	oauthCfg := &oauth2.Config{
		ClientID:     "client",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:5000/auth/google/home",
		Endpoint: oauth2.Endpoint{
			AuthURL:   srv.URL + "/auth",
			TokenURL:  srv.URL + "/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
		Scopes: googleScopes,
	}
	return newIdentityProvider(oauthCfg, srv.URL+"/userinfo", 5*time.Second, logger.Nop())
}

func TestAuthorizeURL_GoogleEndpoint(t *testing.T) {
	p := NewGoogleIdentityProvider(config.OAuth{
		ClientID:     "client-id",
		ClientSecret: "secret",
		CallbackURL:  "https://api.example.com/auth/google/home",
	}, time.Second, logger.Nop())

	raw := p.AuthorizeURL("state-xyz")
	u, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "accounts.google.com", u.Host)
	q := u.Query()
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "state-xyz", q.Get("state"))
	assert.Equal(t, "https://api.example.com/auth/google/home", q.Get("redirect_uri"))
	assert.Equal(t, "profile email", q.Get("scope"))
	assert.Equal(t, "code", q.Get("response_type"))
}

func TestExchangeCallback_Success(t *testing.T) {
	srv := fakeGoogle(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1098","email":"ada@example.com","name":"Ada","picture":"https://example.com/a.png"}`))
	})

	profile, err := newTestProvider(srv).ExchangeCallback(context.Background(), "good-code")
	require.NoError(t, err)
	assert.Equal(t, "1098", profile.ExternalID)
	assert.Equal(t, "ada@example.com", profile.Email)
	assert.Equal(t, "Ada", profile.DisplayName)
	assert.Equal(t, "https://example.com/a.png", profile.AvatarURL)
}

func TestExchangeCallback_BadCode(t *testing.T) {
	srv := fakeGoogle(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("userinfo must not be called after a failed exchange")
	})

	_, err := newTestProvider(srv).ExchangeCallback(context.Background(), "bad-code")
	assert.ErrorIs(t, err, ErrProviderExchange)
}

func TestExchangeCallback_ProfileRejected(t *testing.T) {
	srv := fakeGoogle(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_request","error_description":"Invalid Credentials"}`))
	})

	_, err := newTestProvider(srv).ExchangeCallback(context.Background(), "good-code")
	assert.ErrorIs(t, err, ErrProviderProfile)
	assert.ErrorIs(t, err, ErrTokenRejected)
	assert.ErrorContains(t, err, "invalid_request: Invalid Credentials")
}

func TestExchangeCallback_ProviderDown(t *testing.T) {
	srv := fakeGoogle(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := newTestProvider(srv).ExchangeCallback(context.Background(), "good-code")
	assert.ErrorIs(t, err, ErrProviderProfile)
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}
