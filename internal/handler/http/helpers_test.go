package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	testFrontendOrigin  = "https://notes.example.com"
	testFailureRedirect = "https://notes.example.com/login-failed"
)

var testAppConfig = config.App{
	SessionSecret:     "secret",
	SessionCookieName: "notes_session",
	FrontendOrigin:    testFrontendOrigin,
	FailureRedirect:   testFailureRedirect,
	Version:           "1.2.3",
}

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

// fakeFederationService implements service.FederationService for unit tests.
// Each method field can be overridden per test case.
type fakeFederationService struct {
	beginFn    func(ctx context.Context) (models.Authorization, error)
	completeFn func(ctx context.Context, params models.CallbackParams) (models.Session, error)
}

func (f *fakeFederationService) BeginAuthorization(ctx context.Context) (models.Authorization, error) {
	return f.beginFn(ctx)
}

func (f *fakeFederationService) CompleteAuthorization(ctx context.Context, params models.CallbackParams) (models.Session, error) {
	return f.completeFn(ctx, params)
}

// fakeSessionService implements service.SessionService for unit tests.
type fakeSessionService struct {
	establishFn func(ctx context.Context, identity models.Identity) (models.Session, error)
	resolveFn   func(ctx context.Context, token string) (models.Identity, error)
	terminateFn func(ctx context.Context, token string) (bool, error)
}

func (f *fakeSessionService) Establish(ctx context.Context, identity models.Identity) (models.Session, error) {
	return f.establishFn(ctx, identity)
}

func (f *fakeSessionService) Resolve(ctx context.Context, token string) (models.Identity, error) {
	if f.resolveFn == nil {
		return models.Identity{}, service.ErrUnauthenticated
	}
	return f.resolveFn(ctx, token)
}

func (f *fakeSessionService) Terminate(ctx context.Context, token string) (bool, error) {
	return f.terminateFn(ctx, token)
}

// fakeAppInfoService implements service.AppInfoService for testing.
type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string {
	return f.version
}

// resolvesTo returns a resolveFn accepting exactly one token.
func resolvesTo(token string, identity models.Identity) func(context.Context, string) (models.Identity, error) {
	return func(_ context.Context, got string) (models.Identity, error) {
		if got != token {
			return models.Identity{}, service.ErrUnauthenticated
		}
		return identity, nil
	}
}

func newTestHandler(services *service.Services) *Handler {
	if services.AppInfoService == nil {
		services.AppInfoService = &fakeAppInfoService{version: testAppConfig.Version}
	}
	if services.SessionService == nil {
		services.SessionService = &fakeSessionService{}
	}
	return NewHandler(services, testAppConfig, nil, logger.Nop())
}

// serve прогоняет запрос через полностью собранный роутер
func serve(t *testing.T, h *Handler, method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func sessionCookie(token string) *http.Cookie {
	return &http.Cookie{Name: testAppConfig.SessionCookieName, Value: token}
}

func findCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
