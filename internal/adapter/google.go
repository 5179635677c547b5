package adapter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// DefaultUserInfoURL is Google's OAuth2 v2 userinfo endpoint.
const DefaultUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// googleScopes grant access to the basic profile and the e-mail address.
var googleScopes = []string{"profile", "email"}

type googleIdentityProvider struct {
	oauth       *oauth2.Config
	httpClient  *http.Client
	client      *resty.Client
	userInfoURL string

	logger *logger.Logger
}

// NewGoogleIdentityProvider constructs an [IdentityProvider] for Google using
// the client registration in cfg. timeout bounds every outgoing request.
func NewGoogleIdentityProvider(cfg config.OAuth, timeout time.Duration, logger *logger.Logger) IdentityProvider {
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.CallbackURL,
		Endpoint:     google.Endpoint,
		Scopes:       googleScopes,
	}

	userInfoURL := cfg.UserInfoURL
	if userInfoURL == "" {
		userInfoURL = DefaultUserInfoURL
	}

	return newIdentityProvider(oauthCfg, userInfoURL, timeout, logger)
}

func newIdentityProvider(oauthCfg *oauth2.Config, userInfoURL string, timeout time.Duration, logger *logger.Logger) *googleIdentityProvider {
	httpClient := &http.Client{Timeout: timeout}

	return &googleIdentityProvider{
		oauth:       oauthCfg,
		httpClient:  httpClient,
		client:      resty.NewWithClient(httpClient),
		userInfoURL: userInfoURL,
		logger:      logger,
	}
}

// AuthorizeURL implements [IdentityProvider].
func (p *googleIdentityProvider) AuthorizeURL(state string) string {
	return p.oauth.AuthCodeURL(state)
}

// ExchangeCallback implements [IdentityProvider]. The code is exchanged at the
// token endpoint, then the userinfo endpoint is queried with the resulting
// bearer token.
func (p *googleIdentityProvider) ExchangeCallback(ctx context.Context, code string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	token, err := p.oauth.Exchange(context.WithValue(ctx, oauth2.HTTPClient, p.httpClient), code)
	if err != nil {
		log.Err(err).Str("func", "*googleIdentityProvider.ExchangeCallback").Msg("error exchanging authorization code")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrProviderExchange, err)
	}

	var profile models.Profile
	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(token.AccessToken).
		SetHeader("Accept", "application/json").
		SetResult(&profile).
		Get(p.userInfoURL)
	if err != nil {
		log.Err(err).Str("func", "*googleIdentityProvider.ExchangeCallback").Msg("error requesting profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrProviderProfile, err)
	}
	if err = checkProfileResponse(resp); err != nil {
		log.Err(err).Str("func", "*googleIdentityProvider.ExchangeCallback").Msg("profile request rejected")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrProviderProfile, err)
	}

	log.Debug().Str("external_id", profile.ExternalID).Msg("profile received from provider")
	return profile, nil
}
