package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// providerError is the error body Google returns from its OAuth2 endpoints.
type providerError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// checkProfileResponse turns a non-2xx userinfo response into one of the
// provider sentinel errors, keeping the provider's own description.
func checkProfileResponse(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	reason := describeProviderError(resp.Body())
	if reason == "" {
		reason = http.StatusText(status)
	}

	switch {
	case status == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrTokenRejected, reason)
	case status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrAccessDenied, reason)
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, reason)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d: %s", ErrProviderUnavailable, status, reason)
	default:
		return fmt.Errorf("unexpected userinfo status %d: %s", status, reason)
	}
}

func describeProviderError(body []byte) string {
	var pe providerError
	if err := json.Unmarshal(body, &pe); err == nil && pe.Error != "" {
		if pe.ErrorDescription != "" {
			return pe.Error + ": " + pe.ErrorDescription
		}
		return pe.Error
	}

	return strings.TrimSpace(string(body))
}
