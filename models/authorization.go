package models

// Authorization describes the start of a federation exchange: the provider
// consent URL and the anti-forgery state value bound into it.
type Authorization struct {
	URL   string
	State string
}

// CallbackParams carries the provider's callback query parameters together
// with the state value the transport remembered for this browser.
type CallbackParams struct {
	Code          string
	State         string
	ExpectedState string
	Error         string
}
