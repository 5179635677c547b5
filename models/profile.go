package models

// Profile is the verified user profile returned by the identity provider
// after a successful authorization-code exchange.
type Profile struct {
	ExternalID  string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"name"`
	AvatarURL   string `json:"picture"`
}

// IsComplete reports whether the profile carries every field required to
// create an Identity. AvatarURL is optional.
func (p Profile) IsComplete() bool {
	return p.ExternalID != "" && p.Email != "" && p.DisplayName != ""
}
