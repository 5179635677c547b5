package utils

import "github.com/google/uuid"

// UUIDGenerator issues random version 4 UUIDs. Session ids and OAuth2 state
// values both come from it, so they must stay unguessable.
type UUIDGenerator func() string

func NewUUIDGenerator() UUIDGenerator {
	return uuid.NewString
}

// Generate returns a fresh identifier.
func (g UUIDGenerator) Generate() string {
	return g()
}
