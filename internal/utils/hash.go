package utils

import (
	"encoding/hex"
	"hash"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// Hasher computes keyed BLAKE2b-256 digests. Session identifiers are stored
// only in this form, so a leaked sessions table cannot be replayed without
// the key.
//
// Hash instances are pooled; a Hasher is safe for concurrent use.
type Hasher struct {
	pool sync.Pool
}

// NewHasher builds a Hasher keyed by secret. BLAKE2b accepts keys of at most
// 64 bytes, so the secret is first condensed into a 32-byte key.
//
// Example usage:
//
//	hasher := utils.NewHasher("my-secret-key")
//	digest := hasher.HashString("session-id")
func NewHasher(secret string) *Hasher {
	key := blake2b.Sum256([]byte(secret))

	h := &Hasher{}
	h.pool.New = func() any {
		// the error is only returned for keys longer than 64 bytes
		mac, _ := blake2b.New256(key[:])
		return mac
	}

	return h
}

// Hash returns the keyed digest of data.
func (h *Hasher) Hash(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// HashString returns the hex-encoded keyed digest of s.
func (h *Hasher) HashString(s string) string {
	return hex.EncodeToString(h.Hash([]byte(s)))
}
