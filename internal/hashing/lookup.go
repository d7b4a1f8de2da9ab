package hashing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/dmitrijs2005/eduauth/internal/common"
)

// LookupKey derives deterministic digests of plaintext identifiers for use
// as an equality-comparable store key. A salted hash cannot serve as an
// index (two hashes of the same plaintext differ), so the store keys rows
// by this keyed digest instead of the plaintext identifier; the salted
// hash is still stored and verified separately.
//
// The key is server-held configuration. Anyone without it cannot
// precompute digests for a dictionary of identifiers.
type LookupKey struct {
	key []byte
}

// NewLookupKey wraps the configured key. An empty key is rejected.
func NewLookupKey(key []byte) (*LookupKey, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("hashing: empty lookup key: %w", common.ErrorValidation)
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &LookupKey{key: k}, nil
}

// Digest returns the hex-encoded HMAC-SHA256 of plaintext under the
// configured key. Equal inputs always produce equal digests.
func (l *LookupKey) Digest(plaintext string) string {
	mac := hmac.New(sha256.New, l.key)
	mac.Write([]byte(plaintext))
	return hex.EncodeToString(mac.Sum(nil))
}
