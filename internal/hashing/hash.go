// Package hashing wraps the credential-hashing primitives used by the
// account service: a salted, adaptive one-way hash for storage and a
// deterministic keyed digest for store lookups.
package hashing

import (
	"fmt"

	"github.com/dmitrijs2005/eduauth/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the work factor used when none is configured. Raising the
// configured cost later does not invalidate stored hashes: every bcrypt
// token carries its own cost and salt.
const DefaultCost = bcrypt.DefaultCost

// Hasher produces and verifies salted bcrypt hashes with a fixed,
// configured work factor. It is immutable after construction and safe for
// concurrent use.
type Hasher struct {
	cost int
}

// NewHasher constructs a Hasher. A cost outside the range bcrypt accepts
// is an error; pass DefaultCost when in doubt.
func NewHasher(cost int) (*Hasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("hashing: cost %d out of range [%d, %d]: %w",
			cost, bcrypt.MinCost, bcrypt.MaxCost, common.ErrorValidation)
	}
	return &Hasher{cost: cost}, nil
}

// Cost returns the configured work factor.
func (h *Hasher) Cost() int { return h.cost }

// Hash hashes plaintext with a fresh random salt and returns the
// self-describing token ("$2a$10$..."), which embeds algorithm, cost and
// salt. Two calls on the same input produce different tokens.
//
// Empty input is rejected with common.ErrorValidation.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", fmt.Errorf("hashing: empty input: %w", common.ErrorValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored token. It recomputes
// the hash with the salt and cost embedded in storedHash and compares
// digests.
//
// Verify never returns an error: empty input, a malformed stored token and
// a legitimate mismatch are all reported as false, so callers cannot tell
// which of the three occurred.
func (h *Hasher) Verify(plaintext, storedHash string) bool {
	if plaintext == "" || storedHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext)) == nil
}
