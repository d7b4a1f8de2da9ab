package models

import (
	"fmt"
	"time"
)

// Role is the account category. It is part of account identity: the same
// identifier can register once per role.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// ParseRole validates a caller-supplied role string against the closed enum.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent:
		return RoleStudent, nil
	case RoleTeacher:
		return RoleTeacher, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Account is a persisted credential record. The plaintext identifier is
// never stored: IdentifierLookup is a deterministic keyed digest used as
// the store key, IdentifierHash and SecretHash are independent salted
// hashes verified on login.
type Account struct {
	ID               string
	IdentifierLookup string
	IdentifierHash   string
	SecretHash       string
	Role             Role
	CreatedAt        time.Time
}
