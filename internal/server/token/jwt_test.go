package token

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/eduauth/internal/server/models"
)

func TestIssueAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	issuer := NewJWTIssuer(secret, time.Hour)

	tok, err := issuer.Issue("account-123", models.RoleStudent)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	gotID, err := AccountIDFromToken(tok, secret)
	if err != nil {
		t.Fatalf("AccountIDFromToken error: %v", err)
	}
	if gotID != "account-123" {
		t.Fatalf("account id mismatch: got %q want %q", gotID, "account-123")
	}
}

func TestAccountIDFromToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	issuer := NewJWTIssuer(secret, -1*time.Second)

	tok, err := issuer.Issue("a1", models.RoleTeacher)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err = AccountIDFromToken(tok, secret); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestAccountIDFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewJWTIssuer([]byte("right-secret"), time.Hour)
	tok, err := issuer.Issue("a2", models.RoleStudent)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err = AccountIDFromToken(tok, []byte("wrong-secret")); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestAccountIDFromToken_MalformedString(t *testing.T) {
	t.Parallel()

	if _, err := AccountIDFromToken("not.a.jwt", []byte("k")); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

func TestPlaceholderIssuer(t *testing.T) {
	t.Parallel()

	tok, err := PlaceholderIssuer{}.Issue("a3", models.RoleStudent)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if tok == "" {
		t.Fatal("placeholder token must not be empty")
	}
}
