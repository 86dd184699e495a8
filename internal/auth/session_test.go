package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestSessionRoundTrip(t *testing.T) {
	m := NewSessionManager("test-session-secret")

	token, err := m.Issue("owner@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	email, err := m.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if email != "owner@example.com" {
		t.Errorf("email = %q", email)
	}
}

func TestSessionRejectsWrongSecret(t *testing.T) {
	token, err := NewSessionManager("secret-a").Issue("owner@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := NewSessionManager("secret-b").Verify(token); err == nil {
		t.Fatal("token signed with another secret must be rejected")
	}
}

func TestSessionRejectsExpiredToken(t *testing.T) {
	m := NewSessionManager("test-session-secret")
	m.ttl = -time.Minute

	token, err := m.Issue("owner@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := m.Verify(token); err == nil {
		t.Fatal("expired token must be rejected")
	}
}

func TestSessionRejectsGarbage(t *testing.T) {
	m := NewSessionManager("test-session-secret")

	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := m.Verify(tok); err == nil {
			t.Errorf("expected %q to be rejected", tok)
		}
	}
}

func TestSessionRejectsUnsignedAlgorithm(t *testing.T) {
	m := NewSessionManager("test-session-secret")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"email": "owner@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := m.Verify(token); err == nil {
		t.Fatal("alg=none token must be rejected")
	}
}

func TestIssueRequiresEmail(t *testing.T) {
	m := NewSessionManager("test-session-secret")
	if _, err := m.Issue(""); err == nil {
		t.Fatal("expected error for empty email")
	}
}
