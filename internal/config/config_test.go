package config

import (
	"strings"
	"testing"
)

func setAll(t *testing.T) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "AIzaSyTest1234567890abcdef")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-flash")
	t.Setenv("GOOGLE_SEARCH_API_KEY", "AIzaSySearch1234567890abcdef")
	t.Setenv("GOOGLE_SEARCH_CX", "0123456789abcdef0")
	t.Setenv("GOOGLE_CLIENT_ID", "client-id.apps.googleusercontent.com")
	t.Setenv("ALLOWED_EMAIL", "Owner@Example.com ")
	t.Setenv("SESSION_SECRET", "test-session-secret")
	t.Setenv("PORT", "")
}

func TestLoadSuccess(t *testing.T) {
	setAll(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AllowedEmail != "owner@example.com" {
		t.Errorf("allowed email not normalized: %q", cfg.AllowedEmail)
	}
	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %q", cfg.Port)
	}
}

func TestLoadEnumeratesAllMissingKeys(t *testing.T) {
	setAll(t)
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("ALLOWED_EMAIL", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing keys")
	}

	msg := err.Error()
	if !strings.Contains(msg, "GEMINI_API_KEY") || !strings.Contains(msg, "ALLOWED_EMAIL") {
		t.Errorf("error should name every missing key, got %q", msg)
	}
}

func TestLoadRejectsMalformedAPIKey(t *testing.T) {
	setAll(t)
	t.Setenv("GEMINI_API_KEY", "short")

	if _, err := Load(); err == nil {
		t.Fatal("expected malformed API key to be rejected")
	}
}
