package auth

import (
	"context"
	"errors"
	"strings"
)

// Verification failures. Handlers must collapse these to a uniform
// "not authorized" response; the distinct values exist for server-side
// logging only, so a caller cannot enumerate which check failed.
var (
	ErrMissingField     = errors.New("email and Google token are required")
	ErrInvalidToken     = errors.New("token verification failed")
	ErrAudienceMismatch = errors.New("token audience mismatch")
	ErrEmailMismatch    = errors.New("token email mismatch")
	ErrEmailNotVerified = errors.New("email not verified by Google")
	ErrNotAuthorized    = errors.New("email is not on the allow list")
)

// Service gates access behind Google token verification and a single
// allow-listed email.
type Service struct {
	verifier     TokenVerifier
	clientID     string
	allowedEmail string
	sessions     *SessionManager
}

func NewService(verifier TokenVerifier, clientID, allowedEmail string, sessions *SessionManager) *Service {
	return &Service{
		verifier:     verifier,
		clientID:     clientID,
		allowedEmail: normalizeEmail(allowedEmail),
		sessions:     sessions,
	}
}

// Authenticate runs the full gate and, on success, issues a short-lived
// session token that privileged routes re-verify on every request.
func (s *Service) Authenticate(ctx context.Context, email, googleToken string) (string, error) {
	if email == "" || googleToken == "" {
		return "", ErrMissingField
	}

	info, err := s.verifier.Verify(ctx, googleToken)
	if err != nil {
		return "", ErrInvalidToken
	}

	if info.Aud != s.clientID {
		return "", ErrAudienceMismatch
	}

	if !strings.EqualFold(info.Email, email) {
		return "", ErrEmailMismatch
	}

	if info.EmailVerified != "true" {
		return "", ErrEmailNotVerified
	}

	if normalizeEmail(email) != s.allowedEmail {
		return "", ErrNotAuthorized
	}

	return s.sessions.Issue(normalizeEmail(email))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
