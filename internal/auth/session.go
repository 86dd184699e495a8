package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionTTL bounds how long a sign-in stays valid before the client must
// re-authenticate with Google.
const SessionTTL = time.Hour

var ErrInvalidSession = errors.New("invalid session token")

// SessionManager issues and verifies the short-lived HS256 session tokens
// that replace any client-held authenticated flag.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionManager(secret string) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		ttl:    SessionTTL,
	}
}

// Issue creates a session token for an authenticated email.
func (m *SessionManager) Issue(email string) (string, error) {
	if email == "" {
		return "", errors.New("empty email passed to Issue")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(m.ttl).Unix(),
		"jti":   uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify checks signature and expiry and returns the session's email.
func (m *SessionManager) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidSession
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return "", ErrInvalidSession
	}

	return email, nil
}
