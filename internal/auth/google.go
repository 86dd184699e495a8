package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultTokenInfoBaseURL = "https://oauth2.googleapis.com"

// TokenInfo is the subset of Google's tokeninfo response the gate needs.
// tokeninfo serializes booleans as strings.
type TokenInfo struct {
	Aud           string `json:"aud"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
}

// TokenVerifier resolves a Google id-token to its claims, or fails if the
// provider rejects it.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*TokenInfo, error)
}

// ErrTokenRejected means Google itself refused the token.
var ErrTokenRejected = errors.New("invalid Google token")

// GoogleVerifier checks tokens against Google's introspection endpoint.
type GoogleVerifier struct {
	baseURL string
	client  *http.Client
}

func NewGoogleVerifier() *GoogleVerifier {
	return &GoogleVerifier{
		baseURL: defaultTokenInfoBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *GoogleVerifier) Verify(ctx context.Context, idToken string) (*TokenInfo, error) {
	reqURL := fmt.Sprintf(
		"%s/tokeninfo?id_token=%s",
		g.baseURL,
		url.QueryEscape(idToken),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrTokenRejected
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var info TokenInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, err
	}

	return &info, nil
}
