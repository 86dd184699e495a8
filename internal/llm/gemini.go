package llm

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/juliusphilipponce/menu-miner/internal/menu"
	"github.com/juliusphilipponce/menu-miner/internal/security"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// GeminiClient calls the Gemini generateContent endpoint with an inline
// image and a schema-constrained prompt.
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewGeminiClient(apiKey, model string) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultGeminiBaseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// ExtractMenu validates the image locally, submits it to Gemini and returns
// the raw candidate items after the response-shape guards.
func (g *GeminiClient) ExtractMenu(ctx context.Context, img Image) ([]menu.Item, error) {
	if g.apiKey == "" {
		return nil, errors.New("missing Gemini API key")
	}
	if g.model == "" {
		return nil, errors.New("missing Gemini model")
	}

	// Reject bad uploads before spending any network or quota.
	err := security.ValidateImageFile(security.FileInfo{
		Name:     img.Name,
		Size:     int64(len(img.Data)),
		MimeType: img.MimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid image file: %w", err)
	}

	url := fmt.Sprintf(
		"%s/v1beta/models/%s:generateContent?key=%s",
		g.baseURL,
		g.model,
		g.apiKey,
	)

	payload := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]any{
					{
						"inline_data": map[string]string{
							"mime_type": img.MimeType,
							"data":      base64.StdEncoding.EncodeToString(img.Data),
						},
					},
					{"text": extractionPrompt},
				},
			},
		},
		"generationConfig": map[string]any{
			"temperature":      0.2,
			"responseMimeType": "application/json",
			"responseSchema":   menuSchema,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		url,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini api error (status %d)", resp.StatusCode)
	}

	// Gemini response shape
	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}

	if len(result.Candidates) == 0 ||
		len(result.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("empty gemini response")
	}

	text := strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text)

	return ParseItems(text)
}
