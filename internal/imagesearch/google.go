package imagesearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/juliusphilipponce/menu-miner/internal/security"
)

const defaultSearchBaseURL = "https://www.googleapis.com"

// Search results are cached briefly so re-scans of the same menu do not
// burn Custom Search quota.
const (
	cacheTTL     = 15 * time.Minute
	cacheCleanup = 30 * time.Minute
)

// GoogleClient queries the Google Custom Search API for photographic,
// large, color images.
type GoogleClient struct {
	apiKey  string
	cx      string
	baseURL string
	client  *http.Client
	cache   *gocache.Cache
}

func NewGoogleClient(apiKey, cx string) *GoogleClient {
	return &GoogleClient{
		apiKey:  apiKey,
		cx:      cx,
		baseURL: defaultSearchBaseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		cache:   gocache.New(cacheTTL, cacheCleanup),
	}
}

// Search returns up to numImages safe image URLs for the item. Names are
// sanitized again here even though callers already did; this client must be
// safe to call with untrusted input.
func (g *GoogleClient) Search(ctx context.Context, itemName, restaurantName string, numImages int) ([]string, error) {
	if g.apiKey == "" || g.cx == "" {
		return nil, errors.New("missing Google Search API credentials")
	}

	item := security.SanitizeText(itemName)
	restaurant := security.SanitizeText(restaurantName)
	if item == "" || restaurant == "" {
		return nil, errors.New("invalid item name or restaurant name")
	}

	n := ClampImageCount(numImages)

	query := fmt.Sprintf("%s %s food", restaurant, item)
	cacheKey := query + "|" + strconv.Itoa(n)

	if cached, ok := g.cache.Get(cacheKey); ok {
		return cached.([]string), nil
	}

	params := url.Values{}
	params.Set("key", g.apiKey)
	params.Set("cx", g.cx)
	params.Set("q", query)
	params.Set("searchType", "image")
	params.Set("num", strconv.Itoa(n))
	params.Set("imgType", "photo")
	params.Set("imgSize", "large")
	params.Set("imgColorType", "color")

	reqURL := g.baseURL + "/customsearch/v1?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrQuotaExceeded
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search api error (status %d)", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var result struct {
		Items []struct {
			Link string `json:"link"`
		} `json:"items"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, errors.New("invalid API response")
	}

	urls := make([]string, 0, n)
	for _, it := range result.Items {
		if security.ValidateImageURL(it.Link) != nil {
			continue
		}
		urls = append(urls, it.Link)
		if len(urls) == n {
			break
		}
	}

	g.cache.Set(cacheKey, urls, gocache.DefaultExpiration)

	return urls, nil
}
