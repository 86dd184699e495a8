package llm

import (
	"context"
	"errors"

	"github.com/juliusphilipponce/menu-miner/internal/menu"
)

// Image is one uploaded menu photo ready for extraction.
type Image struct {
	Name     string
	MimeType string
	Data     []byte
}

// Extractor turns a menu photo into candidate items. Returned items are raw
// and untrusted; the caller validates and sanitizes them.
type Extractor interface {
	ExtractMenu(ctx context.Context, img Image) ([]menu.Item, error)
}

// Guards on the model response, applied before any parsing reaches callers.
var (
	ErrResponseTooLarge = errors.New("response too large")
	ErrInvalidFormat    = errors.New("invalid response format")
	ErrTooManyItems     = errors.New("too many items (max 100)")
)

// MaxItems caps how many items a single extraction may return.
const MaxItems = 100

// MaxResponseSize caps the serialized model output.
const MaxResponseSize = 1000000
