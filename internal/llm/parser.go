package llm

import (
	"encoding/json"
	"strings"

	"github.com/juliusphilipponce/menu-miner/internal/menu"
)

// ParseItems applies the response guards and decodes the model output into
// raw menu items.
func ParseItems(text string) ([]menu.Item, error) {
	if len(text) > MaxResponseSize {
		return nil, ErrResponseTooLarge
	}

	// The schema asks for an array; anything else is a malformed response.
	if !strings.HasPrefix(text, "[") {
		return nil, ErrInvalidFormat
	}

	var items []menu.Item
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, ErrInvalidFormat
	}

	if len(items) > MaxItems {
		return nil, ErrTooManyItems
	}

	return items, nil
}
