package menu

import (
	"github.com/juliusphilipponce/menu-miner/internal/security"
)

// ValidateItem reports whether an item is structurally safe to surface.
// Any violation rejects the whole item; there is no partial repair.
func ValidateItem(item Item) bool {
	if item.Name == "" || len(item.Name) > MaxNameLen {
		return false
	}

	if item.Price == "" || len(item.Price) > MaxPriceLen {
		return false
	}

	if len(item.Description) > MaxDescriptionLen {
		return false
	}

	if len(item.ImageURLs) > MaxImageURLs {
		return false
	}

	for _, u := range item.ImageURLs {
		if len(u) > MaxImageURLLen {
			return false
		}
		if err := security.ValidateImageURL(u); err != nil {
			return false
		}
	}

	return true
}

// SanitizeItem rebuilds an item with every text field sanitized and the
// image list capped. Applied even to items that already validated, so a
// single bypass cannot smuggle unsafe content into a render path.
func SanitizeItem(item Item) Item {
	urls := item.ImageURLs
	if len(urls) > MaxImageURLs {
		urls = urls[:MaxImageURLs]
	}

	return Item{
		Name:        security.SanitizeText(item.Name),
		Description: security.SanitizeText(item.Description),
		Price:       security.SanitizeText(item.Price),
		ImageURLs:   urls,
	}
}

// FilterAndSanitize validates then sanitizes a batch, dropping items that
// fail validation and preserving input order.
func FilterAndSanitize(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if !ValidateItem(item) {
			continue
		}
		out = append(out, SanitizeItem(item))
	}
	return out
}
