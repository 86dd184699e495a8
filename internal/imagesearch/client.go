package imagesearch

import (
	"context"
	"errors"
)

// Searcher finds candidate photo URLs for one menu item.
type Searcher interface {
	Search(ctx context.Context, itemName, restaurantName string, numImages int) ([]string, error)
}

var (
	ErrQuotaExceeded         = errors.New("API quota exceeded. Please try again later.")
	ErrTooManyItems          = errors.New("too many items to process (maximum 100)")
	ErrInvalidRestaurantName = errors.New("invalid restaurant name")
)

// Bounds on a single search and on a batch.
const (
	MinImages     = 1
	MaxImages     = 10
	MaxBatchItems = 100
	MaxNameLen    = 200
)

// ClampImageCount forces a requested image count into [MinImages, MaxImages].
// Zero or negative requests fall back to the maximum, matching the client
// default.
func ClampImageCount(n int) int {
	if n <= 0 {
		return MaxImages
	}
	if n < MinImages {
		return MinImages
	}
	if n > MaxImages {
		return MaxImages
	}
	return n
}
