package imagesearch

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/juliusphilipponce/menu-miner/internal/menu"
	"github.com/juliusphilipponce/menu-miner/internal/security"
)

// enrichConcurrency bounds parallel Custom Search requests per batch.
const enrichConcurrency = 5

// EnrichAll attaches image URLs to every item. Items are enriched
// independently: a failed search leaves that one item without images and
// never aborts the batch. The returned slice preserves input order.
func EnrichAll(ctx context.Context, searcher Searcher, items []menu.Item, restaurantName string, numImages int) ([]menu.Item, error) {
	if len(items) > MaxBatchItems {
		return nil, ErrTooManyItems
	}

	restaurant := security.SanitizeText(restaurantName)
	if restaurant == "" {
		return nil, ErrInvalidRestaurantName
	}

	n := ClampImageCount(numImages)

	enriched := make([]menu.Item, len(items))
	copy(enriched, items)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)

	for i := range enriched {
		i := i
		g.Go(func() error {
			urls, err := searcher.Search(ctx, enriched[i].Name, restaurant, n)
			if err != nil {
				log.Printf("image search failed for %q: %v", enriched[i].Name, err)
				return nil
			}
			enriched[i].ImageURLs = urls
			return nil
		})
	}

	// Goroutines never return errors; Wait only synchronizes.
	_ = g.Wait()

	return enriched, nil
}
