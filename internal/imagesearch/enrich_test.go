package imagesearch

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/juliusphilipponce/menu-miner/internal/menu"
)

// scriptedSearcher fails for item names in failFor and otherwise returns
// one URL derived from the item name.
type scriptedSearcher struct {
	failFor map[string]bool
}

func (s *scriptedSearcher) Search(ctx context.Context, itemName, restaurantName string, numImages int) ([]string, error) {
	if s.failFor[itemName] {
		return nil, errors.New("search blew up")
	}
	return []string{"https://example.com/" + itemName + ".jpg"}, nil
}

func TestEnrichAllIsolatesFailures(t *testing.T) {
	items := []menu.Item{
		{Name: "Burger", Price: "$9"},
		{Name: "Fries", Price: "$3"},
		{Name: "Shake", Price: "$6"},
	}
	searcher := &scriptedSearcher{failFor: map[string]bool{"Fries": true}}

	out, err := EnrichAll(context.Background(), searcher, items, "Test Cafe", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 3 {
		t.Fatalf("expected all 3 items back, got %d", len(out))
	}

	if len(out[0].ImageURLs) != 1 || len(out[2].ImageURLs) != 1 {
		t.Errorf("items 1 and 3 should have images: %+v", out)
	}
	if out[1].ImageURLs != nil {
		t.Errorf("failed item should have no images, got %v", out[1].ImageURLs)
	}
}

func TestEnrichAllPreservesOrder(t *testing.T) {
	var items []menu.Item
	for i := 0; i < 20; i++ {
		items = append(items, menu.Item{Name: "item" + strconv.Itoa(i), Price: "$1"})
	}

	out, err := EnrichAll(context.Background(), &scriptedSearcher{}, items, "Cafe", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, item := range out {
		want := "item" + strconv.Itoa(i)
		if item.Name != want {
			t.Fatalf("order broken at %d: got %q", i, item.Name)
		}
		if len(item.ImageURLs) != 1 || item.ImageURLs[0] != "https://example.com/"+want+".jpg" {
			t.Errorf("item %d got wrong urls: %v", i, item.ImageURLs)
		}
	}
}

func TestEnrichAllBatchGuards(t *testing.T) {
	big := make([]menu.Item, MaxBatchItems+1)
	if _, err := EnrichAll(context.Background(), &scriptedSearcher{}, big, "Cafe", 3); err != ErrTooManyItems {
		t.Errorf("oversized batch: got %v, want ErrTooManyItems", err)
	}

	items := []menu.Item{{Name: "Burger", Price: "$9"}}
	if _, err := EnrichAll(context.Background(), &scriptedSearcher{}, items, "<>", 3); err != ErrInvalidRestaurantName {
		t.Errorf("empty restaurant: got %v, want ErrInvalidRestaurantName", err)
	}
}
