package menu

// Item is one dish extracted from a menu photo. Price stays a string on
// purpose: menus mix currencies, ranges and "market price".
type Item struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	ImageURLs   []string `json:"imageUrls,omitempty"`
}

// Field bounds for a valid Item.
const (
	MaxNameLen        = 500
	MaxDescriptionLen = 2000
	MaxPriceLen       = 100
	MaxImageURLs      = 50
	MaxImageURLLen    = 2048
)
