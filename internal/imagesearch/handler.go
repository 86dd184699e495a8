package imagesearch

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler exposes the image search proxy.
type Handler struct {
	searcher Searcher
}

func NewHandler(searcher Searcher) *Handler {
	return &Handler{searcher: searcher}
}

type searchRequest struct {
	ItemName       string `json:"itemName"`
	RestaurantName string `json:"restaurantName"`
	NumImages      int    `json:"numImages"`
}

// SearchImages handles POST /api/search-images.
func (h *Handler) SearchImages(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.ItemName == "" || req.RestaurantName == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "missing required fields: itemName and restaurantName",
		})
		return
	}

	if len(req.ItemName) > MaxNameLen || len(req.RestaurantName) > MaxNameLen {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "input too long (max 200 characters)",
		})
		return
	}

	urls, err := h.searcher.Search(
		c.Request.Context(),
		req.ItemName,
		req.RestaurantName,
		ClampImageCount(req.NumImages),
	)
	if err != nil {
		if errors.Is(err, ErrQuotaExceeded) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search API error"})
		return
	}

	if urls == nil {
		urls = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"imageUrls": urls})
}
