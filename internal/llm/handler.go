package llm

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/juliusphilipponce/menu-miner/internal/security"
)

// Handler exposes the extraction proxy. API keys stay server-side; the
// client only ever posts image bytes.
type Handler struct {
	extractor Extractor
}

func NewHandler(extractor Extractor) *Handler {
	return &Handler{extractor: extractor}
}

type analyzeRequest struct {
	ImageData string `json:"imageData"`
	MimeType  string `json:"mimeType"`
}

// AnalyzeMenu handles POST /api/analyze-menu.
func (h *Handler) AnalyzeMenu(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.ImageData == "" || req.MimeType == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "missing required fields: imageData and mimeType",
		})
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.ImageData)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "imageData is not valid base64"})
		return
	}

	err = security.ValidateImageFile(security.FileInfo{
		Name:     "upload",
		Size:     int64(len(data)),
		MimeType: req.MimeType,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, err := h.extractor.ExtractMenu(c.Request.Context(), Image{
		Name:     "upload",
		MimeType: req.MimeType,
		Data:     data,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
