package scan

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/juliusphilipponce/menu-miner/internal/llm"
	"github.com/juliusphilipponce/menu-miner/internal/security"
)

// pipelineTimeout bounds one whole scan (all extractions plus enrichment).
const pipelineTimeout = 5 * time.Minute

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Submit handles POST /api/scan: multipart upload of 1-10 menu photos plus
// restaurantName and numImages fields. The pipeline runs in the background;
// the client polls the returned scan id.
func (h *Handler) Submit(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart form is required"})
		return
	}

	fileHeaders := form.File["images"]
	if len(fileHeaders) > security.MaxFiles {
		c.JSON(http.StatusBadRequest, gin.H{"error": "too many files"})
		return
	}

	images := make([]llm.Image, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		if fh.Size > security.MaxFileSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file size exceeds maximum allowed size"})
			return
		}

		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file: " + fh.Filename})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file: " + fh.Filename})
			return
		}

		images = append(images, llm.Image{
			Name:     fh.Filename,
			MimeType: fh.Header.Get("Content-Type"),
			Data:     data,
		})
	}

	numImages, _ := strconv.Atoi(c.PostForm("numImages"))

	req := Request{
		RestaurantName: c.PostForm("restaurantName"),
		NumImages:      numImages,
		Images:         images,
	}

	sess, err := h.service.Start(req)
	if err != nil {
		if errors.Is(err, ErrRateLimited) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The request context dies when this handler returns; the pipeline
	// gets its own bounded one.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), pipelineTimeout)
		defer cancel()
		h.service.Run(ctx, sess.ID, req)
	}()

	c.JSON(http.StatusAccepted, gin.H{
		"scanId": sess.ID,
		"status": sess.Status,
	})
}

// Get handles GET /api/scan/:id for status polling.
func (h *Handler) Get(c *gin.Context) {
	sess, ok := h.service.Store().Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "scan not found or expired"})
		return
	}

	c.JSON(http.StatusOK, sess)
}
