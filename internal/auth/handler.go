package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type loginRequest struct {
	Email       string `json:"email"`
	GoogleToken string `json:"googleToken"`
}

// Login handles POST /api/auth. Every verification failure returns the same
// body; the specific failed check is logged server-side only.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"authenticated": false,
			"error":         "invalid request body",
		})
		return
	}

	if req.Email == "" || req.GoogleToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"authenticated": false,
			"error":         "email and googleToken are required",
		})
		return
	}

	sessionToken, err := h.service.Authenticate(c.Request.Context(), req.Email, req.GoogleToken)
	if err != nil {
		log.Printf("auth rejected for %s: %v", req.Email, err)

		if errors.Is(err, ErrMissingField) {
			c.JSON(http.StatusBadRequest, gin.H{
				"authenticated": false,
				"error":         err.Error(),
			})
			return
		}

		c.JSON(http.StatusUnauthorized, gin.H{
			"authenticated": false,
			"error":         "not authorized",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"sessionToken":  sessionToken,
		"message":       "Authentication successful",
	})
}
