package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/juliusphilipponce/menu-miner/internal/auth"
	"github.com/juliusphilipponce/menu-miner/internal/imagesearch"
	"github.com/juliusphilipponce/menu-miner/internal/llm"
	"github.com/juliusphilipponce/menu-miner/internal/middleware"
	"github.com/juliusphilipponce/menu-miner/internal/scan"
)

// Deps carries the wired handlers. Everything except /health and /api/auth
// sits behind the session gate.
type Deps struct {
	Auth     *auth.Handler
	Analyze  *llm.Handler
	Search   *imagesearch.Handler
	Scan     *scan.Handler
	Sessions *auth.SessionManager
}

func New(d Deps) *gin.Engine {
	r := gin.Default()

	// Wrong-method requests get 405, not 404.
	r.HandleMethodNotAllowed = true

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/auth", d.Auth.Login)

		protected := api.Group("")
		protected.Use(middleware.RequireSession(d.Sessions))
		{
			protected.POST("/analyze-menu", d.Analyze.AnalyzeMenu)
			protected.POST("/search-images", d.Search.SearchImages)
			protected.POST("/scan", d.Scan.Submit)
			protected.GET("/scan/:id", d.Scan.Get)
		}
	}

	return r
}
