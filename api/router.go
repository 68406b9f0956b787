package api

import (
	"net/http"
	"time"

	"github.com/delray/scrapebot/api/handler"
	"github.com/delray/scrapebot/config"
	"github.com/delray/scrapebot/models"
	"github.com/delray/scrapebot/scraper"
	"github.com/gin-gonic/gin"
)

const scrapePath = "/api/scrape"

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain:
//
//	Global:  Recovery → Logger
func NewRouter(sc *scraper.Scraper, cfg *config.Config, startTime time.Time) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())

	api := r.Group("/api")

	api.GET("/health", handler.Health(startTime))

	// Any method: the handler answers non-POST with 405 itself.
	scrape := handler.Scrape(sc)
	r.Any(scrapePath, scrape)

	// Any only registers the standard methods; extension methods such as
	// PROPFIND fall through to NoRoute and still get the 405.
	r.NoRoute(func(c *gin.Context) {
		if c.Request.URL.Path == scrapePath {
			scrape(c)
			return
		}
		c.JSON(http.StatusNotFound, models.NewErrorResponse("not found"))
	})

	return r
}
