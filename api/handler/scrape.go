package handler

import (
	"net/http"

	"github.com/delray/scrapebot/models"
	"github.com/delray/scrapebot/scraper"
	"github.com/gin-gonic/gin"
)

// Scrape returns the handler for /api/scrape. It is mounted for every
// method so the method check stays part of its contract.
//
// Flow:
//  1. Non-POST → 405 "POST only".
//  2. Body absent, malformed, or without a non-empty url → 400 "Missing url".
//  3. Scraper.Scrape → 200 {html, links, guess}. Nothing past this point
//     produces an error response.
//
// The fetch is bound to the inbound request context, so a client
// disconnect cancels it.
func Scrape(sc *scraper.Scraper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.JSON(http.StatusMethodNotAllowed, models.NewErrorResponse(models.ErrMsgMethodNotAllowed))
			return
		}

		var req models.ScrapeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.NewErrorResponse(models.ErrMsgMissingURL))
			return
		}

		c.JSON(http.StatusOK, sc.Scrape(c.Request.Context(), req.URL))
	}
}
