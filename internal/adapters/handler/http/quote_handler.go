package http

import (
	"net/http"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/services"
	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	svc *services.QuoteService
}

func NewQuoteHandler(svc *services.QuoteService) *QuoteHandler {
	return &QuoteHandler{svc: svc}
}

func (h *QuoteHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/quotes", h.List)
	router.GET("/quotes/random", h.Random)
}

// List godoc
// @Summary      Every built-in quote
// @Tags         quotes
// @Produce      json
// @Success      200  {array}   domain.Quote
// @Failure      403  {object}  errorResponse
// @Router       /quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
	quotes, err := h.svc.All()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, quotes)
}

// Random godoc
// @Summary      A motivational quote
// @Tags         quotes
// @Produce      json
// @Param        current  query     string  false  "Text of the quote on screen, never returned again"
// @Success      200      {object}  domain.Quote
// @Failure      403      {object}  errorResponse
// @Router       /quotes/random [get]
func (h *QuoteHandler) Random(c *gin.Context) {
	quote, err := h.svc.Next(c.Query("current"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}
