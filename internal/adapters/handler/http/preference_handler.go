package http

import (
	"net/http"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/services"
	"github.com/gin-gonic/gin"
)

type PreferenceHandler struct {
	svc *services.PreferenceService
}

func NewPreferenceHandler(svc *services.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{svc: svc}
}

type preferenceRequest struct {
	Value *bool `json:"value" binding:"required"`
}

func (h *PreferenceHandler) RegisterRoutes(router *gin.RouterGroup) {
	prefs := router.Group("/preferences")
	{
		prefs.GET("", h.Get)
		prefs.PUT("/:key", h.Set)
	}
}

// Get godoc
// @Summary      Current preferences
// @Tags         preferences
// @Produce      json
// @Success      200  {object}  domain.Preferences
// @Router       /preferences [get]
func (h *PreferenceHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Current())
}

// Set godoc
// @Summary      Toggle a preference
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Param        key   path      string             true  "reminder, darkMode or showQuotes"
// @Param        body  body      preferenceRequest  true  "New value"
// @Success      200   {object}  domain.Preferences
// @Failure      400   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /preferences/{key} [put]
func (h *PreferenceHandler) Set(c *gin.Context) {
	var req preferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	prefs, err := h.svc.Set(c.Request.Context(), c.Param("key"), *req.Value)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}
