package http

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/adapters/export"
	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/domain"
	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/services"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type HistoryHandler struct {
	svc *services.HistoryService
}

func NewHistoryHandler(svc *services.HistoryService) *HistoryHandler {
	return &HistoryHandler{
		svc: svc,
	}
}

type recordDrinkRequest struct {
	Amount int `json:"amount" binding:"required"`
}

type dayResponse struct {
	Date      string              `json:"date"`
	Total     int                 `json:"total"`
	Goal      int                 `json:"goal"`
	Progress  int                 `json:"progress"`
	Remaining int                 `json:"remaining"`
	Achieved  bool                `json:"achieved"`
	Logs      []domain.DrinkEvent `json:"logs"`
}

func newDayResponse(d *domain.DayRecord) dayResponse {
	logs := d.Logs
	if logs == nil {
		logs = []domain.DrinkEvent{}
	}
	return dayResponse{
		Date:      d.Date,
		Total:     d.Total,
		Goal:      d.Goal,
		Progress:  d.Progress(),
		Remaining: d.Remaining(),
		Achieved:  d.Achieved(),
		Logs:      logs,
	}
}

func (h *HistoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/today", h.Today)
	router.POST("/drinks", h.RecordDrink)
	router.GET("/export/history.xlsx", h.Export)

	history := router.Group("/history")
	{
		history.GET("", h.List)
		history.GET("/:date", h.GetDay)
		history.POST("/:date/reset", h.ResetDay)
	}
}

// Today godoc
// @Summary      Today's progress
// @Tags         history
// @Produce      json
// @Success      200  {object}  dayResponse
// @Router       /today [get]
func (h *HistoryHandler) Today(c *gin.Context) {
	day, err := h.svc.Today(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDayResponse(day))
}

// RecordDrink godoc
// @Summary      Log a drink for today
// @Tags         history
// @Accept       json
// @Produce      json
// @Param        body  body      recordDrinkRequest  true  "Amount in ml"
// @Success      201   {object}  dayResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /drinks [post]
func (h *HistoryHandler) RecordDrink(c *gin.Context) {
	var req recordDrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	day, err := h.svc.RecordDrinkNow(c.Request.Context(), req.Amount)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newDayResponse(day))
}

// ResetDay godoc
// @Summary      Discard every drink of a day
// @Tags         history
// @Produce      json
// @Param        date  path      string  true  "Day (YYYY-MM-DD)"
// @Success      200   {object}  dayResponse
// @Failure      400   {object}  errorResponse
// @Router       /history/{date}/reset [post]
func (h *HistoryHandler) ResetDay(c *gin.Context) {
	day, err := h.svc.ResetDay(c.Request.Context(), c.Param("date"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDayResponse(day))
}

// List godoc
// @Summary      Every recorded day, newest first
// @Tags         history
// @Produce      json
// @Success      200  {array}  dayResponse
// @Router       /history [get]
func (h *HistoryHandler) List(c *gin.Context) {
	days, err := h.svc.ListHistory(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	out := make([]dayResponse, 0, len(days))
	for _, d := range days {
		out = append(out, newDayResponse(d))
	}
	c.JSON(http.StatusOK, out)
}

// GetDay godoc
// @Summary      One recorded day
// @Tags         history
// @Produce      json
// @Param        date  path      string  true  "Day (YYYY-MM-DD)"
// @Success      200   {object}  dayResponse
// @Failure      404   {object}  errorResponse
// @Router       /history/{date} [get]
func (h *HistoryHandler) GetDay(c *gin.Context) {
	day, err := h.svc.GetDay(c.Request.Context(), c.Param("date"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDayResponse(day))
}

// Export godoc
// @Summary      Download the history as a spreadsheet
// @Tags         history
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Router       /export/history.xlsx [get]
func (h *HistoryHandler) Export(c *gin.Context) {
	days, err := h.svc.ListHistory(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteHistoryXLSX(&buf, days); err != nil {
		handleError(c, err)
		return
	}

	filename := fmt.Sprintf("hydration-history-%s.xlsx", h.svc.TodayDate())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
