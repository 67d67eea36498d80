package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/domain"
	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/services"
)

type StatsHandler struct {
	svc *services.StatsService
	now func() time.Time
}

func NewStatsHandler(svc *services.StatsService, loc *time.Location) *StatsHandler {
	if loc == nil {
		loc = time.Local
	}
	return &StatsHandler{
		svc: svc,
		now: func() time.Time { return time.Now().In(loc) },
	}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/stats", h.GetStats)
}

// GetStats godoc
// @Summary      Intake statistics over a date range
// @Description  Defaults to the last seven days ending today. The range may span at most one year.
// @Tags         stats
// @Produce      json
// @Param        start_date  query     string  false  "YYYY-MM-DD"
// @Param        end_date    query     string  false  "YYYY-MM-DD"
// @Success      200         {object}  domain.HydrationStats
// @Failure      400         {object}  errorResponse
// @Router       /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	endDateStr := c.Query("end_date")
	startDateStr := c.Query("start_date")

	var endDate, startDate time.Time
	var err error

	if endDateStr == "" {
		now := h.now()
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		endDate, err = time.Parse(domain.DateLayout, endDateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid end_date format, expected YYYY-MM-DD"})
			return
		}
	}

	if startDateStr == "" {
		startDate = endDate.AddDate(0, 0, -6)
	} else {
		startDate, err = time.Parse(domain.DateLayout, startDateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid start_date format, expected YYYY-MM-DD"})
			return
		}
	}

	stats, err := h.svc.GetStats(c.Request.Context(), domain.StatsInput{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
