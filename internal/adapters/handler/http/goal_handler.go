package http

import (
	"net/http"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/services"
	"github.com/gin-gonic/gin"
)

type GoalHandler struct {
	svc *services.GoalService
}

func NewGoalHandler(svc *services.GoalService) *GoalHandler {
	return &GoalHandler{svc: svc}
}

type goalRequest struct {
	Goal int `json:"goal" binding:"required"`
}

type goalResponse struct {
	Goal int `json:"goal"`
}

func (h *GoalHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/goal", h.Get)
	router.PUT("/goal", h.Update)
}

// Get godoc
// @Summary      Current daily goal
// @Tags         goal
// @Produce      json
// @Success      200  {object}  goalResponse
// @Router       /goal [get]
func (h *GoalHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, goalResponse{Goal: h.svc.Current()})
}

// Update godoc
// @Summary      Change the daily goal
// @Description  The goal must be at least 500 ml. Days already recorded keep their goal.
// @Tags         goal
// @Accept       json
// @Produce      json
// @Param        body  body      goalRequest  true  "Goal in ml"
// @Success      200   {object}  goalResponse
// @Failure      400   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /goal [put]
func (h *GoalHandler) Update(c *gin.Context) {
	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.Save(c.Request.Context(), req.Goal); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, goalResponse{Goal: h.svc.Current()})
}
