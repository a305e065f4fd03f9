package api

import (
	"alcyxob/workout-planner/internal/domain"
	"alcyxob/workout-planner/internal/service"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PlanHandler holds the plan service dependency.
type PlanHandler struct {
	planService service.PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// --- Request/Response Structs ---

// GeneratePlanRequest is the body of POST /api/generate.
type GeneratePlanRequest struct {
	WeightKg float64     `json:"weightKg" binding:"required,gt=0"`
	HeightCm float64     `json:"heightCm" binding:"required,gt=0"`
	Goal     domain.Goal `json:"goal" binding:"required"`
}

// --- Handler Methods ---

// GeneratePlan godoc
// @Summary Generate a workout plan
// @Description Asks the text-generation model for a 5-day plan for the given body measures and goal.
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body GeneratePlanRequest true "Weight, height and goal"
// @Success 200 {object} domain.WorkoutPlan "Generated plan"
// @Failure 400 {object} gin.H "Missing or invalid user data"
// @Failure 500 {object} gin.H "Model not configured or generation failed"
// @Router /generate [post]
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, domain.MsgInvalidRequest)
		return
	}

	plan, err := h.planService.GeneratePlan(c.Request.Context(), domain.PlanRequest{
		WeightKg: req.WeightKg,
		HeightCm: req.HeightCm,
		Goal:     req.Goal,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			abortWithError(c, http.StatusBadRequest, domain.MsgInvalidRequest)
		case errors.Is(err, domain.ErrConfiguration):
			abortWithError(c, http.StatusInternalServerError, domain.UserMessage(err, domain.MsgMissingAPIKey))
		default:
			log.Printf("ERROR: /api/generate request %s failed: %v", requestIDFrom(c), err)
			abortWithError(c, http.StatusInternalServerError, domain.MsgModelFailure)
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}
