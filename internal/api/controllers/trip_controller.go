package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type TripController struct {
	tripGenerationService services.TripGenerationServiceInterface
	tripPlanService       services.TripPlanServiceInterface
}

func NewTripController(
	tripGenerationService services.TripGenerationServiceInterface,
	tripPlanService services.TripPlanServiceInterface,
) *TripController {
	return &TripController{
		tripGenerationService: tripGenerationService,
		tripPlanService:       tripPlanService,
	}
}

// GenerateTrip godoc
// @Summary Generate a trip plan
// @Description Generate a multi-day itinerary from the request parameters, the selected notes and the travel profile
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.GenerateTripRequest true "Generation parameters"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trip/generate [post]
func (t *TripController) GenerateTrip(c *gin.Context) {
	var req request_models.GenerateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID := c.GetString("user_id")

	plan, err := t.tripGenerationService.GenerateTrip(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Trip plan generated successfully")
}

// GetPlan godoc
// @Summary Get the latest trip plan
// @Description Fetch the most recently generated plan of the caller; data is null when no plan exists or the caller is anonymous
// @Tags Trip
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /trip/plan [get]
func (t *TripController) GetPlan(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondSuccess(c, nil, "No trip plan available")
		return
	}

	plan, err := t.tripPlanService.GetPlan(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if plan == nil {
		utils.RespondSuccess(c, nil, "No trip plan available")
		return
	}

	utils.RespondSuccess(c, plan, "Trip plan fetched successfully")
}
