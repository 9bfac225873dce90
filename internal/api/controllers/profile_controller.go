package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type ProfileController struct {
	profileService services.ProfileServiceInterface
}

func NewProfileController(profileService services.ProfileServiceInterface) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// GetProfile godoc
// @Summary Get the travel profile
// @Description Fetch the travel profile of the authenticated user; data is null when none exists
// @Tags Profile
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile [get]
func (p *ProfileController) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	profile, err := p.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile fetched successfully")
}

// UpsertProfile godoc
// @Summary Create or replace the travel profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body request_models.UpsertProfileRequest true "Profile payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile [put]
func (p *ProfileController) UpsertProfile(c *gin.Context) {
	var req request_models.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID := c.GetString("user_id")

	profile, err := p.profileService.UpsertProfile(c.Request.Context(), req, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile saved successfully")
}
