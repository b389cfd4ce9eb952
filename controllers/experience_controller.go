package controllers

import (
	"errors"
	"log"
	"net/http"

	"learning-portal/models"
	"learning-portal/services"

	"github.com/gin-gonic/gin"
)

type ExperienceController struct {
	experience *services.ExperienceService
}

func NewExperienceController(experience *services.ExperienceService) *ExperienceController {
	return &ExperienceController{experience: experience}
}

// GetExperience godoc
// @Summary List experience records
// @Tags Experience
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Experience
// @Router /profile/experience [get]
func (ctrl *ExperienceController) GetExperience(c *gin.Context) {
	userID := c.GetInt("user_id")

	entries, err := ctrl.experience.List(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Experience list error for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Database query failed",
		})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// InsertExperience godoc
// @Summary Add experience record
// @Description Add a record; the company is found or created by name and location when no id is given
// @Tags Experience
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.InsertExperienceRequest true "Experience entry"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /profile/experience [post]
func (ctrl *ExperienceController) InsertExperience(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.InsertExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Required experience fields (designation_id, joining_date) are missing",
			Error:   err.Error(),
		})
		return
	}

	id, err := ctrl.experience.Insert(c.Request.Context(), userID, req)
	if errors.Is(err, models.ErrValidation) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	if err != nil {
		log.Printf("Experience insert error for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Database query failed",
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Experience added successfully",
		Data:    gin.H{"experience_id": id},
	})
}

// UpdateExperience godoc
// @Summary Update experience record
// @Tags Experience
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateExperienceRequest true "Experience entry"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /profile/experience [put]
func (ctrl *ExperienceController) UpdateExperience(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.UpdateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Required experience fields are missing for update",
			Error:   err.Error(),
		})
		return
	}

	if err := ctrl.experience.Update(c.Request.Context(), userID, req); err != nil {
		log.Printf("Experience update error for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Database query failed during experience update",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Experience details updated successfully",
	})
}
