package controllers

import (
	"errors"
	"log"
	"net/http"

	"learning-portal/models"
	"learning-portal/services"

	"github.com/gin-gonic/gin"
)

type EducationController struct {
	education *services.EducationService
}

func NewEducationController(education *services.EducationService) *EducationController {
	return &EducationController{education: education}
}

// GetEducation godoc
// @Summary List education records
// @Tags Education
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Education
// @Router /profile/education [get]
func (ctrl *EducationController) GetEducation(c *gin.Context) {
	userID := c.GetInt("user_id")

	entries, err := ctrl.education.List(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Education list error for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Database query failed",
		})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// InsertEducation godoc
// @Summary Add education record
// @Description Add a record; the institute is found or created by name and location when no id is given
// @Tags Education
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.InsertEducationRequest true "Education entry"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /profile/education [post]
func (ctrl *EducationController) InsertEducation(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.InsertEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Required education fields (degree_id, graduation_date) are missing",
			Error:   err.Error(),
		})
		return
	}

	id, err := ctrl.education.Insert(c.Request.Context(), userID, req)
	if errors.Is(err, models.ErrValidation) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	if err != nil {
		log.Printf("Education insert error for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Database query failed",
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Education added successfully",
		Data:    gin.H{"education_id": id},
	})
}

// UpdateEducation godoc
// @Summary Update education record
// @Tags Education
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateEducationRequest true "Education entry"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /profile/education [put]
func (ctrl *EducationController) UpdateEducation(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.UpdateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Required education fields are missing for update",
			Error:   err.Error(),
		})
		return
	}

	if err := ctrl.education.Update(c.Request.Context(), userID, req); err != nil {
		log.Printf("Education update error for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Database query failed during education update",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Education details updated successfully",
	})
}
