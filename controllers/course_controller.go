package controllers

import (
	"log"
	"net/http"

	"learning-portal/models"
	"learning-portal/services"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	courses *services.CourseService
}

func NewCourseController(courses *services.CourseService) *CourseController {
	return &CourseController{courses: courses}
}

// GetCourses godoc
// @Summary List course catalogue
// @Tags Courses
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Course
// @Router /courses [get]
func (ctrl *CourseController) GetCourses(c *gin.Context) {
	courses, err := ctrl.courses.Catalogue(c.Request.Context())
	if err != nil {
		log.Printf("Course catalogue error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Database query failed",
		})
		return
	}

	c.JSON(http.StatusOK, courses)
}

// GetMyCourses godoc
// @Summary List the caller's enrollments
// @Description Enrollments with completion status, feeding the history and certificate views
// @Tags Courses
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.UserCourse
// @Router /courses/my-courses [get]
func (ctrl *CourseController) GetMyCourses(c *gin.Context) {
	userID := c.GetInt("user_id")

	enrollments, err := ctrl.courses.MyCourses(c.Request.Context(), userID)
	if err != nil {
		log.Printf("My-courses error for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Database query failed",
		})
		return
	}

	c.JSON(http.StatusOK, enrollments)
}
