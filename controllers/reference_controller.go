package controllers

import (
	"log"
	"net/http"
	"strconv"

	"learning-portal/models"
	"learning-portal/services"

	"github.com/gin-gonic/gin"
)

type ReferenceController struct {
	refs *services.ReferenceService
}

func NewReferenceController(refs *services.ReferenceService) *ReferenceController {
	return &ReferenceController{refs: refs}
}

// GetGenders godoc
// @Summary List genders
// @Tags Location
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Lookup
// @Router /location/genders [get]
func (ctrl *ReferenceController) GetGenders(c *gin.Context) {
	items, err := ctrl.refs.Genders(c.Request.Context())
	ctrl.respond(c, items, err)
}

// GetCountries godoc
// @Summary List countries
// @Tags Location
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Lookup
// @Router /location/countries [get]
func (ctrl *ReferenceController) GetCountries(c *gin.Context) {
	items, err := ctrl.refs.Countries(c.Request.Context())
	ctrl.respond(c, items, err)
}

// GetStates godoc
// @Summary List states, optionally for one country
// @Tags Location
// @Security BearerAuth
// @Produce json
// @Param country_id query int false "Country filter"
// @Success 200 {array} models.State
// @Router /location/states [get]
func (ctrl *ReferenceController) GetStates(c *gin.Context) {
	countryID, _ := strconv.Atoi(c.Query("country_id"))
	items, err := ctrl.refs.States(c.Request.Context(), countryID)
	ctrl.respond(c, items, err)
}

// GetCurrentStatuses godoc
// @Summary List current statuses
// @Tags Location
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Lookup
// @Router /location/currentstatus [get]
func (ctrl *ReferenceController) GetCurrentStatuses(c *gin.Context) {
	items, err := ctrl.refs.CurrentStatuses(c.Request.Context())
	ctrl.respond(c, items, err)
}

// GetDegrees godoc
// @Summary List degrees
// @Tags Location
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Lookup
// @Router /location/degrees [get]
func (ctrl *ReferenceController) GetDegrees(c *gin.Context) {
	items, err := ctrl.refs.Degrees(c.Request.Context())
	ctrl.respond(c, items, err)
}

// GetDesignations godoc
// @Summary List designations
// @Tags Location
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Lookup
// @Router /location/designations [get]
func (ctrl *ReferenceController) GetDesignations(c *gin.Context) {
	items, err := ctrl.refs.Designations(c.Request.Context())
	ctrl.respond(c, items, err)
}

// GetSidebar godoc
// @Summary List sidebar modules
// @Tags Sidebar
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.AppModule
// @Router /side/sidebar [get]
func (ctrl *ReferenceController) GetSidebar(c *gin.Context) {
	items, err := ctrl.refs.Sidebar(c.Request.Context())
	ctrl.respond(c, items, err)
}

func (ctrl *ReferenceController) respond(c *gin.Context, data interface{}, err error) {
	if err != nil {
		log.Printf("Lookup query error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch data",
		})
		return
	}
	c.JSON(http.StatusOK, data)
}
