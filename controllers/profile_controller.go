package controllers

import (
	"errors"
	"log"
	"net/http"

	"learning-portal/models"
	"learning-portal/services"
	"learning-portal/utils"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	profiles *services.ProfileService
}

func NewProfileController(profiles *services.ProfileService) *ProfileController {
	return &ProfileController{profiles: profiles}
}

// ShowProfile godoc
// @Summary Get user profile
// @Description Get the authenticated user's profile with addresses
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.ProfileView
// @Failure 404 {object} models.ErrorResponse
// @Router /profile/show [post]
func (ctrl *ProfileController) ShowProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	profile, err := ctrl.profiles.GetProfile(c.Request.Context(), userID)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "User not found",
		})
		return
	}
	if err != nil {
		log.Printf("Profile fetch error for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Database query failed",
		})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update profile
// @Description Update user scalars and address list as one transaction
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateProfileRequest true "Profile payload"
// @Success 200 {object} models.Response
// @Failure 500 {object} models.ErrorResponse
// @Router /profile/update [put]
func (ctrl *ProfileController) UpdateProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request data",
			Error:   err.Error(),
		})
		return
	}

	if err := ctrl.profiles.UpdateProfile(c.Request.Context(), userID, req); err != nil {
		// detail stays in the log; the caller gets a generic failure
		log.Printf("Profile update transaction error for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Database query failed during profile update",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Profile and addresses updated successfully",
	})
}

// CreateProfile godoc
// @Summary Create profile
// @Description Register a user together with an initial address list
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body models.CreateProfileRequest true "Profile payload"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /profile/create [post]
func (ctrl *ProfileController) CreateProfile(c *gin.Context) {
	var req models.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Required user fields are missing",
			Error:   err.Error(),
		})
		return
	}

	userID, err := ctrl.profiles.CreateProfile(c.Request.Context(), req)
	if errors.Is(err, models.ErrDuplicate) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Email or contact number already exists",
		})
		return
	}
	if err != nil {
		log.Printf("Profile create transaction error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Database query failed during profile creation",
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Profile created successfully",
		Data:    gin.H{"user_id": userID},
	})
}

// GetProfilePic godoc
// @Summary Get profile picture
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.ProfilePic
// @Failure 404 {object} models.ErrorResponse
// @Router /profile/profile-pic [get]
func (ctrl *ProfileController) GetProfilePic(c *gin.Context) {
	userID := c.GetInt("user_id")

	pic, err := ctrl.profiles.GetProfilePic(c.Request.Context(), userID)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Profile picture not found",
		})
		return
	}
	if err != nil {
		log.Printf("Profile pic fetch error for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Database query failed to get profile picture",
		})
		return
	}

	c.JSON(http.StatusOK, pic)
}

// UpdateProfilePic godoc
// @Summary Upload profile picture
// @Description Upload an image and store its path (update if one exists)
// @Tags Profile
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param profile_pic formData file true "Profile picture"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /profile/profile-pic [post]
func (ctrl *ProfileController) UpdateProfilePic(c *gin.Context) {
	userID := c.GetInt("user_id")

	file, err := c.FormFile("profile_pic")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "No profile picture file uploaded",
		})
		return
	}

	filePath, err := utils.UploadFile(c, file, "profile_pics")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	var oldPath string
	if old, err := ctrl.profiles.GetProfilePic(c.Request.Context(), userID); err == nil {
		oldPath = old.FilePath
	}

	if err := ctrl.profiles.SaveProfilePic(c.Request.Context(), userID, filePath); err != nil {
		log.Printf("Profile pic save error for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Database query failed to update profile picture",
		})
		return
	}

	if oldPath != "" && oldPath != filePath {
		if err := utils.DeleteFile(oldPath); err != nil {
			log.Printf("Failed to remove replaced profile pic %s: %v", oldPath, err)
		}
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Profile picture updated successfully",
		Data:    gin.H{"file_path": filePath},
	})
}
