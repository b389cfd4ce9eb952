package routes

import (
	"learning-portal/config"
	"learning-portal/controllers"
	"learning-portal/middleware"
	"learning-portal/repositories"
	"learning-portal/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes wires stores, services and controllers and registers every
// route under /api. Registration and login are the only token-exempt
// endpoints.
func SetupRoutes(router *gin.Engine, db *pgxpool.Pool, cache *redis.Client, mailer services.Mailer, cfg *config.Config) {
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	picRepo := repositories.NewProfilePicRepository(db)
	educationRepo := repositories.NewEducationRepository(db)
	experienceRepo := repositories.NewExperienceRepository(db)
	referenceRepo := repositories.NewReferenceRepository(db)
	courseRepo := repositories.NewCourseRepository(db)

	tokenSvc := services.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)

	authCtrl := controllers.NewAuthController(
		services.NewAuthService(userRepo, tokenSvc, mailer))
	profileCtrl := controllers.NewProfileController(
		services.NewProfileService(profileRepo, userRepo, picRepo))
	educationCtrl := controllers.NewEducationController(
		services.NewEducationService(educationRepo, referenceRepo))
	experienceCtrl := controllers.NewExperienceController(
		services.NewExperienceService(experienceRepo, referenceRepo))
	referenceCtrl := controllers.NewReferenceController(
		services.NewReferenceService(referenceRepo, cache))
	courseCtrl := controllers.NewCourseController(
		services.NewCourseService(courseRepo))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api")

	api.POST("/login/register", authCtrl.Register)
	api.POST("/login", authCtrl.Login)
	api.POST("/profile/create", profileCtrl.CreateProfile)

	auth := api.Group("/")
	auth.Use(middleware.AuthMiddleware(tokenSvc))
	{
		auth.POST("/profile/show", profileCtrl.ShowProfile)
		auth.PUT("/profile/update", profileCtrl.UpdateProfile)
		auth.GET("/profile/profile-pic", profileCtrl.GetProfilePic)
		auth.POST("/profile/profile-pic", profileCtrl.UpdateProfilePic)

		auth.GET("/profile/education", educationCtrl.GetEducation)
		auth.POST("/profile/education", educationCtrl.InsertEducation)
		auth.PUT("/profile/education", educationCtrl.UpdateEducation)

		auth.GET("/profile/experience", experienceCtrl.GetExperience)
		auth.POST("/profile/experience", experienceCtrl.InsertExperience)
		auth.PUT("/profile/experience", experienceCtrl.UpdateExperience)

		auth.GET("/location/genders", referenceCtrl.GetGenders)
		auth.GET("/location/countries", referenceCtrl.GetCountries)
		auth.GET("/location/states", referenceCtrl.GetStates)
		auth.GET("/location/currentstatus", referenceCtrl.GetCurrentStatuses)
		auth.GET("/location/degrees", referenceCtrl.GetDegrees)
		auth.GET("/location/designations", referenceCtrl.GetDesignations)

		auth.GET("/side/sidebar", referenceCtrl.GetSidebar)

		auth.GET("/courses", courseCtrl.GetCourses)
		auth.GET("/courses/my-courses", courseCtrl.GetMyCourses)
	}

	router.Static("/uploads", cfg.UploadDir)
}
