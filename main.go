package main

import (
	"log"
	"os"

	"learning-portal/config"
	_ "learning-portal/docs"
	"learning-portal/middleware"
	"learning-portal/routes"
	"learning-portal/services"

	"github.com/gin-gonic/gin"
)

// @title Learning Portal API
// @version 1.0
// @description Student learning-portal backend: authentication, profile, education, experience, courses.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	config.InitRedis()
	defer config.CloseRedis()

	if err := os.MkdirAll(config.AppConfig.UploadDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	var mailer services.Mailer
	if emailSvc, err := services.NewEmailService(config.AppConfig); err != nil {
		log.Println("Running without outgoing mail:", err)
	} else {
		mailer = emailSvc
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, config.DB, config.RedisClient, mailer, config.AppConfig)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
