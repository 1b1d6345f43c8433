package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/PiotrO9/elearning/config"
	authController "github.com/PiotrO9/elearning/controllers/auth"
	courseController "github.com/PiotrO9/elearning/controllers/course"
	tagController "github.com/PiotrO9/elearning/controllers/tag"
	userController "github.com/PiotrO9/elearning/controllers/user"
	videoController "github.com/PiotrO9/elearning/controllers/video"
	"github.com/PiotrO9/elearning/database"
	authRoutes "github.com/PiotrO9/elearning/routers/authRoutes"
	courseRoutes "github.com/PiotrO9/elearning/routers/courseRoutes"
	tagRoutes "github.com/PiotrO9/elearning/routers/tagRoutes"
	userRoutes "github.com/PiotrO9/elearning/routers/userRoutes"
	"github.com/PiotrO9/elearning/services"
	"github.com/PiotrO9/elearning/utils"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	tokens := services.NewTokenService(cfg)
	authService := services.NewAuthService(db, tokens, cfg)
	enrollmentService := services.NewEnrollmentService(db)
	courseService := services.NewCourseService(db, enrollmentService)
	videoService := services.NewVideoService(db)
	userService := services.NewUserService(db, cfg)
	tagService := services.NewTagService(db)
	dashboardService := services.NewDashboardService(db)

	authCtrl := authController.NewAuthController(authService, tokens)
	courseCtrl := courseController.NewCourseController(courseService, enrollmentService, videoService)
	dashboardCtrl := courseController.NewDashboardController(dashboardService)
	videoCtrl := videoController.NewVideoController(videoService)
	userCtrl := userController.NewUserController(userService)
	tagCtrl := tagController.NewTagController(tagService)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders:     "Content-Type,Authorization",
		AllowCredentials: true,
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	sliding := cfg.SlidingSession
	authRoutes.SetupAuthRoutes(app, authCtrl, tokens, sliding)
	courseRoutes.SetupCourseRoutes(app, courseCtrl, tokens, sliding)
	courseRoutes.SetupAdminCourseRoutes(app, courseCtrl, videoCtrl, dashboardCtrl, tokens, sliding)
	userRoutes.SetupUserRoutes(app, userCtrl, courseCtrl, tokens, sliding)
	tagRoutes.SetupTagRoutes(app, tagCtrl, tokens, sliding)

	cleanup := utils.StartTokenCleanup(db)
	defer cleanup.Stop()

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
