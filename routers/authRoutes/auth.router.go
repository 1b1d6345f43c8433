package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authController "github.com/PiotrO9/elearning/controllers/auth"
	"github.com/PiotrO9/elearning/middleware"
	"github.com/PiotrO9/elearning/services"
	authValidator "github.com/PiotrO9/elearning/validators/auth"
)

func SetupAuthRoutes(app *fiber.App, ctrl *authController.AuthController, tokens *services.TokenService, sliding bool) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidator.Register(), ctrl.Register)
	authGroup.Post("/login", authValidator.Login(), ctrl.Login)
	authGroup.Post("/refresh", authValidator.Refresh(), ctrl.Refresh)
	authGroup.Post("/logout", ctrl.Logout)
	authGroup.Get("/me", middleware.Protected(tokens, sliding), ctrl.Me)
}
