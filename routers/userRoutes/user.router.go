package userRoutes

import (
	"github.com/gofiber/fiber/v2"

	courseController "github.com/PiotrO9/elearning/controllers/course"
	userController "github.com/PiotrO9/elearning/controllers/user"
	"github.com/PiotrO9/elearning/middleware"
	"github.com/PiotrO9/elearning/services"
	userValidator "github.com/PiotrO9/elearning/validators/user"
)

func SetupUserRoutes(app *fiber.App, users *userController.UserController, courses *courseController.CourseController, tokens *services.TokenService, sliding bool) {
	userGroup := app.Group("/user", middleware.Protected(tokens, sliding))

	userGroup.Get("/profile", users.GetProfile)
	userGroup.Patch("/profile", userValidator.UpdateProfile(), users.UpdateProfile)
	userGroup.Patch("/password", userValidator.UpdatePassword(), users.UpdatePassword)
	userGroup.Get("/:id/status", userValidator.UserID(), users.GetStatus)

	adminGroup := app.Group("/admin/users", middleware.Protected(tokens, sliding), middleware.RequireAdmin())
	adminGroup.Get("/", userValidator.ListPagination(), users.AdminUserList)
	adminGroup.Patch("/:id/role", userValidator.UserID(), userValidator.UpdateRole(), users.AdminUpdateRole)
	adminGroup.Delete("/:id", userValidator.UserID(), users.AdminDeleteUser)
	adminGroup.Get("/:id/courses", userValidator.UserID(), userValidator.ListPagination(), courses.AdminGetUserCourses)
}
