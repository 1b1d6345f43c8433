package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	courseController "github.com/PiotrO9/elearning/controllers/course"
	"github.com/PiotrO9/elearning/middleware"
	"github.com/PiotrO9/elearning/services"
	courseValidator "github.com/PiotrO9/elearning/validators/course"
)

// SetupCourseRoutes registers the public catalogue surface. The detail
// endpoint accepts anonymous viewers, so it carries the optional guard
// instead of the strict one.
func SetupCourseRoutes(app *fiber.App, ctrl *courseController.CourseController, tokens *services.TokenService, sliding bool) {
	courseGroup := app.Group("/course")

	courseGroup.Get("/", ctrl.GetAllCourses)
	courseGroup.Get("/:id", courseValidator.CourseID(), middleware.OptionalAuth(tokens), ctrl.GetCourseDetails)
	courseGroup.Post("/:id/join", courseValidator.CourseID(), middleware.Protected(tokens, sliding), ctrl.JoinCourse)
}
