package tagRoutes

import (
	"github.com/gofiber/fiber/v2"

	tagController "github.com/PiotrO9/elearning/controllers/tag"
	"github.com/PiotrO9/elearning/middleware"
	"github.com/PiotrO9/elearning/services"
	courseValidator "github.com/PiotrO9/elearning/validators/course"
	tagValidator "github.com/PiotrO9/elearning/validators/tag"
)

func SetupTagRoutes(app *fiber.App, ctrl *tagController.TagController, tokens *services.TokenService, sliding bool) {
	app.Get("/tags", ctrl.GetAllTags)

	adminGroup := app.Group("/admin/tag", middleware.Protected(tokens, sliding), middleware.RequireAdmin())
	adminGroup.Post("/", tagValidator.TagName(), ctrl.AdminCreateTag)
	adminGroup.Patch("/:id", tagValidator.TagID(), tagValidator.TagName(), ctrl.AdminUpdateTag)
	adminGroup.Delete("/:id", tagValidator.TagID(), ctrl.AdminDeleteTag)

	app.Put("/admin/course/:id/tags",
		middleware.Protected(tokens, sliding), middleware.RequireAdmin(),
		courseValidator.CourseID(), tagValidator.SetCourseTags(), ctrl.AdminSetCourseTags)
}
