package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	courseController "github.com/PiotrO9/elearning/controllers/course"
	videoController "github.com/PiotrO9/elearning/controllers/video"
	"github.com/PiotrO9/elearning/middleware"
	"github.com/PiotrO9/elearning/services"
	courseValidator "github.com/PiotrO9/elearning/validators/course"
	videoValidator "github.com/PiotrO9/elearning/validators/video"
)

// SetupAdminCourseRoutes wires the management surface: course lifecycle,
// video pool, ordering and enrollment administration.
func SetupAdminCourseRoutes(app *fiber.App, courses *courseController.CourseController, videos *videoController.VideoController, dashboard *courseController.DashboardController, tokens *services.TokenService, sliding bool) {
	adminGroup := app.Group("/admin", middleware.Protected(tokens, sliding), middleware.RequireAdmin())

	courseGroup := adminGroup.Group("/course")
	courseGroup.Get("/", courseValidator.ListPagination(), courses.AdminGetAllCourses)
	courseGroup.Post("/", courseValidator.CreateCourse(), courses.AdminCreateCourse)
	courseGroup.Get("/:id", courseValidator.CourseID(), courses.AdminGetCourseDetails)
	courseGroup.Patch("/:id", courseValidator.CourseID(), courseValidator.UpdateCourse(), courses.AdminUpdateCourse)
	courseGroup.Delete("/:id", courseValidator.CourseID(), courses.AdminDeleteCourse)
	courseGroup.Patch("/:id/publish", courseValidator.CourseID(), courseValidator.Publish(), courses.AdminPublishCourse)
	courseGroup.Patch("/:id/videos/order", courseValidator.CourseID(), courseValidator.Reorder(), courses.AdminReorderVideos)

	courseGroup.Post("/:id/enroll", courseValidator.CourseID(), courseValidator.EnrollUser(), courses.AdminEnrollUser)
	courseGroup.Delete("/:id/enroll/:userId", courseValidator.CourseID(), courseValidator.UserIDParam(), courses.AdminUnenrollUser)
	courseGroup.Get("/:id/enrollments", courseValidator.CourseID(), courseValidator.ListPagination(), courses.AdminGetCourseEnrollments)

	videoGroup := adminGroup.Group("/video")
	videoGroup.Post("/", videoValidator.CreateVideo(), videos.Create)
	videoGroup.Patch("/:id", videoValidator.VideoID(), videoValidator.UpdateVideo(), videos.Update)
	videoGroup.Delete("/:id", videoValidator.VideoID(), videos.Delete)
	videoGroup.Post("/:id/attach/:courseId", videoValidator.AttachVideo(), videos.Attach)
	videoGroup.Post("/:id/detach", videoValidator.VideoID(), videos.Detach)

	adminGroup.Get("/dashboard/stats", dashboard.Stats)
}
