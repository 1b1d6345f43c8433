package courseController

import (
	"github.com/gofiber/fiber/v2"

	"github.com/PiotrO9/elearning/middleware"
	"github.com/PiotrO9/elearning/models"
	"github.com/PiotrO9/elearning/services"
)

type CourseController struct {
	courses     *services.CourseService
	enrollments *services.EnrollmentService
	videos      *services.VideoService
}

func NewCourseController(courses *services.CourseService, enrollments *services.EnrollmentService, videos *services.VideoService) *CourseController {
	return &CourseController{courses: courses, enrollments: enrollments, videos: videos}
}

func courseListItem(course models.Course) fiber.Map {
	return fiber.Map{
		"id":         course.ID,
		"title":      course.Title,
		"summary":    course.Summary,
		"image_path": course.ImagePath,
	}
}

// GetAllCourses lists published courses. Open to guests.
func (ctrl *CourseController) GetAllCourses(c *fiber.Ctx) error {
	courses, err := ctrl.courses.ListPublished()
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	items := make([]fiber.Map, 0, len(courses))
	for _, course := range courses {
		items = append(items, courseListItem(course))
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", items)
}

// GetCourseDetails returns a course with the video list the viewer may see:
// full for admins, enrolled users and authenticated viewers of public
// courses; trailers only for guests.
func (ctrl *CourseController) GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	viewer := middleware.Viewer(c)

	detail, err := ctrl.courses.GetDetail(courseID, viewer)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	access := "full"
	if detail.Access == services.AccessTrailerOnly {
		access = "trailer"
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully.", fiber.Map{
		"id":                   detail.Course.ID,
		"title":                detail.Course.Title,
		"summary":              detail.Course.Summary,
		"description_markdown": detail.Course.DescriptionMarkdown,
		"image_path":           detail.Course.ImagePath,
		"is_public":            detail.Course.IsPublic,
		"tags":                 detail.Course.Tags,
		"videos":               detail.Course.Videos,
		"access":               access,
	})
}

// JoinCourse lets the authenticated user self-enroll into a public course.
func (ctrl *CourseController) JoinCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals(middleware.LocalUserID).(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(uint)

	enrollment, err := ctrl.enrollments.SelfJoin(userID, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Joined course successfully.", enrollment)
}
