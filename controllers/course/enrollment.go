package courseController

import (
	"github.com/gofiber/fiber/v2"

	"github.com/PiotrO9/elearning/middleware"
	"github.com/PiotrO9/elearning/utils"
)

// AdminEnrollUser assigns a user to a course on their behalf.
func (ctrl *CourseController) AdminEnrollUser(c *fiber.Ctx) error {
	adminID, ok := c.Locals(middleware.LocalUserID).(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(uint)
	userID := c.Locals("enrollUserID").(uint)

	enrollment, err := ctrl.enrollments.Enroll(adminID, userID, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User enrolled successfully.", enrollment)
}

// AdminUnenrollUser removes a user's enrollment. A second identical call
// reports not found.
func (ctrl *CourseController) AdminUnenrollUser(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	userID := c.Locals("targetUserID").(uint)

	if err := ctrl.enrollments.Unenroll(userID, courseID); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User unenrolled successfully.", nil)
}

// AdminGetCourseEnrollments lists who is enrolled in a course.
func (ctrl *CourseController) AdminGetCourseEnrollments(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	page := c.Locals("page").(int)
	limit := c.Locals("limit").(int)

	enrollments, total, err := ctrl.enrollments.ListByCourse(courseID, utils.Offset(page, limit), limit)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	items := make([]fiber.Map, 0, len(enrollments))
	for _, e := range enrollments {
		items = append(items, fiber.Map{
			"id":          e.ID,
			"user_id":     e.UserID,
			"username":    e.User.Username,
			"email":       e.User.Email,
			"enrolled_at": e.CreatedAt,
			"enrolled_by": e.EnrolledBy,
		})
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course enrollments.", fiber.Map{
		"enrollments": items,
		"pagination":  utils.BuildPagination(total, page, limit),
	})
}

// AdminGetUserCourses lists the courses a user is enrolled in.
func (ctrl *CourseController) AdminGetUserCourses(c *fiber.Ctx) error {
	userID := c.Locals("targetUserID").(uint)
	page := c.Locals("page").(int)
	limit := c.Locals("limit").(int)

	enrollments, total, err := ctrl.enrollments.ListByUser(userID, utils.Offset(page, limit), limit)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	items := make([]fiber.Map, 0, len(enrollments))
	for _, e := range enrollments {
		items = append(items, fiber.Map{
			"id":          e.Course.ID,
			"title":       e.Course.Title,
			"summary":     e.Course.Summary,
			"image_path":  e.Course.ImagePath,
			"is_public":   e.Course.IsPublic,
			"enrolled_at": e.CreatedAt,
			"enrolled_by": e.EnrolledBy,
		})
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User courses.", fiber.Map{
		"courses":    items,
		"pagination": utils.BuildPagination(total, page, limit),
	})
}
