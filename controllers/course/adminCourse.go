package courseController

import (
	"github.com/gofiber/fiber/v2"

	"github.com/PiotrO9/elearning/middleware"
	"github.com/PiotrO9/elearning/services"
	"github.com/PiotrO9/elearning/utils"
	courseValidator "github.com/PiotrO9/elearning/validators/course"
)

func (ctrl *CourseController) AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := ctrl.courses.Create(services.CourseInput{
		Title:               reqData.Title,
		Summary:             reqData.Summary,
		DescriptionMarkdown: reqData.DescriptionMarkdown,
		ImagePath:           reqData.ImagePath,
		IsPublic:            reqData.IsPublic,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully.", course)
}

func (ctrl *CourseController) AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.UpdateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := ctrl.courses.Update(courseID, services.UpdateCourseInput{
		Title:               reqData.Title,
		Summary:             reqData.Summary,
		DescriptionMarkdown: reqData.DescriptionMarkdown,
		ImagePath:           reqData.ImagePath,
		IsPublic:            reqData.IsPublic,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully.", course)
}

func (ctrl *CourseController) AdminPublishCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	published := c.Locals("validatedPublish").(bool)

	course, err := ctrl.courses.SetPublished(courseID, published)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	message := "Course published successfully."
	if !published {
		message = "Course unpublished successfully."
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, course)
}

func (ctrl *CourseController) AdminDeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	if err := ctrl.courses.Delete(courseID); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully.", nil)
}

func (ctrl *CourseController) AdminGetAllCourses(c *fiber.Ctx) error {
	page := c.Locals("page").(int)
	limit := c.Locals("limit").(int)

	courses, total, err := ctrl.courses.AdminList(utils.Offset(page, limit), limit)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course list.", fiber.Map{
		"courses":    courses,
		"pagination": utils.BuildPagination(total, page, limit),
	})
}

func (ctrl *CourseController) AdminGetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	course, err := ctrl.courses.AdminDetail(courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details.", course)
}

// AdminReorderVideos applies a batched order change atomically.
func (ctrl *CourseController) AdminReorderVideos(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	items := c.Locals("validatedReorder").([]services.ReorderItem)

	if err := ctrl.videos.Reorder(courseID, items); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Videos reordered successfully.", nil)
}
