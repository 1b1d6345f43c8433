package tagController

import (
	"github.com/gofiber/fiber/v2"

	"github.com/PiotrO9/elearning/middleware"
	"github.com/PiotrO9/elearning/services"
)

type TagController struct {
	tags *services.TagService
}

func NewTagController(tags *services.TagService) *TagController {
	return &TagController{tags: tags}
}

func (ctrl *TagController) GetAllTags(c *fiber.Ctx) error {
	tags, err := ctrl.tags.List()
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tag list.", tags)
}

func (ctrl *TagController) AdminCreateTag(c *fiber.Ctx) error {
	name := c.Locals("tagName").(string)

	tag, err := ctrl.tags.Create(name)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Tag created successfully.", tag)
}

func (ctrl *TagController) AdminUpdateTag(c *fiber.Ctx) error {
	tagID := c.Locals("tagID").(uint)
	name := c.Locals("tagName").(string)

	tag, err := ctrl.tags.Update(tagID, name)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tag updated successfully.", tag)
}

func (ctrl *TagController) AdminDeleteTag(c *fiber.Ctx) error {
	tagID := c.Locals("tagID").(uint)

	if err := ctrl.tags.Delete(tagID); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tag deleted successfully.", nil)
}

// AdminSetCourseTags replaces the tag set attached to a course.
func (ctrl *TagController) AdminSetCourseTags(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	tagIDs := c.Locals("tagIDs").([]uint)

	if err := ctrl.tags.SetCourseTags(courseID, tagIDs); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course tags updated successfully.", nil)
}
