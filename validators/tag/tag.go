package tagValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/PiotrO9/elearning/middleware"
)

func TagID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Tag ID!", nil)
		}
		c.Locals("tagID", uint(id))
		return c.Next()
	}
}

func TagName() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name string `json:"name"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		name := strings.TrimSpace(reqData.Name)
		if len(name) < 2 {
			return middleware.ValidationErrorResponse(c, map[string]string{"name": "Name must be at least 2 characters long!"})
		}
		c.Locals("tagName", name)
		return c.Next()
	}
}

func SetCourseTags() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			TagIDs []uint `json:"tag_ids"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		for _, id := range reqData.TagIDs {
			if id == 0 {
				return middleware.ValidationErrorResponse(c, map[string]string{"tag_ids": "Tag IDs must be positive!"})
			}
		}
		c.Locals("tagIDs", reqData.TagIDs)
		return c.Next()
	}
}
