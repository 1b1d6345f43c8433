package courseValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/PiotrO9/elearning/middleware"
	"github.com/PiotrO9/elearning/services"
)

// CourseID validates the :id path parameter and stores it as uint.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		c.Locals("courseID", uint(id))
		return c.Next()
	}
}

type CreateCourseRequest struct {
	Title               string `json:"title"`
	Summary             string `json:"summary"`
	DescriptionMarkdown string `json:"description_markdown"`
	ImagePath           string `json:"image_path"`
	IsPublic            bool   `json:"is_public"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		// Validate Summary
		if strings.TrimSpace(reqData.Summary) == "" {
			errors["summary"] = "Summary is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

type UpdateCourseRequest struct {
	Title               *string `json:"title"`
	Summary             *string `json:"summary"`
	DescriptionMarkdown *string `json:"description_markdown"`
	ImagePath           *string `json:"image_path"`
	IsPublic            *bool   `json:"is_public"`
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.Title != nil && len(strings.TrimSpace(*reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.Summary != nil && strings.TrimSpace(*reqData.Summary) == "" {
			errors["summary"] = "Summary must not be empty!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

func Publish() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			IsPublished *bool `json:"is_published"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if reqData.IsPublished == nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"is_published": "is_published is required!"})
		}
		c.Locals("validatedPublish", *reqData.IsPublished)
		return c.Next()
	}
}

// ListPagination validates optional page/limit query parameters, defaulting
// to the first page of 10.
func ListPagination() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `query:"page"`
			Limit *int `query:"limit"`
		})
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		page, limit := 1, 10
		errors := make(map[string]string)
		if reqData.Page != nil {
			if *reqData.Page < 1 {
				errors["page"] = "Page must be greater than 0!"
			} else {
				page = *reqData.Page
			}
		}
		if reqData.Limit != nil {
			if *reqData.Limit < 1 {
				errors["limit"] = "Limit must be greater than 0!"
			} else {
				limit = *reqData.Limit
			}
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("page", page)
		c.Locals("limit", limit)
		return c.Next()
	}
}

// Reorder validates the batch shape only; duplicate detection is the
// ordering manager's job so the rule lives in one place.
func Reorder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Items []services.ReorderItem `json:"items"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.Items) == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"items": "Items must not be empty!"})
		}
		for _, item := range reqData.Items {
			if item.VideoID == 0 {
				return middleware.ValidationErrorResponse(c, map[string]string{"items": "Each item needs a valid videoId!"})
			}
			if item.Order < 0 {
				return middleware.ValidationErrorResponse(c, map[string]string{"items": "Order must not be negative!"})
			}
		}

		c.Locals("validatedReorder", reqData.Items)
		return c.Next()
	}
}
