package videoValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/PiotrO9/elearning/middleware"
)

// VideoID validates the :id path parameter.
func VideoID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Video ID!", nil)
		}
		c.Locals("videoID", uint(id))
		return c.Next()
	}
}

type CreateVideoRequest struct {
	CourseID        uint   `json:"course_id"`
	Title           string `json:"title"`
	Order           int    `json:"order"`
	IsTrailer       bool   `json:"is_trailer"`
	SourceURL       string `json:"source_url"`
	DurationSeconds *int   `json:"duration_seconds"`
}

func CreateVideo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateVideoRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.CourseID == 0 {
			errors["course_id"] = "course_id is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Order < 0 {
			errors["order"] = "Order must not be negative!"
		}
		if strings.TrimSpace(reqData.SourceURL) == "" {
			errors["source_url"] = "source_url is required!"
		}
		if reqData.DurationSeconds != nil && *reqData.DurationSeconds < 0 {
			errors["duration_seconds"] = "Duration must not be negative!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVideo", reqData)
		return c.Next()
	}
}

type UpdateVideoRequest struct {
	Title           *string `json:"title"`
	Order           *int    `json:"order"`
	IsTrailer       *bool   `json:"is_trailer"`
	SourceURL       *string `json:"source_url"`
	DurationSeconds *int    `json:"duration_seconds"`
}

func UpdateVideo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateVideoRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.Title != nil && strings.TrimSpace(*reqData.Title) == "" {
			errors["title"] = "Title must not be empty!"
		}
		if reqData.Order != nil && *reqData.Order < 0 {
			errors["order"] = "Order must not be negative!"
		}
		if reqData.DurationSeconds != nil && *reqData.DurationSeconds < 0 {
			errors["duration_seconds"] = "Duration must not be negative!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVideoUpdate", reqData)
		return c.Next()
	}
}

type AttachVideoRequest struct {
	Order     *int  `json:"order"`
	IsTrailer *bool `json:"is_trailer"`
}

// AttachVideo validates the :id and :courseId parameters plus the optional
// order/trailer body.
func AttachVideo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		videoIDStr := strings.TrimSpace(c.Params("id"))
		videoID, err := strconv.Atoi(videoIDStr)
		if err != nil || videoID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Video ID!", nil)
		}

		courseIDStr := strings.TrimSpace(c.Params("courseId"))
		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(AttachVideoRequest)
		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}
		if reqData.Order != nil && *reqData.Order < 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"order": "Order must not be negative!"})
		}

		c.Locals("videoID", uint(videoID))
		c.Locals("courseID", uint(courseID))
		c.Locals("validatedAttach", reqData)
		return c.Next()
	}
}
