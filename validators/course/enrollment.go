package courseValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/PiotrO9/elearning/middleware"
)

// EnrollUser validates the admin-enrollment body.
func EnrollUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID uint `json:"userId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if reqData.UserID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"userId": "userId is required!"})
		}
		c.Locals("enrollUserID", reqData.UserID)
		return c.Next()
	}
}

// UserIDParam validates the :userId path parameter.
func UserIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("userId"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
		}
		c.Locals("targetUserID", uint(id))
		return c.Next()
	}
}
