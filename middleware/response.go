package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/PiotrO9/elearning/apperrors"
)

// JsonResponse writes the common response envelope.
func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// ErrorResponse maps a service error to its HTTP shape. Business errors keep
// their stable code; anything unknown is logged and reported as a generic
// internal error so storage details never leak.
func ErrorResponse(c *fiber.Ctx, err error) error {
	appErr := apperrors.As(err)
	if appErr.Kind == apperrors.KindInternal {
		log.Printf("Internal error on %s %s: %v", c.Method(), c.Path(), err)
	}

	body := fiber.Map{
		"status":  false,
		"message": appErr.Message,
		"code":    appErr.Code,
		"data":    nil,
	}
	if len(appErr.Fields) > 0 {
		body["errors"] = appErr.Fields
	}
	return c.Status(appErr.HTTPStatus()).JSON(body)
}

// ValidationErrorResponse reports per-field validation failures.
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return ErrorResponse(c, apperrors.ValidationFields(errors))
}
