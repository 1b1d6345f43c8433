package authValidator

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/PiotrO9/elearning/middleware"
)

var validate = validator.New()

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=32"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// fieldErrors flattens validator.ValidationErrors into a field->message map.
func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				errors[fe.Field()] = fe.Field() + " is required!"
			case "email":
				errors[fe.Field()] = "Must be a valid email address!"
			case "min":
				errors[fe.Field()] = fe.Field() + " must be at least " + fe.Param() + " characters long!"
			case "max":
				errors[fe.Field()] = fe.Field() + " must be at most " + fe.Param() + " characters long!"
			default:
				errors[fe.Field()] = "Invalid value!"
			}
		}
	}
	return errors
}

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// Refresh accepts the refresh credential from the cookie or the body.
func Refresh() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("refreshToken")
		if token == "" {
			reqData := new(struct {
				RefreshToken string `json:"refreshToken"`
			})
			if err := c.BodyParser(reqData); err == nil {
				token = reqData.RefreshToken
			}
		}
		if token == "" {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Refresh token required!", nil)
		}
		c.Locals("refreshToken", token)
		return c.Next()
	}
}
