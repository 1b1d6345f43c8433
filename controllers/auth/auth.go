package authController

import (
	"github.com/gofiber/fiber/v2"

	"github.com/PiotrO9/elearning/middleware"
	"github.com/PiotrO9/elearning/services"
	authValidator "github.com/PiotrO9/elearning/validators/auth"
)

type AuthController struct {
	auth   *services.AuthService
	tokens *services.TokenService
}

func NewAuthController(auth *services.AuthService, tokens *services.TokenService) *AuthController {
	return &AuthController{auth: auth, tokens: tokens}
}

func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := ctrl.auth.Register(reqData.Email, reqData.Username, reqData.Password)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", user)
}

func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result, err := ctrl.auth.Login(reqData.Email, reqData.Password)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	middleware.SetAccessCookie(c, result.AccessToken, ctrl.tokens.AccessTTL())
	middleware.SetRefreshCookie(c, result.RefreshToken, ctrl.tokens.RefreshTTL())

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully.", fiber.Map{
		"user": fiber.Map{
			"id":       result.User.ID,
			"username": result.User.Username,
			"email":    result.User.Email,
			"role":     result.User.Role,
		},
		"accessToken":  result.AccessToken,
		"refreshToken": result.RefreshToken,
	})
}

func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	refreshToken, ok := c.Locals("refreshToken").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Refresh token required!", nil)
	}

	accessToken, err := ctrl.auth.Refresh(refreshToken)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	middleware.SetAccessCookie(c, accessToken, ctrl.tokens.AccessTTL())
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Token refreshed.", fiber.Map{
		"accessToken": accessToken,
	})
}

// Logout revokes the refresh credential and clears cookies. Intentionally
// lenient: no valid access token is required, and revoking an unknown token
// still reports success.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refreshToken")
	if refreshToken == "" {
		reqData := new(struct {
			RefreshToken string `json:"refreshToken"`
		})
		if err := c.BodyParser(reqData); err == nil {
			refreshToken = reqData.RefreshToken
		}
	}

	var userID *uint
	if refreshToken != "" {
		if claims, err := ctrl.tokens.VerifyRefreshToken(refreshToken); err == nil {
			userID = &claims.UserID
		}
	}

	if err := ctrl.auth.Logout(refreshToken, userID); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	middleware.ClearAuthCookies(c)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out successfully.", nil)
}

func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals(middleware.LocalUserID).(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, err := ctrl.auth.Me(userID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User data.", user)
}
