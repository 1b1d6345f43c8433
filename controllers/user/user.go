package userController

import (
	"github.com/gofiber/fiber/v2"

	"github.com/PiotrO9/elearning/middleware"
	"github.com/PiotrO9/elearning/services"
	"github.com/PiotrO9/elearning/utils"
	userValidator "github.com/PiotrO9/elearning/validators/user"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func (ctrl *UserController) GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals(middleware.LocalUserID).(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, err := ctrl.users.GetProfile(userID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User profile.", user)
}

func (ctrl *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals(middleware.LocalUserID).(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData := c.Locals("validatedProfile").(*userValidator.UpdateProfileRequest)

	user, err := ctrl.users.UpdateProfile(userID, reqData.Username, reqData.Email)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully.", user)
}

func (ctrl *UserController) UpdatePassword(c *fiber.Ctx) error {
	userID, ok := c.Locals(middleware.LocalUserID).(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData := c.Locals("validatedPassword").(*userValidator.UpdatePasswordRequest)

	if err := ctrl.users.UpdatePassword(userID, reqData.CurrentPassword, reqData.NewPassword); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password updated successfully.", nil)
}

// GetStatus reports whether a user is online. Available to authenticated
// viewers.
func (ctrl *UserController) GetStatus(c *fiber.Ctx) error {
	userID := c.Locals("targetUserID").(uint)

	online, err := ctrl.users.Status(userID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	status := "offline"
	if online {
		status = "online"
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User status.", fiber.Map{"status": status})
}

// AdminUserList pages through all users.
func (ctrl *UserController) AdminUserList(c *fiber.Ctx) error {
	page := c.Locals("page").(int)
	limit := c.Locals("limit").(int)

	users, total, err := ctrl.users.List(utils.Offset(page, limit), limit)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User list.", fiber.Map{
		"users":      users,
		"pagination": utils.BuildPagination(total, page, limit),
	})
}

// AdminUpdateRole runs the role transition authority with the requester's
// own role taken from the verified credential.
func (ctrl *UserController) AdminUpdateRole(c *fiber.Ctx) error {
	requesterRole, ok := c.Locals(middleware.LocalRole).(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	targetID := c.Locals("targetUserID").(uint)
	newRole := c.Locals("newRole").(string)

	user, err := ctrl.users.ChangeRole(targetID, newRole, requesterRole)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User role updated successfully.", user)
}

// AdminDeleteUser soft-deletes an account; the row stays, the identity is
// gone for authentication and enrollment.
func (ctrl *UserController) AdminDeleteUser(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(uint)
	if err := ctrl.users.SoftDelete(targetID); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully.", nil)
}
