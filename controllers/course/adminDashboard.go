package courseController

import (
	"github.com/gofiber/fiber/v2"

	"github.com/PiotrO9/elearning/middleware"
	"github.com/PiotrO9/elearning/services"
)

type DashboardController struct {
	dashboard *services.DashboardService
}

func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{dashboard: dashboard}
}

// Stats returns the admin dashboard counters.
func (ctrl *DashboardController) Stats(c *fiber.Ctx) error {
	stats, err := ctrl.dashboard.Stats()
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats.", stats)
}
