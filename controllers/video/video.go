package videoController

import (
	"github.com/gofiber/fiber/v2"

	"github.com/PiotrO9/elearning/middleware"
	"github.com/PiotrO9/elearning/services"
	videoValidator "github.com/PiotrO9/elearning/validators/video"
)

type VideoController struct {
	videos *services.VideoService
}

func NewVideoController(videos *services.VideoService) *VideoController {
	return &VideoController{videos: videos}
}

func (ctrl *VideoController) Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedVideo").(*videoValidator.CreateVideoRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	video, err := ctrl.videos.Create(services.CreateVideoInput{
		CourseID:        reqData.CourseID,
		Title:           reqData.Title,
		Order:           reqData.Order,
		IsTrailer:       reqData.IsTrailer,
		SourceURL:       reqData.SourceURL,
		DurationSeconds: reqData.DurationSeconds,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Video created successfully.", video)
}

func (ctrl *VideoController) Update(c *fiber.Ctx) error {
	videoID := c.Locals("videoID").(uint)
	reqData, ok := c.Locals("validatedVideoUpdate").(*videoValidator.UpdateVideoRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	video, err := ctrl.videos.Update(videoID, services.UpdateVideoInput{
		Title:           reqData.Title,
		Order:           reqData.Order,
		IsTrailer:       reqData.IsTrailer,
		SourceURL:       reqData.SourceURL,
		DurationSeconds: reqData.DurationSeconds,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video updated successfully.", video)
}

func (ctrl *VideoController) Delete(c *fiber.Ctx) error {
	videoID := c.Locals("videoID").(uint)
	if err := ctrl.videos.Delete(videoID); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video deleted successfully.", nil)
}

// Attach moves a video into a course; an occupied order slot is a conflict,
// never a silent shift of other videos.
func (ctrl *VideoController) Attach(c *fiber.Ctx) error {
	videoID := c.Locals("videoID").(uint)
	courseID := c.Locals("courseID").(uint)
	reqData := c.Locals("validatedAttach").(*videoValidator.AttachVideoRequest)

	if err := ctrl.videos.Attach(videoID, courseID, reqData.Order, reqData.IsTrailer); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video attached successfully.", nil)
}

// Detach orphans the video; the row survives without a course.
func (ctrl *VideoController) Detach(c *fiber.Ctx) error {
	videoID := c.Locals("videoID").(uint)
	if err := ctrl.videos.Detach(videoID); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video detached successfully.", nil)
}
