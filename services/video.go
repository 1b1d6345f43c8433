package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/PiotrO9/elearning/apperrors"
	"github.com/PiotrO9/elearning/models"
)

// VideoService manages videos and the per-course ordering invariant: within a
// course no two videos share an order value. Orders need not be contiguous
// and a reorder batch need not cover the whole course.
type VideoService struct {
	db *gorm.DB
}

func NewVideoService(db *gorm.DB) *VideoService {
	return &VideoService{db: db}
}

type CreateVideoInput struct {
	CourseID        uint
	Title           string
	Order           int
	IsTrailer       bool
	SourceURL       string
	DurationSeconds *int
}

type UpdateVideoInput struct {
	Title           *string
	Order           *int
	IsTrailer       *bool
	SourceURL       *string
	DurationSeconds *int
}

// ReorderItem assigns a new order value to one video of the batch.
type ReorderItem struct {
	VideoID uint `json:"videoId"`
	Order   int  `json:"order"`
}

// Create inserts a video attached to a course. An occupied order slot
// surfaces as a conflict.
func (s *VideoService) Create(input CreateVideoInput) (*models.Video, error) {
	var course models.Course
	if err := s.db.Select("id").First(&course, input.CourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("COURSE_NOT_FOUND", "Course not found")
		}
		return nil, err
	}

	video := models.Video{
		CourseID:        &input.CourseID,
		Title:           input.Title,
		Order:           input.Order,
		IsTrailer:       input.IsTrailer,
		SourceURL:       input.SourceURL,
		DurationSeconds: input.DurationSeconds,
	}
	if err := s.db.Create(&video).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("VIDEO_ORDER_CONFLICT", "Video order must be unique within course")
		}
		return nil, err
	}
	return &video, nil
}

// Update patches the given fields of a video.
func (s *VideoService) Update(videoID uint, input UpdateVideoInput) (*models.Video, error) {
	var video models.Video
	if err := s.db.First(&video, videoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("VIDEO_NOT_FOUND", "Video not found")
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Order != nil {
		updates["order"] = *input.Order
	}
	if input.IsTrailer != nil {
		updates["is_trailer"] = *input.IsTrailer
	}
	if input.SourceURL != nil {
		updates["source_url"] = *input.SourceURL
	}
	if input.DurationSeconds != nil {
		updates["duration_seconds"] = *input.DurationSeconds
	}
	if len(updates) == 0 {
		return &video, nil
	}

	if err := s.db.Model(&video).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("VIDEO_ORDER_CONFLICT", "Video order must be unique within course")
		}
		return nil, err
	}
	return &video, nil
}

// Delete removes a video outright.
func (s *VideoService) Delete(videoID uint) error {
	result := s.db.Delete(&models.Video{}, videoID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("VIDEO_NOT_FOUND", "Video not found")
	}
	return nil
}

// Attach moves a video into a course, optionally changing its order or
// trailer flag. Attaching at an occupied order value fails with a conflict
// rather than shifting other videos.
func (s *VideoService) Attach(videoID, courseID uint, order *int, isTrailer *bool) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.Select("id").First(&course, courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("COURSE_NOT_FOUND", "Course not found")
			}
			return err
		}

		var video models.Video
		if err := tx.First(&video, videoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("VIDEO_NOT_FOUND", "Video not found")
			}
			return err
		}

		updates := map[string]interface{}{"course_id": courseID}
		if order != nil {
			updates["order"] = *order
		}
		if isTrailer != nil {
			updates["is_trailer"] = *isTrailer
		}
		if err := tx.Model(&video).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.Conflict("VIDEO_ORDER_CONFLICT", "Video order must be unique within course")
			}
			return err
		}
		return nil
	})
}

// Detach orphans a video: the row is kept with a NULL course id, freeing its
// order slot in the course it left.
func (s *VideoService) Detach(videoID uint) error {
	result := s.db.Model(&models.Video{}).Where("id = ?", videoID).Update("course_id", nil)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("VIDEO_NOT_FOUND", "Video not found")
	}
	return nil
}

// Reorder applies a batch of order assignments to one course atomically.
// Input duplicates are rejected before any storage is touched; a video not
// belonging to the course aborts the whole batch. Updates happen in two
// phases inside the transaction - every touched row is first parked on a
// negative placeholder - so swaps within the batch never collide on the
// unique (course_id, order) index mid-flight. Order values are non-negative
// at the boundary, which keeps the placeholder range private to the batch.
func (s *VideoService) Reorder(courseID uint, items []ReorderItem) error {
	if len(items) == 0 {
		return nil
	}

	seenVideos := make(map[uint]struct{}, len(items))
	seenOrders := make(map[int]struct{}, len(items))
	for _, item := range items {
		if _, dup := seenVideos[item.VideoID]; dup {
			return apperrors.Validation("DUPLICATE_VIDEO_ID", fmt.Sprintf("Video %d appears more than once", item.VideoID))
		}
		seenVideos[item.VideoID] = struct{}{}
		if _, dup := seenOrders[item.Order]; dup {
			return apperrors.Validation("DUPLICATE_ORDER", fmt.Sprintf("Order %d appears more than once", item.Order))
		}
		seenOrders[item.Order] = struct{}{}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.Select("id").First(&course, courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("COURSE_NOT_FOUND", "Course not found")
			}
			return err
		}

		// Phase one: park every batch row on a placeholder. The course guard
		// on each UPDATE makes membership check and write one atomic step;
		// any miss rolls the whole batch back.
		for _, item := range items {
			result := tx.Model(&models.Video{}).
				Where("id = ? AND course_id = ?", item.VideoID, courseID).
				Update("order", -int(item.VideoID))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return apperrors.NotFound("VIDEO_NOT_IN_COURSE",
					fmt.Sprintf("Video %d does not belong to this course", item.VideoID))
			}
		}

		// Phase two: final values. A collision here means the batch clashed
		// with a video outside it.
		for _, item := range items {
			if err := tx.Model(&models.Video{}).
				Where("id = ? AND course_id = ?", item.VideoID, courseID).
				Update("order", item.Order).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return apperrors.Conflict("VIDEO_ORDER_CONFLICT", "Video order must be unique within course")
				}
				return err
			}
		}
		return nil
	})
}
