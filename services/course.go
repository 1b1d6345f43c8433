package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/PiotrO9/elearning/apperrors"
	"github.com/PiotrO9/elearning/models"
)

// CourseService covers the public read paths (with visibility resolution) and
// the admin-tier CRUD.
type CourseService struct {
	db          *gorm.DB
	enrollments *EnrollmentService
}

func NewCourseService(db *gorm.DB, enrollments *EnrollmentService) *CourseService {
	return &CourseService{db: db, enrollments: enrollments}
}

type CourseInput struct {
	Title               string
	Summary             string
	DescriptionMarkdown string
	ImagePath           string
	IsPublic            bool
}

type UpdateCourseInput struct {
	Title               *string
	Summary             *string
	DescriptionMarkdown *string
	ImagePath           *string
	IsPublic            *bool
}

// CourseDetail is a course plus the resolved access level; Videos is already
// filtered down to what the viewer may see.
type CourseDetail struct {
	Course *models.Course
	Access CourseAccess
}

// ListPublished returns the catalog every viewer may browse: published
// courses, newest first.
func (s *CourseService) ListPublished() ([]models.Course, error) {
	var courses []models.Course
	err := s.db.Where("is_published = ?", true).
		Order("created_at desc").
		Find(&courses).Error
	return courses, err
}

// GetDetail resolves the viewer's access and returns the course with its
// video list filtered accordingly. Unpublished courses are reported as not
// found to non-admin viewers so drafts never leak existence; private courses
// deny authenticated non-enrolled viewers with a code distinct from 404.
func (s *CourseService) GetDetail(courseID uint, viewer *Viewer) (*CourseDetail, error) {
	var course models.Course
	err := s.db.Preload("Videos", func(db *gorm.DB) *gorm.DB {
		return db.Order("\"order\" asc")
	}).Preload("Tags").First(&course, courseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("COURSE_NOT_FOUND", "Course not found")
	}
	if err != nil {
		return nil, err
	}

	enrolled := false
	if viewer != nil && !IsAdminTier(viewer.Role) {
		enrolled, err = s.enrollments.IsEnrolled(viewer.ID, courseID)
		if err != nil {
			return nil, err
		}
	}

	access := ResolveCourseAccess(&course, viewer, enrolled)
	switch access {
	case AccessDenied:
		if !course.IsPublished {
			return nil, apperrors.NotFound("COURSE_NOT_FOUND", "Course not found")
		}
		return nil, apperrors.Forbidden("COURSE_ACCESS_DENIED", "You do not have access to this course")
	case AccessTrailerOnly:
		course.Videos = TrailerVideos(course.Videos)
	}

	return &CourseDetail{Course: &course, Access: access}, nil
}

// Create inserts a new draft course; publishing is a separate step.
func (s *CourseService) Create(input CourseInput) (*models.Course, error) {
	course := models.Course{
		Title:               input.Title,
		Summary:             input.Summary,
		DescriptionMarkdown: input.DescriptionMarkdown,
		ImagePath:           input.ImagePath,
		IsPublic:            input.IsPublic,
	}
	if err := s.db.Create(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// Update patches the given fields of a course.
func (s *CourseService) Update(courseID uint, input UpdateCourseInput) (*models.Course, error) {
	var course models.Course
	if err := s.db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("COURSE_NOT_FOUND", "Course not found")
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Summary != nil {
		updates["summary"] = *input.Summary
	}
	if input.DescriptionMarkdown != nil {
		updates["description_markdown"] = *input.DescriptionMarkdown
	}
	if input.ImagePath != nil {
		updates["image_path"] = *input.ImagePath
	}
	if input.IsPublic != nil {
		updates["is_public"] = *input.IsPublic
	}
	if len(updates) > 0 {
		if err := s.db.Model(&course).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &course, nil
}

// SetPublished flips the draft/published switch.
func (s *CourseService) SetPublished(courseID uint, published bool) (*models.Course, error) {
	var course models.Course
	if err := s.db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("COURSE_NOT_FOUND", "Course not found")
		}
		return nil, err
	}
	if err := s.db.Model(&course).Update("is_published", published).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// Delete soft-deletes a course.
func (s *CourseService) Delete(courseID uint) error {
	result := s.db.Delete(&models.Course{}, courseID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("COURSE_NOT_FOUND", "Course not found")
	}
	return nil
}

// AdminList returns all courses, drafts included.
func (s *CourseService) AdminList(offset, limit int) ([]models.Course, int64, error) {
	var total int64
	if err := s.db.Model(&models.Course{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var courses []models.Course
	query := s.db.Order("created_at desc")
	if limit > 0 {
		query = query.Offset(offset).Limit(limit)
	}
	if err := query.Find(&courses).Error; err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

// AdminDetail returns a course with videos and tags, no visibility filter.
func (s *CourseService) AdminDetail(courseID uint) (*models.Course, error) {
	var course models.Course
	err := s.db.Preload("Videos", func(db *gorm.DB) *gorm.DB {
		return db.Order("\"order\" asc")
	}).Preload("Tags").First(&course, courseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("COURSE_NOT_FOUND", "Course not found")
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}
