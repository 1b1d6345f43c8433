package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/PiotrO9/elearning/apperrors"
	"github.com/PiotrO9/elearning/models"
)

// EnrollmentService is the enrollment ledger. Every mutating operation runs
// its existence checks and its write inside one transaction; the unique
// (user_id, course_id) index backstops the remaining race window.
type EnrollmentService struct {
	db *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{db: db}
}

// Enroll records an admin assigning a user to a course.
func (s *EnrollmentService) Enroll(adminID, userID, courseID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.Select("id", "is_published").First(&course, courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("COURSE_NOT_FOUND", "Course not found")
			}
			return err
		}
		if !course.IsPublished {
			return apperrors.Validation("COURSE_NOT_PUBLISHED", "Cannot enroll in unpublished course")
		}

		// Soft-deleted users are excluded by the default scope.
		var user models.User
		if err := tx.Select("id").First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("USER_NOT_FOUND", "User not found")
			}
			return err
		}

		var existing models.Enrollment
		err := tx.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error
		if err == nil {
			return apperrors.Conflict("ALREADY_ENROLLED", "User already enrolled")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		enrollment = models.Enrollment{UserID: userID, CourseID: courseID, EnrolledBy: &adminID}
		if err := tx.Create(&enrollment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.Conflict("ALREADY_ENROLLED", "User already enrolled")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// SelfJoin records a user joining a public course on their own; EnrolledBy
// stays nil.
func (s *EnrollmentService) SelfJoin(userID, courseID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.Select("id", "is_published", "is_public").First(&course, courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("COURSE_NOT_FOUND", "Course not found")
			}
			return err
		}
		if !course.IsPublished {
			return apperrors.Forbidden("COURSE_NOT_PUBLISHED", "Course is not published")
		}
		if !course.IsPublic {
			return apperrors.Forbidden("COURSE_NOT_PUBLIC", "Course is not public")
		}

		var existing models.Enrollment
		err := tx.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error
		if err == nil {
			return apperrors.Conflict("ALREADY_ENROLLED", "Already enrolled")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		enrollment = models.Enrollment{UserID: userID, CourseID: courseID}
		if err := tx.Create(&enrollment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.Conflict("ALREADY_ENROLLED", "Already enrolled")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// Unenroll removes an enrollment. Not idempotent: a second call reports
// ENROLLMENT_NOT_FOUND rather than succeeding silently.
func (s *EnrollmentService) Unenroll(userID, courseID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND course_id = ?", userID, courseID).Delete(&models.Enrollment{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFound("ENROLLMENT_NOT_FOUND", "Enrollment not found")
		}
		return nil
	})
}

// IsEnrolled reports whether an enrollment row exists for the pair.
func (s *EnrollmentService) IsEnrolled(userID, courseID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	return count > 0, err
}

// HasAccess is the visibility building block: true when the course is public
// and published, or when an enrollment exists.
func (s *EnrollmentService) HasAccess(userID, courseID uint) (bool, error) {
	var course models.Course
	err := s.db.Select("id", "is_published", "is_public").First(&course, courseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !course.IsPublished {
		return false, nil
	}
	if course.IsPublic {
		return true, nil
	}
	return s.IsEnrolled(userID, courseID)
}

// ListByCourse returns the users enrolled in a course, newest first.
func (s *EnrollmentService) ListByCourse(courseID uint, offset, limit int) ([]models.Enrollment, int64, error) {
	var course models.Course
	if err := s.db.Select("id").First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, apperrors.NotFound("COURSE_NOT_FOUND", "Course not found")
		}
		return nil, 0, err
	}

	var total int64
	if err := s.db.Model(&models.Enrollment{}).Where("course_id = ?", courseID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var enrollments []models.Enrollment
	query := s.db.Where("course_id = ?", courseID).Preload("User").Order("created_at desc")
	if limit > 0 {
		query = query.Offset(offset).Limit(limit)
	}
	if err := query.Find(&enrollments).Error; err != nil {
		return nil, 0, err
	}
	return enrollments, total, nil
}

// ListByUser returns the courses a user is enrolled in, newest first.
func (s *EnrollmentService) ListByUser(userID uint, offset, limit int) ([]models.Enrollment, int64, error) {
	var user models.User
	if err := s.db.Select("id").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, apperrors.NotFound("USER_NOT_FOUND", "User not found")
		}
		return nil, 0, err
	}

	var total int64
	if err := s.db.Model(&models.Enrollment{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var enrollments []models.Enrollment
	query := s.db.Where("user_id = ?", userID).Preload("Course").Order("created_at desc")
	if limit > 0 {
		query = query.Offset(offset).Limit(limit)
	}
	if err := query.Find(&enrollments).Error; err != nil {
		return nil, 0, err
	}
	return enrollments, total, nil
}
