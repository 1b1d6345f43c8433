package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/PiotrO9/elearning/apperrors"
	"github.com/PiotrO9/elearning/models"
)

// TagService is plain CRUD plus the course association.
type TagService struct {
	db *gorm.DB
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

func (s *TagService) List() ([]models.Tag, error) {
	var tags []models.Tag
	err := s.db.Order("name asc").Find(&tags).Error
	return tags, err
}

func (s *TagService) Create(name string) (*models.Tag, error) {
	tag := models.Tag{Name: name}
	if err := s.db.Create(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("TAG_EXISTS", "Tag with this name already exists")
		}
		return nil, err
	}
	return &tag, nil
}

func (s *TagService) Update(tagID uint, name string) (*models.Tag, error) {
	var tag models.Tag
	if err := s.db.First(&tag, tagID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("TAG_NOT_FOUND", "Tag not found")
		}
		return nil, err
	}
	if err := s.db.Model(&tag).Update("name", name).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("TAG_EXISTS", "Tag with this name already exists")
		}
		return nil, err
	}
	return &tag, nil
}

func (s *TagService) Delete(tagID uint) error {
	result := s.db.Delete(&models.Tag{}, tagID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("TAG_NOT_FOUND", "Tag not found")
	}
	return nil
}

// SetCourseTags replaces a course's tag set.
func (s *TagService) SetCourseTags(courseID uint, tagIDs []uint) error {
	var course models.Course
	if err := s.db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("COURSE_NOT_FOUND", "Course not found")
		}
		return err
	}

	var tags []models.Tag
	if len(tagIDs) > 0 {
		if err := s.db.Where("id IN ?", tagIDs).Find(&tags).Error; err != nil {
			return err
		}
		if len(tags) != len(tagIDs) {
			return apperrors.NotFound("TAG_NOT_FOUND", "Tag not found")
		}
	}
	return s.db.Model(&course).Association("Tags").Replace(tags)
}
