package models

import "gorm.io/gorm"

// Course is the central content unit. IsPublished=false hides the course from
// every non-admin path; IsPublic controls whether an enrollment is required.
type Course struct {
	gorm.Model
	Title               string  `json:"title"`
	Summary             string  `json:"summary"`
	DescriptionMarkdown string  `json:"description_markdown" gorm:"type:text"`
	ImagePath           string  `json:"image_path"`
	IsPublished         bool    `json:"is_published" gorm:"default:false"`
	IsPublic            bool    `json:"is_public" gorm:"default:false"`
	Videos              []Video `json:"videos,omitempty"`
	Tags                []Tag   `json:"tags,omitempty" gorm:"many2many:course_tags;"`
}
