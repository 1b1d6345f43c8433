package models

import "time"

// Video belongs to at most one course. CourseID is nullable: a detached video
// is kept as an orphan row. The composite unique index on (course_id, order)
// is the last line of defense for the ordering invariant; NULL course_id rows
// are not constrained by it. Videos are hard-deleted: a soft-deleted row
// would keep occupying its order slot.
type Video struct {
	ID              uint      `json:"id" gorm:"primarykey"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	CourseID        *uint     `json:"course_id" gorm:"uniqueIndex:idx_videos_course_order"`
	Title           string    `json:"title"`
	Order           int       `json:"order" gorm:"uniqueIndex:idx_videos_course_order"`
	IsTrailer       bool      `json:"is_trailer" gorm:"default:false"`
	SourceURL       string    `json:"source_url"`
	DurationSeconds *int      `json:"duration_seconds"`
}
