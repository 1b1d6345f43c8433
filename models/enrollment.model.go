package models

import "time"

// Enrollment grants a user access to a private course. The unique index on
// (user_id, course_id) enforces one enrollment per pair even when two
// concurrent requests pass the existence check. Rows are hard-deleted on
// unenroll so the pair can be enrolled again later.
type Enrollment struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	CreatedAt  time.Time `json:"created_at"`
	UserID     uint      `json:"user_id" gorm:"uniqueIndex:idx_enrollments_user_course;not null"`
	CourseID   uint      `json:"course_id" gorm:"uniqueIndex:idx_enrollments_user_course;not null"`
	EnrolledBy *uint     `json:"enrolled_by"` // nil means self-enrollment
	User       User      `json:"user,omitempty"`
	Course     Course    `json:"course,omitempty"`
}
