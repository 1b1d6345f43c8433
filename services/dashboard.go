package services

import (
	"gorm.io/gorm"

	"github.com/PiotrO9/elearning/models"
)

// DashboardService aggregates the counters shown on the admin dashboard.
type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

type DashboardStats struct {
	TotalUsers       int64 `json:"total_users"`
	OnlineUsers      int64 `json:"online_users"`
	TotalCourses     int64 `json:"total_courses"`
	PublishedCourses int64 `json:"published_courses"`
	TotalVideos      int64 `json:"total_videos"`
	TotalEnrollments int64 `json:"total_enrollments"`
	TotalTags        int64 `json:"total_tags"`
}

func (s *DashboardService) Stats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.TotalUsers, s.db.Model(&models.User{})},
		{&stats.OnlineUsers, s.db.Model(&models.User{}).Where("is_online = ?", true)},
		{&stats.TotalCourses, s.db.Model(&models.Course{})},
		{&stats.PublishedCourses, s.db.Model(&models.Course{}).Where("is_published = ?", true)},
		{&stats.TotalVideos, s.db.Model(&models.Video{})},
		{&stats.TotalEnrollments, s.db.Model(&models.Enrollment{})},
		{&stats.TotalTags, s.db.Model(&models.Tag{})},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return stats, nil
}
