package services

import "github.com/PiotrO9/elearning/models"

// CourseAccess is the outcome of resolving a viewer against a course.
type CourseAccess int

const (
	AccessDenied CourseAccess = iota
	AccessTrailerOnly
	AccessFull
)

// Viewer identifies an authenticated requester. A nil *Viewer means a guest.
type Viewer struct {
	ID   uint
	Role string
}

// ResolveCourseAccess decides what a viewer may see of a course. It is a pure
// function of the course flags, the viewer's role and whether an enrollment
// exists; callers supply the enrollment lookup result.
//
// Policy for guests (documented decision): a guest on any published course
// gets AccessTrailerOnly. Only the course-detail read path honors it; every
// other operation treats anything below AccessFull as denied. Authenticated
// non-enrolled viewers of a private course are denied outright.
func ResolveCourseAccess(course *models.Course, viewer *Viewer, enrolled bool) CourseAccess {
	// Admin tier sees everything, drafts included.
	if viewer != nil && IsAdminTier(viewer.Role) {
		return AccessFull
	}
	if !course.IsPublished {
		return AccessDenied
	}
	if viewer == nil {
		return AccessTrailerOnly
	}
	if course.IsPublic {
		return AccessFull
	}
	if enrolled {
		return AccessFull
	}
	return AccessDenied
}

// TrailerVideos filters a course's video list down to trailers. Trailer
// uniqueness is not enforced by the model, so all flagged videos are kept.
func TrailerVideos(videos []models.Video) []models.Video {
	trailers := make([]models.Video, 0, 1)
	for _, v := range videos {
		if v.IsTrailer {
			trailers = append(trailers, v)
		}
	}
	return trailers
}
