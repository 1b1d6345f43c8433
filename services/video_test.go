package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/PiotrO9/elearning/apperrors"
	"github.com/PiotrO9/elearning/models"
)

func courseOrders(t *testing.T, db *gorm.DB, courseID uint) map[uint]int {
	t.Helper()

	var videos []models.Video
	require.NoError(t, db.Where("course_id = ?", courseID).Find(&videos).Error)
	orders := make(map[uint]int, len(videos))
	for _, v := range videos {
		orders[v.ID] = v.Order
	}
	return orders
}

func TestVideoService_Create(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewVideoService(db)
	course := createTestCourse(t, db, "Go basics", true, false)

	video, err := svc.Create(CreateVideoInput{CourseID: course.ID, Title: "Intro", Order: 0, IsTrailer: true})
	require.NoError(t, err)
	assert.NotZero(t, video.ID)

	// Occupied order slot in the same course.
	_, err = svc.Create(CreateVideoInput{CourseID: course.ID, Title: "Lesson 1", Order: 0})
	appErr := apperrors.As(err)
	assert.Equal(t, apperrors.KindConflict, appErr.Kind)
	assert.Equal(t, "VIDEO_ORDER_CONFLICT", appErr.Code)

	// The same order value in another course is fine.
	other := createTestCourse(t, db, "Advanced Go", true, false)
	_, err = svc.Create(CreateVideoInput{CourseID: other.ID, Title: "Intro", Order: 0})
	require.NoError(t, err)

	_, err = svc.Create(CreateVideoInput{CourseID: 999, Title: "Nowhere", Order: 0})
	assert.Equal(t, "COURSE_NOT_FOUND", apperrors.As(err).Code)
}

func TestVideoService_Update(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewVideoService(db)
	course := createTestCourse(t, db, "Go basics", true, false)
	v1 := createTestVideo(t, db, course.ID, "Intro", 0, true)
	createTestVideo(t, db, course.ID, "Lesson 1", 1, false)

	title := "Welcome"
	updated, err := svc.Update(v1.ID, UpdateVideoInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Welcome", updated.Title)

	conflicting := 1
	_, err = svc.Update(v1.ID, UpdateVideoInput{Order: &conflicting})
	assert.Equal(t, "VIDEO_ORDER_CONFLICT", apperrors.As(err).Code)

	_, err = svc.Update(999, UpdateVideoInput{Title: &title})
	assert.Equal(t, "VIDEO_NOT_FOUND", apperrors.As(err).Code)
}

func TestVideoService_DetachAndAttach(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewVideoService(db)
	course := createTestCourse(t, db, "Go basics", true, false)
	other := createTestCourse(t, db, "Advanced Go", true, false)
	v1 := createTestVideo(t, db, course.ID, "Intro", 0, false)
	createTestVideo(t, db, other.ID, "Intro", 0, false)

	require.NoError(t, svc.Detach(v1.ID))

	var orphan models.Video
	require.NoError(t, db.First(&orphan, v1.ID).Error)
	assert.Nil(t, orphan.CourseID)

	// Detaching freed the slot, so a new video can take order 0.
	_, err := svc.Create(CreateVideoInput{CourseID: course.ID, Title: "New intro", Order: 0})
	require.NoError(t, err)

	// Re-attaching into the other course at its occupied slot conflicts.
	err = svc.Attach(v1.ID, other.ID, nil, nil)
	assert.Equal(t, "VIDEO_ORDER_CONFLICT", apperrors.As(err).Code)

	free := 5
	require.NoError(t, svc.Attach(v1.ID, other.ID, &free, nil))

	var moved models.Video
	require.NoError(t, db.First(&moved, v1.ID).Error)
	require.NotNil(t, moved.CourseID)
	assert.Equal(t, other.ID, *moved.CourseID)
	assert.Equal(t, 5, moved.Order)

	assert.Equal(t, "VIDEO_NOT_FOUND", apperrors.As(svc.Detach(999)).Code)
	assert.Equal(t, "COURSE_NOT_FOUND", apperrors.As(svc.Attach(v1.ID, 999, nil, nil)).Code)
}

func TestVideoService_Delete(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewVideoService(db)
	course := createTestCourse(t, db, "Go basics", true, false)
	v1 := createTestVideo(t, db, course.ID, "Intro", 0, false)

	require.NoError(t, svc.Delete(v1.ID))
	assert.Equal(t, "VIDEO_NOT_FOUND", apperrors.As(svc.Delete(v1.ID)).Code)

	// Hard delete frees the order slot.
	_, err := svc.Create(CreateVideoInput{CourseID: course.ID, Title: "Intro again", Order: 0})
	require.NoError(t, err)
}

func TestVideoService_Reorder(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewVideoService(db)
	course := createTestCourse(t, db, "Go basics", true, false)
	v1 := createTestVideo(t, db, course.ID, "Intro", 0, false)
	v2 := createTestVideo(t, db, course.ID, "Lesson 1", 1, false)
	v3 := createTestVideo(t, db, course.ID, "Lesson 2", 2, false)

	// Swapping two videos collides transiently on the unique index; the
	// batch must still land.
	err := svc.Reorder(course.ID, []ReorderItem{
		{VideoID: v1.ID, Order: 1},
		{VideoID: v2.ID, Order: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, map[uint]int{v1.ID: 1, v2.ID: 0, v3.ID: 2}, courseOrders(t, db, course.ID))

	// Partial batches leave untouched videos alone.
	require.NoError(t, svc.Reorder(course.ID, []ReorderItem{{VideoID: v3.ID, Order: 7}}))
	assert.Equal(t, 7, courseOrders(t, db, course.ID)[v3.ID])

	// Empty batch is a no-op.
	require.NoError(t, svc.Reorder(course.ID, nil))
}

func TestVideoService_Reorder_InvalidBatches(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewVideoService(db)
	course := createTestCourse(t, db, "Go basics", true, false)
	other := createTestCourse(t, db, "Advanced Go", true, false)
	v1 := createTestVideo(t, db, course.ID, "Intro", 0, false)
	v2 := createTestVideo(t, db, course.ID, "Lesson 1", 1, false)
	foreign := createTestVideo(t, db, other.ID, "Elsewhere", 0, false)

	before := courseOrders(t, db, course.ID)

	err := svc.Reorder(course.ID, []ReorderItem{
		{VideoID: v1.ID, Order: 3},
		{VideoID: v1.ID, Order: 4},
	})
	assert.Equal(t, "DUPLICATE_VIDEO_ID", apperrors.As(err).Code)

	err = svc.Reorder(course.ID, []ReorderItem{
		{VideoID: v1.ID, Order: 3},
		{VideoID: v2.ID, Order: 3},
	})
	assert.Equal(t, "DUPLICATE_ORDER", apperrors.As(err).Code)

	// A video from another course aborts the whole batch; rows already
	// parked roll back.
	err = svc.Reorder(course.ID, []ReorderItem{
		{VideoID: v1.ID, Order: 3},
		{VideoID: foreign.ID, Order: 4},
	})
	assert.Equal(t, "VIDEO_NOT_IN_COURSE", apperrors.As(err).Code)

	err = svc.Reorder(999, []ReorderItem{{VideoID: v1.ID, Order: 3}})
	assert.Equal(t, "COURSE_NOT_FOUND", apperrors.As(err).Code)

	// Colliding with a video outside the batch rolls back too.
	err = svc.Reorder(course.ID, []ReorderItem{{VideoID: v1.ID, Order: 1}})
	assert.Equal(t, "VIDEO_ORDER_CONFLICT", apperrors.As(err).Code)

	assert.Equal(t, before, courseOrders(t, db, course.ID))
	assert.Equal(t, 0, courseOrders(t, db, other.ID)[foreign.ID])
}
