package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PiotrO9/elearning/apperrors"
	"github.com/PiotrO9/elearning/models"
)

func TestEnrollmentService_Enroll(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewEnrollmentService(db)
	admin := createTestUser(t, db, "admin@example.com", "admin", models.RoleAdmin)
	user := createTestUser(t, db, "jan@example.com", "jan", models.RoleUser)
	course := createTestCourse(t, db, "Go basics", true, false)

	enrollment, err := svc.Enroll(admin.ID, user.ID, course.ID)
	require.NoError(t, err)
	require.NotNil(t, enrollment.EnrolledBy)
	assert.Equal(t, admin.ID, *enrollment.EnrolledBy)

	_, err = svc.Enroll(admin.ID, user.ID, course.ID)
	appErr := apperrors.As(err)
	assert.Equal(t, apperrors.KindConflict, appErr.Kind)
	assert.Equal(t, "ALREADY_ENROLLED", appErr.Code)

	_, err = svc.Enroll(admin.ID, user.ID, 999)
	assert.Equal(t, "COURSE_NOT_FOUND", apperrors.As(err).Code)

	_, err = svc.Enroll(admin.ID, 999, course.ID)
	assert.Equal(t, "USER_NOT_FOUND", apperrors.As(err).Code)

	draft := createTestCourse(t, db, "Draft", false, false)
	_, err = svc.Enroll(admin.ID, user.ID, draft.ID)
	appErr = apperrors.As(err)
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)
	assert.Equal(t, "COURSE_NOT_PUBLISHED", appErr.Code)
}

func TestEnrollmentService_Enroll_Concurrent(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewEnrollmentService(db)
	admin := createTestUser(t, db, "admin@example.com", "admin", models.RoleAdmin)
	user := createTestUser(t, db, "jan@example.com", "jan", models.RoleUser)
	course := createTestCourse(t, db, "Go basics", true, false)

	// N identical calls race past the existence check; the unique
	// (user_id, course_id) index lets exactly one insert through.
	const workers = 8
	results := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Enroll(admin.ID, user.ID, course.ID)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	successes := 0
	for err := range results {
		if err == nil {
			successes++
			continue
		}
		assert.Equal(t, "ALREADY_ENROLLED", apperrors.As(err).Code)
	}
	assert.Equal(t, 1, successes)

	var count int64
	require.NoError(t, db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestEnrollmentService_Enroll_DeletedUser(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewEnrollmentService(db)
	admin := createTestUser(t, db, "admin@example.com", "admin", models.RoleAdmin)
	user := createTestUser(t, db, "jan@example.com", "jan", models.RoleUser)
	course := createTestCourse(t, db, "Go basics", true, false)

	require.NoError(t, db.Delete(user).Error)

	_, err := svc.Enroll(admin.ID, user.ID, course.ID)
	assert.Equal(t, "USER_NOT_FOUND", apperrors.As(err).Code)
}

func TestEnrollmentService_SelfJoin(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewEnrollmentService(db)
	user := createTestUser(t, db, "jan@example.com", "jan", models.RoleUser)
	public := createTestCourse(t, db, "Open course", true, true)
	private := createTestCourse(t, db, "Private course", true, false)
	draft := createTestCourse(t, db, "Draft course", false, true)

	enrollment, err := svc.SelfJoin(user.ID, public.ID)
	require.NoError(t, err)
	assert.Nil(t, enrollment.EnrolledBy)

	_, err = svc.SelfJoin(user.ID, public.ID)
	assert.Equal(t, "ALREADY_ENROLLED", apperrors.As(err).Code)

	_, err = svc.SelfJoin(user.ID, private.ID)
	appErr := apperrors.As(err)
	assert.Equal(t, apperrors.KindForbidden, appErr.Kind)
	assert.Equal(t, "COURSE_NOT_PUBLIC", appErr.Code)

	_, err = svc.SelfJoin(user.ID, draft.ID)
	appErr = apperrors.As(err)
	assert.Equal(t, apperrors.KindForbidden, appErr.Kind)
	assert.Equal(t, "COURSE_NOT_PUBLISHED", appErr.Code)

	_, err = svc.SelfJoin(user.ID, 999)
	assert.Equal(t, "COURSE_NOT_FOUND", apperrors.As(err).Code)
}

func TestEnrollmentService_Unenroll(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewEnrollmentService(db)
	admin := createTestUser(t, db, "admin@example.com", "admin", models.RoleAdmin)
	user := createTestUser(t, db, "jan@example.com", "jan", models.RoleUser)
	course := createTestCourse(t, db, "Go basics", true, false)

	_, err := svc.Enroll(admin.ID, user.ID, course.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Unenroll(user.ID, course.ID))

	// Second removal is an error, not a silent success.
	err = svc.Unenroll(user.ID, course.ID)
	appErr := apperrors.As(err)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
	assert.Equal(t, "ENROLLMENT_NOT_FOUND", appErr.Code)

	// The pair can be enrolled again after removal.
	_, err = svc.Enroll(admin.ID, user.ID, course.ID)
	require.NoError(t, err)
}

func TestEnrollmentService_HasAccess(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewEnrollmentService(db)
	admin := createTestUser(t, db, "admin@example.com", "admin", models.RoleAdmin)
	user := createTestUser(t, db, "jan@example.com", "jan", models.RoleUser)
	public := createTestCourse(t, db, "Open course", true, true)
	private := createTestCourse(t, db, "Private course", true, false)
	draft := createTestCourse(t, db, "Draft course", false, true)

	ok, err := svc.HasAccess(user.ID, public.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.HasAccess(user.ID, private.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.Enroll(admin.ID, user.ID, private.ID)
	require.NoError(t, err)
	ok, err = svc.HasAccess(user.ID, private.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.HasAccess(user.ID, draft.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.HasAccess(user.ID, 999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEnrollmentService_Listings(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewEnrollmentService(db)
	admin := createTestUser(t, db, "admin@example.com", "admin", models.RoleAdmin)
	jan := createTestUser(t, db, "jan@example.com", "jan", models.RoleUser)
	ola := createTestUser(t, db, "ola@example.com", "ola", models.RoleUser)
	course := createTestCourse(t, db, "Go basics", true, false)
	other := createTestCourse(t, db, "Advanced Go", true, false)

	for _, userID := range []uint{jan.ID, ola.ID} {
		_, err := svc.Enroll(admin.ID, userID, course.ID)
		require.NoError(t, err)
	}
	_, err := svc.Enroll(admin.ID, jan.ID, other.ID)
	require.NoError(t, err)

	byCourse, total, err := svc.ListByCourse(course.ID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, byCourse, 2)
	assert.NotEmpty(t, byCourse[0].User.Username)

	byUser, total, err := svc.ListByUser(jan.ID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, byUser, 2)
	assert.NotEmpty(t, byUser[0].Course.Title)

	_, _, err = svc.ListByCourse(999, 0, 10)
	assert.Equal(t, "COURSE_NOT_FOUND", apperrors.As(err).Code)

	_, _, err = svc.ListByUser(999, 0, 10)
	assert.Equal(t, "USER_NOT_FOUND", apperrors.As(err).Code)
}
