package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PiotrO9/elearning/apperrors"
	"github.com/PiotrO9/elearning/models"
)

func TestTagService_CRUD(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewTagService(db)

	golang, err := svc.Create("golang")
	require.NoError(t, err)
	_, err = svc.Create("backend")
	require.NoError(t, err)

	_, err = svc.Create("golang")
	appErr := apperrors.As(err)
	assert.Equal(t, apperrors.KindConflict, appErr.Kind)
	assert.Equal(t, "TAG_EXISTS", appErr.Code)

	tags, err := svc.List()
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "backend", tags[0].Name)

	updated, err := svc.Update(golang.ID, "go")
	require.NoError(t, err)
	assert.Equal(t, "go", updated.Name)

	_, err = svc.Update(golang.ID, "backend")
	assert.Equal(t, "TAG_EXISTS", apperrors.As(err).Code)

	_, err = svc.Update(999, "missing")
	assert.Equal(t, "TAG_NOT_FOUND", apperrors.As(err).Code)

	require.NoError(t, svc.Delete(golang.ID))
	assert.Equal(t, "TAG_NOT_FOUND", apperrors.As(svc.Delete(golang.ID)).Code)
}

func TestTagService_SetCourseTags(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewTagService(db)
	course := createTestCourse(t, db, "Go basics", true, true)

	golang, err := svc.Create("golang")
	require.NoError(t, err)
	backend, err := svc.Create("backend")
	require.NoError(t, err)

	require.NoError(t, svc.SetCourseTags(course.ID, []uint{golang.ID, backend.ID}))

	var loaded models.Course
	require.NoError(t, db.Preload("Tags").First(&loaded, course.ID).Error)
	assert.Len(t, loaded.Tags, 2)

	// Replace, not append.
	require.NoError(t, svc.SetCourseTags(course.ID, []uint{backend.ID}))
	require.NoError(t, db.Preload("Tags").First(&loaded, course.ID).Error)
	require.Len(t, loaded.Tags, 1)
	assert.Equal(t, "backend", loaded.Tags[0].Name)

	// Empty set clears the association.
	require.NoError(t, svc.SetCourseTags(course.ID, nil))
	require.NoError(t, db.Preload("Tags").First(&loaded, course.ID).Error)
	assert.Empty(t, loaded.Tags)

	assert.Equal(t, "COURSE_NOT_FOUND", apperrors.As(svc.SetCourseTags(999, nil)).Code)
	assert.Equal(t, "TAG_NOT_FOUND", apperrors.As(svc.SetCourseTags(course.ID, []uint{999})).Code)
}
