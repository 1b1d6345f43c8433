package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/PiotrO9/elearning/config"
	"github.com/PiotrO9/elearning/database"
	"github.com/PiotrO9/elearning/models"
)

// setupTestDB opens a private in-memory database per test. The shared-cache
// DSN keeps every pooled connection on the same database for the test's
// lifetime.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		SaltRound:          bcrypt.MinCost,
		AccessTokenSecret:  "test-access-secret",
		RefreshTokenSecret: "test-refresh-secret",
		AccessTokenTTL:     15 * time.Minute,
		RefreshTokenTTL:    7 * 24 * time.Hour,
	}
}

func createTestUser(t *testing.T, db *gorm.DB, email, username, role string) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Email: email, Username: username, Password: string(hashed), Role: role}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestCourse(t *testing.T, db *gorm.DB, title string, published, public bool) *models.Course {
	t.Helper()

	course := models.Course{Title: title, Summary: "About " + title, IsPublished: published, IsPublic: public}
	require.NoError(t, db.Create(&course).Error)
	return &course
}

func createTestVideo(t *testing.T, db *gorm.DB, courseID uint, title string, order int, trailer bool) *models.Video {
	t.Helper()

	video := models.Video{CourseID: &courseID, Title: title, Order: order, IsTrailer: trailer}
	require.NoError(t, db.Create(&video).Error)
	return &video
}
