// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories/postgres"
)

// NewDB opens a migrated in-memory SQLite database that lives for the test.
// The pool is pinned to one connection so every statement sees the same database.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "failed to open sqlite")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, postgres.AutoMigrate(db), "failed to migrate")

	return db
}

// DiscardLogger returns a slog logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// CreateProfessor inserts a professor account and profile.
func CreateProfessor(t testing.TB, db *gorm.DB, email string) *models.Professor {
	t.Helper()

	user := &models.User{Name: "Ivan Chorbev", Email: email, Role: models.RoleProfessor}
	require.NoError(t, user.SetPassword("testtest"))
	require.NoError(t, db.WithContext(context.Background()).Create(user).Error)

	professor := &models.Professor{UserID: user.ID, Name: "Ivan", Surname: "Chorbev"}
	require.NoError(t, db.Create(professor).Error)
	professor.User = user
	return professor
}

// CreateStudent inserts a student account and profile.
func CreateStudent(t testing.TB, db *gorm.DB, email, index string) *models.Student {
	t.Helper()

	user := &models.User{Name: "Student " + index, Email: email, Role: models.RoleStudent}
	require.NoError(t, user.SetPassword("testtest"))
	require.NoError(t, db.Create(user).Error)

	student := &models.Student{UserID: user.ID, Name: "Student", Surname: index, Index: index}
	require.NoError(t, db.Create(student).Error)
	student.User = user
	return student
}

// CreateCourse inserts a course owned by professorID.
func CreateCourse(t testing.TB, db *gorm.DB, professorID uint, name string) *models.Course {
	t.Helper()

	course := &models.Course{
		ProfessorID: professorID,
		Name:        name,
		Category:    models.CategoryComputerScience,
		Description: name + " description",
		Duration:    12,
		Level:       models.LevelBeginner,
	}
	require.NoError(t, db.Create(course).Error)
	return course
}
