package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories"
)

type enrollmentPostgreSQL struct {
	db *gorm.DB
}

func NewEnrollmentPostgreSQL(db *gorm.DB) repositories.EnrollmentRepository {
	return &enrollmentPostgreSQL{db: db}
}

func (r *enrollmentPostgreSQL) Create(ctx context.Context, tx *gorm.DB, enrollment *models.Enrollment) error {
	if err := getDB(r.db, tx).WithContext(ctx).
		Omit("Course", "Student").
		Create(enrollment).Error; err != nil {
		return handleDBError(err, "create enrollment")
	}
	return nil
}

func (r *enrollmentPostgreSQL) Delete(ctx context.Context, tx *gorm.DB, courseID, studentID uint) error {
	result := getDB(r.db, tx).WithContext(ctx).
		Where("course_id = ? AND student_id = ?", courseID, studentID).
		Delete(&models.Enrollment{})
	if result.Error != nil {
		return handleDBError(result.Error, "delete enrollment")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "delete enrollment")
	}
	return nil
}

func (r *enrollmentPostgreSQL) DeleteByCourse(ctx context.Context, tx *gorm.DB, courseID uint) error {
	if err := getDB(r.db, tx).WithContext(ctx).
		Where("course_id = ?", courseID).
		Delete(&models.Enrollment{}).Error; err != nil {
		return handleDBError(err, "delete course enrollments")
	}
	return nil
}

func (r *enrollmentPostgreSQL) Exists(ctx context.Context, tx *gorm.DB, courseID, studentID uint) (bool, error) {
	var count int64
	if err := getDB(r.db, tx).WithContext(ctx).
		Model(&models.Enrollment{}).
		Where("course_id = ? AND student_id = ?", courseID, studentID).
		Count(&count).Error; err != nil {
		return false, handleDBError(err, "check enrollment")
	}
	return count > 0, nil
}

func (r *enrollmentPostgreSQL) Count(ctx context.Context, tx *gorm.DB, courseID uint) (int64, error) {
	var count int64
	if err := getDB(r.db, tx).WithContext(ctx).
		Model(&models.Enrollment{}).
		Where("course_id = ?", courseID).
		Count(&count).Error; err != nil {
		return 0, handleDBError(err, "count enrollments")
	}
	return count, nil
}

func (r *enrollmentPostgreSQL) ListStudents(ctx context.Context, tx *gorm.DB, courseID uint) ([]*models.Student, error) {
	students := make([]*models.Student, 0)
	if err := getDB(r.db, tx).WithContext(ctx).
		Model(&models.Student{}).
		Select("students.*").
		Joins("JOIN enrollments ON enrollments.student_id = students.id").
		Where("enrollments.course_id = ?", courseID).
		Order("enrollments.id ASC").
		Find(&students).Error; err != nil {
		return nil, handleDBError(err, "list course students")
	}
	return students, nil
}

func (r *enrollmentPostgreSQL) ListRoster(ctx context.Context, tx *gorm.DB, courseID uint) ([]*models.RosterEntry, error) {
	var enrollments []models.Enrollment
	if err := getDB(r.db, tx).WithContext(ctx).
		Preload("Student.User").
		Where("course_id = ?", courseID).
		Order("id ASC").
		Find(&enrollments).Error; err != nil {
		return nil, handleDBError(err, "list course roster")
	}

	roster := make([]*models.RosterEntry, 0, len(enrollments))
	for _, e := range enrollments {
		if e.Student == nil {
			continue
		}
		entry := &models.RosterEntry{
			Student:    *e.Student,
			EnrolledAt: e.CreatedAt,
		}
		if e.Student.User != nil {
			entry.Email = e.Student.User.Email
		}
		entry.Student.User = nil
		roster = append(roster, entry)
	}
	return roster, nil
}

func (r *enrollmentPostgreSQL) ListCourses(ctx context.Context, tx *gorm.DB, studentID uint) ([]*models.Course, error) {
	courses := make([]*models.Course, 0)
	if err := getDB(r.db, tx).WithContext(ctx).
		Model(&models.Course{}).
		Select("courses.*").
		Joins("JOIN enrollments ON enrollments.course_id = courses.id").
		Where("enrollments.student_id = ?", studentID).
		Order("enrollments.id ASC").
		Preload("Professor").
		Preload("Files").
		Find(&courses).Error; err != nil {
		return nil, handleDBError(err, "list student courses")
	}
	withFiles(courses...)
	return courses, nil
}
