package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories"
)

type coursePostgreSQL struct {
	db *gorm.DB
}

func NewCoursePostgreSQL(db *gorm.DB) repositories.CourseRepository {
	return &coursePostgreSQL{db: db}
}

// ===== BASIC CRUD OPERATIONS =====

func (r *coursePostgreSQL) Create(ctx context.Context, tx *gorm.DB, course *models.Course) error {
	if err := getDB(r.db, tx).WithContext(ctx).Omit("Professor", "Files").Create(course).Error; err != nil {
		return handleDBError(err, "create course")
	}
	return nil
}

func (r *coursePostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Course, error) {
	var course models.Course
	if err := getDB(r.db, tx).WithContext(ctx).First(&course, id).Error; err != nil {
		return nil, handleDBError(err, "get course by id")
	}
	return &course, nil
}

func (r *coursePostgreSQL) GetByIDWithDetails(ctx context.Context, tx *gorm.DB, id uint) (*models.Course, error) {
	var course models.Course
	if err := getDB(r.db, tx).WithContext(ctx).
		Preload("Professor").
		Preload("Files", func(db *gorm.DB) *gorm.DB {
			return db.Order("course_files.id ASC")
		}).
		First(&course, id).Error; err != nil {
		return nil, handleDBError(err, "get course with details")
	}
	withFiles(&course)
	return &course, nil
}

// Update writes the editable columns only. enrolled_count is owned by AdjustEnrolledCount.
func (r *coursePostgreSQL) Update(ctx context.Context, tx *gorm.DB, course *models.Course) error {
	result := getDB(r.db, tx).WithContext(ctx).
		Model(course).
		Select("name", "category", "description", "duration", "level", "updated_at").
		Updates(course)
	if result.Error != nil {
		return handleDBError(result.Error, "update course")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "update course")
	}
	return nil
}

func (r *coursePostgreSQL) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	result := getDB(r.db, tx).WithContext(ctx).Delete(&models.Course{}, id)
	if result.Error != nil {
		return handleDBError(result.Error, "delete course")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "delete course")
	}
	return nil
}

// ===== QUERY OPERATIONS =====

func (r *coursePostgreSQL) List(ctx context.Context, tx *gorm.DB, filters repositories.CourseFilters) ([]*models.Course, error) {
	courses := make([]*models.Course, 0)

	query := getDB(r.db, tx).WithContext(ctx).Model(&models.Course{})
	query = r.applyFilters(query, filters)

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	if err := query.
		Preload("Professor").
		Preload("Files").
		Order("courses.id ASC").
		Find(&courses).Error; err != nil {
		return nil, handleDBError(err, "list courses")
	}

	withFiles(courses...)
	return courses, nil
}

func (r *coursePostgreSQL) Exists(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := getDB(r.db, tx).WithContext(ctx).
		Model(&models.Course{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, handleDBError(err, "check course exists")
	}
	return count > 0, nil
}

func (r *coursePostgreSQL) AdjustEnrolledCount(ctx context.Context, tx *gorm.DB, id uint, delta int) error {
	result := getDB(r.db, tx).WithContext(ctx).
		Model(&models.Course{}).
		Where("id = ?", id).
		UpdateColumn("enrolled_count", gorm.Expr("enrolled_count + ?", delta))
	if result.Error != nil {
		return handleDBError(result.Error, fmt.Sprintf("adjust enrolled count by %d", delta))
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "adjust enrolled count")
	}
	return nil
}

func (r *coursePostgreSQL) applyFilters(query *gorm.DB, filters repositories.CourseFilters) *gorm.DB {
	if filters.Category != nil {
		query = query.Where("category = ?", *filters.Category)
	}
	if filters.Level != nil {
		query = query.Where("level = ?", *filters.Level)
	}
	if filters.ProfessorID != nil {
		query = query.Where("professor_id = ?", *filters.ProfessorID)
	}
	return query
}

// withFiles makes an empty Preload result serialize as "files": [] instead of null.
func withFiles(courses ...*models.Course) {
	for _, c := range courses {
		if c.Files == nil {
			c.Files = []models.CourseFile{}
		}
	}
}
