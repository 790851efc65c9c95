package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories"
)

type courseFilePostgreSQL struct {
	db *gorm.DB
}

func NewCourseFilePostgreSQL(db *gorm.DB) repositories.CourseFileRepository {
	return &courseFilePostgreSQL{db: db}
}

func (r *courseFilePostgreSQL) Create(ctx context.Context, tx *gorm.DB, file *models.CourseFile) error {
	if err := getDB(r.db, tx).WithContext(ctx).Create(file).Error; err != nil {
		return handleDBError(err, "create course file")
	}
	return nil
}

func (r *courseFilePostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.CourseFile, error) {
	var file models.CourseFile
	if err := getDB(r.db, tx).WithContext(ctx).First(&file, id).Error; err != nil {
		return nil, handleDBError(err, "get course file by id")
	}
	return &file, nil
}

func (r *courseFilePostgreSQL) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	result := getDB(r.db, tx).WithContext(ctx).Delete(&models.CourseFile{}, id)
	if result.Error != nil {
		return handleDBError(result.Error, "delete course file")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "delete course file")
	}
	return nil
}

func (r *courseFilePostgreSQL) DeleteByCourse(ctx context.Context, tx *gorm.DB, courseID uint) error {
	if err := getDB(r.db, tx).WithContext(ctx).
		Where("course_id = ?", courseID).
		Delete(&models.CourseFile{}).Error; err != nil {
		return handleDBError(err, "delete course files")
	}
	return nil
}

func (r *courseFilePostgreSQL) ListByCourse(ctx context.Context, tx *gorm.DB, courseID uint) ([]*models.CourseFile, error) {
	files := make([]*models.CourseFile, 0)
	if err := getDB(r.db, tx).WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("id ASC").
		Find(&files).Error; err != nil {
		return nil, handleDBError(err, "list course files")
	}
	return files, nil
}
