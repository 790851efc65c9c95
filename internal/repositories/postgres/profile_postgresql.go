package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories"
)

type professorPostgreSQL struct {
	db *gorm.DB
}

func NewProfessorPostgreSQL(db *gorm.DB) repositories.ProfessorRepository {
	return &professorPostgreSQL{db: db}
}

func (r *professorPostgreSQL) Create(ctx context.Context, tx *gorm.DB, professor *models.Professor) error {
	if err := getDB(r.db, tx).WithContext(ctx).Create(professor).Error; err != nil {
		return handleDBError(err, "create professor")
	}
	return nil
}

func (r *professorPostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Professor, error) {
	var professor models.Professor
	if err := getDB(r.db, tx).WithContext(ctx).First(&professor, id).Error; err != nil {
		return nil, handleDBError(err, "get professor by id")
	}
	return &professor, nil
}

func (r *professorPostgreSQL) GetByUserID(ctx context.Context, tx *gorm.DB, userID uint) (*models.Professor, error) {
	var professor models.Professor
	if err := getDB(r.db, tx).WithContext(ctx).
		Where("user_id = ?", userID).
		First(&professor).Error; err != nil {
		return nil, handleDBError(err, "get professor by user id")
	}
	return &professor, nil
}

func (r *professorPostgreSQL) List(ctx context.Context, tx *gorm.DB) ([]*models.Professor, error) {
	professors := make([]*models.Professor, 0)
	if err := getDB(r.db, tx).WithContext(ctx).
		Order("surname ASC, name ASC, id ASC").
		Find(&professors).Error; err != nil {
		return nil, handleDBError(err, "list professors")
	}
	return professors, nil
}

type studentPostgreSQL struct {
	db *gorm.DB
}

func NewStudentPostgreSQL(db *gorm.DB) repositories.StudentRepository {
	return &studentPostgreSQL{db: db}
}

func (r *studentPostgreSQL) Create(ctx context.Context, tx *gorm.DB, student *models.Student) error {
	if err := getDB(r.db, tx).WithContext(ctx).Create(student).Error; err != nil {
		return handleDBError(err, "create student")
	}
	return nil
}

func (r *studentPostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Student, error) {
	var student models.Student
	if err := getDB(r.db, tx).WithContext(ctx).First(&student, id).Error; err != nil {
		return nil, handleDBError(err, "get student by id")
	}
	return &student, nil
}

func (r *studentPostgreSQL) GetByUserID(ctx context.Context, tx *gorm.DB, userID uint) (*models.Student, error) {
	var student models.Student
	if err := getDB(r.db, tx).WithContext(ctx).
		Where("user_id = ?", userID).
		First(&student).Error; err != nil {
		return nil, handleDBError(err, "get student by user id")
	}
	return &student, nil
}

func (r *studentPostgreSQL) ExistsByIndex(ctx context.Context, tx *gorm.DB, index string) (bool, error) {
	var count int64
	if err := getDB(r.db, tx).WithContext(ctx).
		Model(&models.Student{}).
		Where("index_number = ?", index).
		Count(&count).Error; err != nil {
		return false, handleDBError(err, "check student index")
	}
	return count > 0, nil
}

func (r *studentPostgreSQL) List(ctx context.Context, tx *gorm.DB) ([]*models.Student, error) {
	students := make([]*models.Student, 0)
	if err := getDB(r.db, tx).WithContext(ctx).
		Order("index_number ASC").
		Find(&students).Error; err != nil {
		return nil, handleDBError(err, "list students")
	}
	return students, nil
}
