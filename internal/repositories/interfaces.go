package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/models"
)

// ===== FILTERS =====

type CourseFilters struct {
	Category    *models.CourseCategory
	Level       *models.CourseLevel
	ProfessorID *uint

	Limit  int
	Offset int
}

// ===== ACCOUNTS =====

type UserRepository interface {
	Create(ctx context.Context, tx *gorm.DB, user *models.User) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, tx *gorm.DB, email string) (bool, error)
}

type ProfessorRepository interface {
	Create(ctx context.Context, tx *gorm.DB, professor *models.Professor) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Professor, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uint) (*models.Professor, error)
	List(ctx context.Context, tx *gorm.DB) ([]*models.Professor, error)
}

type StudentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, student *models.Student) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Student, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uint) (*models.Student, error)
	ExistsByIndex(ctx context.Context, tx *gorm.DB, index string) (bool, error)
	List(ctx context.Context, tx *gorm.DB) ([]*models.Student, error)
}

// ===== COURSES =====

type CourseRepository interface {
	Create(ctx context.Context, tx *gorm.DB, course *models.Course) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Course, error)
	GetByIDWithDetails(ctx context.Context, tx *gorm.DB, id uint) (*models.Course, error)
	Update(ctx context.Context, tx *gorm.DB, course *models.Course) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	List(ctx context.Context, tx *gorm.DB, filters CourseFilters) ([]*models.Course, error)
	Exists(ctx context.Context, tx *gorm.DB, id uint) (bool, error)

	// AdjustEnrolledCount adds delta to enrolled_count in the database, not in memory.
	AdjustEnrolledCount(ctx context.Context, tx *gorm.DB, id uint, delta int) error
}

// EnrollmentRepository owns the course/student join table.
type EnrollmentRepository interface {
	// Create fails with ErrDuplicate when the pair already exists.
	Create(ctx context.Context, tx *gorm.DB, enrollment *models.Enrollment) error
	Delete(ctx context.Context, tx *gorm.DB, courseID, studentID uint) error
	DeleteByCourse(ctx context.Context, tx *gorm.DB, courseID uint) error
	Exists(ctx context.Context, tx *gorm.DB, courseID, studentID uint) (bool, error)
	Count(ctx context.Context, tx *gorm.DB, courseID uint) (int64, error)

	// ListStudents returns students of a course in enrollment order.
	ListStudents(ctx context.Context, tx *gorm.DB, courseID uint) ([]*models.Student, error)
	// ListRoster is ListStudents with account email and enrollment time.
	ListRoster(ctx context.Context, tx *gorm.DB, courseID uint) ([]*models.RosterEntry, error)
	// ListCourses returns a student's courses in enrollment order, with professor and files.
	ListCourses(ctx context.Context, tx *gorm.DB, studentID uint) ([]*models.Course, error)
}

type CourseFileRepository interface {
	Create(ctx context.Context, tx *gorm.DB, file *models.CourseFile) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.CourseFile, error)
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	DeleteByCourse(ctx context.Context, tx *gorm.DB, courseID uint) error
	ListByCourse(ctx context.Context, tx *gorm.DB, courseID uint) ([]*models.CourseFile, error)
}

// ===== SESSIONS =====

// TokenRepository maps token digests to user ids. Implementations are not transactional.
type TokenRepository interface {
	Store(ctx context.Context, tokenHash string, userID uint, ttl time.Duration) error
	// Lookup returns ErrNotFound for unknown, revoked or expired digests.
	Lookup(ctx context.Context, tokenHash string) (uint, error)
	Revoke(ctx context.Context, tokenHash string) error
	RevokeAllForUser(ctx context.Context, userID uint) error
}
