package services

import (
	"context"
	"io"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories"
	"github.com/SAP-F-2025/course-service/internal/validator"
)

// ===== REQUEST / RESPONSE TYPES =====

type CreateCourseRequest = validator.CourseCreateRequest
type UpdateCourseRequest = validator.CourseUpdateRequest
type LoginRequest = validator.LoginRequest
type RegisterRequest = validator.RegisterRequest

type LoginResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// UploadInput is one multipart file as received by the transport layer.
type UploadInput struct {
	Reader      io.Reader
	Size        int64
	Filename    string
	ContentType string
}

type RosterExport struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ===== SERVICES =====

// AuthService issues, validates and revokes opaque bearer tokens.
type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*models.Actor, error)
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	// Validate resolves a bearer token into the calling actor.
	Validate(ctx context.Context, token string) (*models.Actor, error)
	Logout(ctx context.Context, token string) error
	// LogoutAll revokes every session of the actor, the current one included.
	LogoutAll(ctx context.Context, actor *models.Actor) error
}

type CourseService interface {
	List(ctx context.Context, actor *models.Actor, filters repositories.CourseFilters) ([]*models.Course, error)
	Get(ctx context.Context, actor *models.Actor, id uint) (*models.Course, error)
	Create(ctx context.Context, actor *models.Actor, req *CreateCourseRequest) (*models.Course, error)
	Update(ctx context.Context, actor *models.Actor, id uint, req *UpdateCourseRequest) (*models.Course, error)
	// Delete removes the course with its enrollments, file records and blobs.
	Delete(ctx context.Context, actor *models.Actor, id uint) error
}

// EnrollmentService is the course/student ledger.
type EnrollmentService interface {
	Enroll(ctx context.Context, actor *models.Actor, courseID, studentID uint) (*models.Enrollment, error)
	Unenroll(ctx context.Context, actor *models.Actor, courseID, studentID uint) error
	ListStudents(ctx context.Context, actor *models.Actor, courseID uint) ([]*models.Student, error)
	// ListCourses lists the courses of the student bound to userID.
	ListCourses(ctx context.Context, actor *models.Actor, userID uint) ([]*models.Course, error)
	ExportRoster(ctx context.Context, actor *models.Actor, courseID uint) (*RosterExport, error)
}

// CourseFileService stores course material blobs and their metadata.
type CourseFileService interface {
	Upload(ctx context.Context, actor *models.Actor, courseID uint, in UploadInput) (*models.CourseFile, error)
	Delete(ctx context.Context, actor *models.Actor, courseID, fileID uint) error
	// Download returns the record and an open reader the caller must close.
	Download(ctx context.Context, actor *models.Actor, courseID, fileID uint) (*models.CourseFile, io.ReadCloser, error)
	MaxUploadSize() int64
}

type DirectoryService interface {
	ListStudents(ctx context.Context, actor *models.Actor) ([]*models.Student, error)
	ListProfessors(ctx context.Context, actor *models.Actor) ([]*models.Professor, error)
	GetStudent(ctx context.Context, actor *models.Actor, id uint) (*models.Student, error)
	GetProfessor(ctx context.Context, actor *models.Actor, id uint) (*models.Professor, error)
}

// ServiceManager owns service construction and lifecycle.
type ServiceManager interface {
	Auth() AuthService
	Course() CourseService
	Enrollment() EnrollmentService
	CourseFile() CourseFileService
	Directory() DirectoryService
	Policy() AccessPolicy

	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
