package repositories

import "context"

// Repository groups all repositories behind one handle
type Repository interface {
	// Account domain
	User() UserRepository
	Professor() ProfessorRepository
	Student() StudentRepository

	// Course domain
	Course() CourseRepository
	Enrollment() EnrollmentRepository
	CourseFile() CourseFileRepository

	// Session tokens (Redis or SQL)
	Token() TokenRepository

	// Transaction support
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}

// RepositoryManager interface for managing repository lifecycle
type RepositoryManager interface {
	// Initialize repositories with database connections
	Initialize() error

	// Get repository instance
	GetRepository() Repository

	// Health check for all repositories
	HealthCheck(ctx context.Context) error

	// Graceful shutdown
	Shutdown(ctx context.Context) error
}
