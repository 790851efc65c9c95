package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/events"
	"github.com/SAP-F-2025/course-service/internal/repositories"
	"github.com/SAP-F-2025/course-service/internal/storage"
	"github.com/SAP-F-2025/course-service/internal/validator"
)

// ServiceManagerConfig holds configuration for the service manager
type ServiceManagerConfig struct {
	Blobs     storage.BlobStore
	Publisher events.Publisher

	// Zero keeps sessions until logout.
	TokenTTL      time.Duration
	MaxUploadSize int64
}

// serviceManager implements ServiceManager interface
type serviceManager struct {
	// Dependencies
	db        *gorm.DB
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	config    ServiceManagerConfig

	// Service instances
	policy            AccessPolicy
	authService       AuthService
	courseService     CourseService
	enrollmentService EnrollmentService
	courseFileService CourseFileService
	directoryService  DirectoryService

	// Lifecycle management
	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates a new service manager with all dependencies
func NewServiceManager(db *gorm.DB, repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, config ServiceManagerConfig) ServiceManager {
	if config.Publisher == nil {
		config.Publisher = events.NoopPublisher{}
	}
	if config.MaxUploadSize <= 0 {
		config.MaxUploadSize = DefaultMaxUploadSize
	}

	return &serviceManager{
		db:        db,
		repo:      repo,
		logger:    logger,
		validator: validator,
		config:    config,
	}
}

// Initialize sets up all services and their dependencies
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if sm.config.Blobs == nil {
		return fmt.Errorf("failed to initialize services: blob store is required")
	}

	sm.logger.Info("Initializing service manager")

	sm.policy = NewAccessPolicy()
	sm.authService = NewAuthService(sm.repo, sm.db, sm.logger, sm.validator, sm.config.TokenTTL)
	sm.courseService = NewCourseService(sm.repo, sm.db, sm.logger, sm.validator, sm.policy, sm.config.Blobs, sm.config.Publisher)
	sm.enrollmentService = NewEnrollmentService(sm.repo, sm.db, sm.logger, sm.policy, sm.config.Publisher)
	sm.courseFileService = NewCourseFileService(sm.repo, sm.db, sm.logger, sm.policy, sm.config.Blobs, sm.config.Publisher, sm.config.MaxUploadSize)
	sm.directoryService = NewDirectoryService(sm.repo, sm.logger, sm.policy)

	sm.initialized = true
	sm.logger.Info("Service manager initialized successfully")

	return nil
}

func (sm *serviceManager) mustBeReady(name string) {
	if !sm.initialized {
		panic("service manager not initialized")
	}
	if sm.shutdown {
		panic(name + " service requested after shutdown")
	}
}

// Service getters
func (sm *serviceManager) Auth() AuthService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeReady("auth")
	return sm.authService
}

func (sm *serviceManager) Course() CourseService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeReady("course")
	return sm.courseService
}

func (sm *serviceManager) Enrollment() EnrollmentService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeReady("enrollment")
	return sm.enrollmentService
}

func (sm *serviceManager) CourseFile() CourseFileService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeReady("course file")
	return sm.courseFileService
}

func (sm *serviceManager) Directory() DirectoryService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeReady("directory")
	return sm.directoryService
}

func (sm *serviceManager) Policy() AccessPolicy {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeReady("policy")
	return sm.policy
}

// HealthCheck pings the repository
func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		return fmt.Errorf("service manager not initialized")
	}
	if sm.shutdown {
		return fmt.Errorf("service manager is shut down")
	}

	if err := sm.repo.Ping(ctx); err != nil {
		return fmt.Errorf("repository health check failed: %w", err)
	}
	return nil
}

// Shutdown closes the event publisher. Repository connections are closed by their manager.
func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.logger.Info("Shutting down service manager")
	sm.shutdown = true

	if err := sm.config.Publisher.Close(); err != nil {
		return fmt.Errorf("failed to close event publisher: %w", err)
	}

	sm.logger.Info("Service manager shut down")
	return nil
}
