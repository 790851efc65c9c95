package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/events"
	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories"
	"github.com/SAP-F-2025/course-service/internal/storage"
	"github.com/SAP-F-2025/course-service/internal/validator"
)

type courseService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
	policy    AccessPolicy
	blobs     storage.BlobStore
	publisher events.Publisher
}

func NewCourseService(
	repo repositories.Repository,
	db *gorm.DB,
	logger *slog.Logger,
	validator *validator.Validator,
	policy AccessPolicy,
	blobs storage.BlobStore,
	publisher events.Publisher,
) CourseService {
	return &courseService{
		repo:      repo,
		db:        db,
		logger:    logger,
		validator: validator,
		policy:    policy,
		blobs:     blobs,
		publisher: publisher,
	}
}

// ===== CORE CRUD OPERATIONS =====

func (s *courseService) Create(ctx context.Context, actor *models.Actor, req *CreateCourseRequest) (*models.Course, error) {
	if err := s.policy.Authorize(actor, ActionCourseCreate, Target{}); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Creating course", "professor_id", actor.Professor.ID, "name", req.Name)

	if errors := s.validator.GetBusinessValidator().ValidateCourseCreate(req); len(errors) > 0 {
		return nil, errors
	}

	// professor_id always comes from the session, never from the body
	course := &models.Course{
		ProfessorID:   actor.Professor.ID,
		Name:          strings.TrimSpace(req.Name),
		Category:      models.CourseCategory(req.Category),
		Description:   req.Description,
		Duration:      req.Duration,
		Level:         models.CourseLevel(req.Level),
		EnrolledCount: 0,
	}

	if err := s.repo.Course().Create(ctx, nil, course); err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	s.logger.InfoContext(ctx, "Course created successfully", "course_id", course.ID)
	publishEvent(ctx, s.publisher, s.logger, events.CourseCreated, events.CourseEventData{
		CourseID:    course.ID,
		ProfessorID: course.ProfessorID,
		Name:        course.Name,
	})

	return s.getWithDetails(ctx, course.ID)
}

func (s *courseService) Get(ctx context.Context, actor *models.Actor, id uint) (*models.Course, error) {
	if err := s.policy.Authorize(actor, ActionCourseView, Target{}); err != nil {
		return nil, err
	}
	return s.getWithDetails(ctx, id)
}

func (s *courseService) List(ctx context.Context, actor *models.Actor, filters repositories.CourseFilters) ([]*models.Course, error) {
	if err := s.policy.Authorize(actor, ActionCourseView, Target{}); err != nil {
		return nil, err
	}

	courses, err := s.repo.Course().List(ctx, nil, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

func (s *courseService) Update(ctx context.Context, actor *models.Actor, id uint, req *UpdateCourseRequest) (*models.Course, error) {
	course, err := loadCourse(ctx, s.repo, nil, id)
	if err != nil {
		return nil, err
	}

	if err := s.policy.Authorize(actor, ActionCourseUpdate, Target{Course: course}); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Updating course", "course_id", id, "user_id", actor.UserID())

	if errors := s.validator.GetBusinessValidator().ValidateCourseUpdate(req); len(errors) > 0 {
		return nil, errors
	}

	applyCourseUpdate(course, req)

	if err := s.repo.Course().Update(ctx, nil, course); err != nil {
		return nil, fmt.Errorf("failed to update course: %w", mapNotFound(err, ErrCourseNotFound))
	}

	publishEvent(ctx, s.publisher, s.logger, events.CourseUpdated, events.CourseEventData{
		CourseID:    course.ID,
		ProfessorID: course.ProfessorID,
		Name:        course.Name,
	})

	return s.getWithDetails(ctx, course.ID)
}

func (s *courseService) Delete(ctx context.Context, actor *models.Actor, id uint) error {
	course, err := loadCourse(ctx, s.repo, nil, id)
	if err != nil {
		return err
	}

	if err := s.policy.Authorize(actor, ActionCourseDelete, Target{Course: course}); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Deleting course", "course_id", id, "user_id", actor.UserID())

	var (
		files    []*models.CourseFile
		enrolled int64
	)
	err = withTx(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		if files, err = s.repo.CourseFile().ListByCourse(ctx, tx, id); err != nil {
			return err
		}
		if enrolled, err = s.repo.Enrollment().Count(ctx, tx, id); err != nil {
			return err
		}
		if err := s.repo.Enrollment().DeleteByCourse(ctx, tx, id); err != nil {
			return err
		}
		if err := s.repo.CourseFile().DeleteByCourse(ctx, tx, id); err != nil {
			return err
		}
		return s.repo.Course().Delete(ctx, tx, id)
	})
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrCourseNotFound
		}
		return fmt.Errorf("failed to delete course: %w", err)
	}

	// records are gone; orphaned blobs are only logged
	for _, file := range files {
		if err := s.blobs.Delete(ctx, file.Filepath); err != nil {
			s.logger.WarnContext(ctx, "Failed to remove course file blob", "course_id", id, "file_id", file.ID, "error", err)
		}
	}
	if err := s.blobs.DeletePrefix(ctx, storage.CoursePrefix(id)); err != nil {
		s.logger.WarnContext(ctx, "Failed to remove course blobs", "course_id", id, "error", err)
	}

	s.logger.InfoContext(ctx, "Course deleted successfully", "course_id", id, "enrollments_removed", enrolled, "files_removed", len(files))
	publishEvent(ctx, s.publisher, s.logger, events.CourseDeleted, events.CourseEventData{
		CourseID:    course.ID,
		ProfessorID: course.ProfessorID,
		Name:        course.Name,
	})

	return nil
}

// ===== HELPERS =====

func (s *courseService) getWithDetails(ctx context.Context, id uint) (*models.Course, error) {
	course, err := s.repo.Course().GetByIDWithDetails(ctx, nil, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return course, nil
}

func applyCourseUpdate(course *models.Course, req *UpdateCourseRequest) {
	if req.Name != nil {
		course.Name = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		course.Category = models.CourseCategory(*req.Category)
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Duration != nil {
		course.Duration = *req.Duration
	}
	if req.Level != nil {
		course.Level = models.CourseLevel(*req.Level)
	}
}
