package services

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/events"
	"github.com/SAP-F-2025/course-service/internal/export"
	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories"
)

type enrollmentService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	policy    AccessPolicy
	publisher events.Publisher
}

func NewEnrollmentService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, policy AccessPolicy, publisher events.Publisher) EnrollmentService {
	return &enrollmentService{
		repo:      repo,
		db:        db,
		logger:    logger,
		policy:    policy,
		publisher: publisher,
	}
}

// Enroll inserts the join row and bumps enrolled_count in one transaction.
// The composite unique index decides concurrent duplicates.
func (s *enrollmentService) Enroll(ctx context.Context, actor *models.Actor, courseID, studentID uint) (*models.Enrollment, error) {
	if studentID == 0 {
		return nil, ValidationErrors{*NewValidationError("student_id", "is required", studentID)}
	}

	course, err := loadCourse(ctx, s.repo, nil, courseID)
	if err != nil {
		return nil, err
	}

	if err := s.policy.Authorize(actor, ActionEnroll, Target{Course: course}); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Enrolling student", "course_id", courseID, "student_id", studentID)

	enrollment := &models.Enrollment{CourseID: courseID, StudentID: studentID}

	err = withTx(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := s.repo.Student().GetByID(ctx, tx, studentID); err != nil {
			return mapNotFound(err, ErrStudentNotFound)
		}

		if err := s.repo.Enrollment().Create(ctx, tx, enrollment); err != nil {
			if repositories.IsDuplicateError(err) {
				return ErrAlreadyEnrolled
			}
			return err
		}

		// the course may have been deleted since it was loaded
		return mapNotFound(s.repo.Course().AdjustEnrolledCount(ctx, tx, courseID, 1), ErrCourseNotFound)
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Student enrolled", "course_id", courseID, "student_id", studentID, "enrollment_id", enrollment.ID)
	publishEvent(ctx, s.publisher, s.logger, events.EnrollmentCreated, events.EnrollmentEventData{
		CourseID:  courseID,
		StudentID: studentID,
	})

	return enrollment, nil
}

func (s *enrollmentService) Unenroll(ctx context.Context, actor *models.Actor, courseID, studentID uint) error {
	course, err := loadCourse(ctx, s.repo, nil, courseID)
	if err != nil {
		return err
	}

	if err := s.policy.Authorize(actor, ActionUnenroll, Target{Course: course}); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Removing student from course", "course_id", courseID, "student_id", studentID)

	err = withTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.repo.Enrollment().Delete(ctx, tx, courseID, studentID); err != nil {
			return mapNotFound(err, ErrNotEnrolled)
		}
		return mapNotFound(s.repo.Course().AdjustEnrolledCount(ctx, tx, courseID, -1), ErrCourseNotFound)
	})
	if err != nil {
		return err
	}

	publishEvent(ctx, s.publisher, s.logger, events.EnrollmentDeleted, events.EnrollmentEventData{
		CourseID:  courseID,
		StudentID: studentID,
	})
	return nil
}

func (s *enrollmentService) ListStudents(ctx context.Context, actor *models.Actor, courseID uint) ([]*models.Student, error) {
	// any professor or student may view a roster, so only existence matters
	exists, err := s.repo.Course().Exists(ctx, nil, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to check course: %w", err)
	}
	if !exists {
		return nil, ErrCourseNotFound
	}

	if err := s.policy.Authorize(actor, ActionRosterView, Target{Course: &models.Course{ID: courseID}}); err != nil {
		return nil, err
	}

	students, err := s.repo.Enrollment().ListStudents(ctx, nil, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list course students: %w", err)
	}
	if students == nil {
		students = []*models.Student{}
	}
	return students, nil
}

func (s *enrollmentService) ListCourses(ctx context.Context, actor *models.Actor, userID uint) ([]*models.Course, error) {
	if err := s.policy.Authorize(actor, ActionStudentCourses, Target{UserID: userID}); err != nil {
		return nil, err
	}

	student, err := s.repo.Student().GetByUserID(ctx, nil, userID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to load student: %w", err)
	}

	courses, err := s.repo.Enrollment().ListCourses(ctx, nil, student.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list student courses: %w", err)
	}
	if courses == nil {
		courses = []*models.Course{}
	}
	return courses, nil
}

func (s *enrollmentService) ExportRoster(ctx context.Context, actor *models.Actor, courseID uint) (*RosterExport, error) {
	course, err := loadCourse(ctx, s.repo, nil, courseID)
	if err != nil {
		return nil, err
	}

	if err := s.policy.Authorize(actor, ActionRosterExport, Target{Course: course}); err != nil {
		return nil, err
	}

	roster, err := s.repo.Enrollment().ListRoster(ctx, nil, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	data, err := export.RosterWorkbook(course, roster)
	if err != nil {
		return nil, fmt.Errorf("failed to build roster workbook: %w", err)
	}

	s.logger.InfoContext(ctx, "Roster exported", "course_id", courseID, "students", len(roster))

	return &RosterExport{
		Filename:    export.RosterFilename(course),
		ContentType: export.ContentTypeXLSX,
		Data:        data,
	}, nil
}
