package services

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/events"
	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories"
)

func withTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}

// publishEvent never fails the caller; broker errors are only logged.
func publishEvent(ctx context.Context, publisher events.Publisher, logger *slog.Logger, eventType events.EventType, data interface{}) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, events.NewEvent(eventType, data)); err != nil {
		logger.WarnContext(ctx, "Failed to publish event", "event_type", eventType, "error", err)
	}
}

// mapNotFound replaces a repository not-found error with target.
func mapNotFound(err error, target error) error {
	if repositories.IsNotFoundError(err) {
		return target
	}
	return err
}

// loadCourse fetches a course and maps a missing row to ErrCourseNotFound.
func loadCourse(ctx context.Context, repo repositories.Repository, tx *gorm.DB, courseID uint) (*models.Course, error) {
	course, err := repo.Course().GetByID(ctx, tx, courseID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to load course: %w", err)
	}
	return course, nil
}
