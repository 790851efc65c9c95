package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/events"
	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories"
	"github.com/SAP-F-2025/course-service/internal/storage"
)

// DefaultMaxUploadSize is 10 MiB.
const DefaultMaxUploadSize int64 = 10 * 1024 * 1024

type courseFileService struct {
	repo          repositories.Repository
	db            *gorm.DB
	logger        *slog.Logger
	policy        AccessPolicy
	blobs         storage.BlobStore
	publisher     events.Publisher
	maxUploadSize int64
}

func NewCourseFileService(
	repo repositories.Repository,
	db *gorm.DB,
	logger *slog.Logger,
	policy AccessPolicy,
	blobs storage.BlobStore,
	publisher events.Publisher,
	maxUploadSize int64,
) CourseFileService {
	if maxUploadSize <= 0 {
		maxUploadSize = DefaultMaxUploadSize
	}
	return &courseFileService{
		repo:          repo,
		db:            db,
		logger:        logger,
		policy:        policy,
		blobs:         blobs,
		publisher:     publisher,
		maxUploadSize: maxUploadSize,
	}
}

func (s *courseFileService) MaxUploadSize() int64 {
	return s.maxUploadSize
}

func (s *courseFileService) Upload(ctx context.Context, actor *models.Actor, courseID uint, in UploadInput) (*models.CourseFile, error) {
	course, err := loadCourse(ctx, s.repo, nil, courseID)
	if err != nil {
		return nil, err
	}

	if err := s.policy.Authorize(actor, ActionFileUpload, Target{Course: course}); err != nil {
		return nil, err
	}

	if in.Reader == nil {
		return nil, ErrFileMissing
	}
	if in.Size > s.maxUploadSize {
		return nil, &FileTooLargeError{Limit: s.maxUploadSize}
	}

	filename := originalFilename(in.Filename)
	key := storage.CourseFileKey(courseID, filename)

	s.logger.InfoContext(ctx, "Uploading course file", "course_id", courseID, "filename", filename, "size", in.Size)

	// the declared size can lie; read at most one byte past the limit
	written, err := s.blobs.Save(ctx, key, io.LimitReader(in.Reader, s.maxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}
	if written > s.maxUploadSize {
		s.removeBlob(ctx, key)
		return nil, &FileTooLargeError{Limit: s.maxUploadSize}
	}

	file := &models.CourseFile{
		CourseID:    courseID,
		Filename:    filename,
		Filepath:    key,
		Size:        written,
		ContentType: in.ContentType,
	}
	if err := s.repo.CourseFile().Create(ctx, nil, file); err != nil {
		s.removeBlob(ctx, key)
		return nil, fmt.Errorf("failed to save file record: %w", err)
	}

	s.logger.InfoContext(ctx, "Course file uploaded", "course_id", courseID, "file_id", file.ID, "filepath", key)
	publishEvent(ctx, s.publisher, s.logger, events.CourseFileUploaded, events.CourseFileEventData{
		CourseID: courseID,
		FileID:   file.ID,
		Filename: file.Filename,
		Filepath: file.Filepath,
		Size:     file.Size,
	})

	return file, nil
}

func (s *courseFileService) Delete(ctx context.Context, actor *models.Actor, courseID, fileID uint) error {
	course, err := loadCourse(ctx, s.repo, nil, courseID)
	if err != nil {
		return err
	}

	if err := s.policy.Authorize(actor, ActionFileDelete, Target{Course: course}); err != nil {
		return err
	}

	file, err := s.loadFile(ctx, fileID)
	if err != nil {
		return err
	}

	// ownership of course A never reaches files of course B
	if file.CourseID != courseID {
		return NewPermissionError(actor.UserID(), fileID, "course_file", "delete", "file belongs to another course")
	}

	s.logger.InfoContext(ctx, "Deleting course file", "course_id", courseID, "file_id", fileID)

	if err := s.blobs.Delete(ctx, file.Filepath); err != nil {
		return fmt.Errorf("failed to delete stored file: %w", err)
	}

	if err := s.repo.CourseFile().Delete(ctx, nil, fileID); err != nil {
		return mapNotFound(err, ErrFileNotFound)
	}

	publishEvent(ctx, s.publisher, s.logger, events.CourseFileDeleted, events.CourseFileEventData{
		CourseID: courseID,
		FileID:   fileID,
		Filename: file.Filename,
		Filepath: file.Filepath,
	})

	return nil
}

func (s *courseFileService) Download(ctx context.Context, actor *models.Actor, courseID, fileID uint) (*models.CourseFile, io.ReadCloser, error) {
	course, err := loadCourse(ctx, s.repo, nil, courseID)
	if err != nil {
		return nil, nil, err
	}

	target := Target{Course: course}
	if actor.IsStudent() {
		enrolled, err := s.repo.Enrollment().Exists(ctx, nil, courseID, actor.Student.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to check enrollment: %w", err)
		}
		target.Enrolled = enrolled
	}

	if err := s.policy.Authorize(actor, ActionFileDownload, target); err != nil {
		return nil, nil, err
	}

	file, err := s.loadFile(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}
	if file.CourseID != courseID {
		return nil, nil, NewPermissionError(actor.UserID(), fileID, "course_file", "download", "file belongs to another course")
	}

	rc, err := s.blobs.Open(ctx, file.Filepath)
	if err != nil {
		if errors.Is(err, storage.ErrBlobNotFound) {
			s.logger.WarnContext(ctx, "File record without blob", "file_id", fileID, "filepath", file.Filepath)
			return nil, nil, ErrFileNotFound
		}
		return nil, nil, fmt.Errorf("failed to open stored file: %w", err)
	}

	return file, rc, nil
}

func (s *courseFileService) loadFile(ctx context.Context, fileID uint) (*models.CourseFile, error) {
	file, err := s.repo.CourseFile().GetByID(ctx, nil, fileID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to load course file: %w", err)
	}
	return file, nil
}

func (s *courseFileService) removeBlob(ctx context.Context, key string) {
	if err := s.blobs.Delete(ctx, key); err != nil {
		s.logger.WarnContext(ctx, "Failed to remove orphaned blob", "filepath", key, "error", err)
	}
}

func originalFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "file"
	}
	return name
}
