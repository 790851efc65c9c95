package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories"
)

type directoryService struct {
	repo   repositories.Repository
	logger *slog.Logger
	policy AccessPolicy
}

func NewDirectoryService(repo repositories.Repository, logger *slog.Logger, policy AccessPolicy) DirectoryService {
	return &directoryService{repo: repo, logger: logger, policy: policy}
}

func (s *directoryService) ListStudents(ctx context.Context, actor *models.Actor) ([]*models.Student, error) {
	if err := s.policy.Authorize(actor, ActionDirectoryView, Target{}); err != nil {
		return nil, err
	}

	students, err := s.repo.Student().List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}

func (s *directoryService) ListProfessors(ctx context.Context, actor *models.Actor) ([]*models.Professor, error) {
	if err := s.policy.Authorize(actor, ActionDirectoryView, Target{}); err != nil {
		return nil, err
	}

	professors, err := s.repo.Professor().List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list professors: %w", err)
	}
	return professors, nil
}

func (s *directoryService) GetStudent(ctx context.Context, actor *models.Actor, id uint) (*models.Student, error) {
	if err := s.policy.Authorize(actor, ActionDirectoryView, Target{}); err != nil {
		return nil, err
	}

	student, err := s.repo.Student().GetByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %w", mapNotFound(err, ErrStudentNotFound))
	}
	return student, nil
}

func (s *directoryService) GetProfessor(ctx context.Context, actor *models.Actor, id uint) (*models.Professor, error) {
	if err := s.policy.Authorize(actor, ActionDirectoryView, Target{}); err != nil {
		return nil, err
	}

	professor, err := s.repo.Professor().GetByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get professor: %w", mapNotFound(err, ErrProfessorNotFound))
	}
	return professor, nil
}
