package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories"
	"github.com/SAP-F-2025/course-service/internal/validator"
)

const tokenBytes = 40

type authService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
	tokenTTL  time.Duration
}

func NewAuthService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator, tokenTTL time.Duration) AuthService {
	return &authService{
		repo:      repo,
		db:        db,
		logger:    logger,
		validator: validator,
		tokenTTL:  tokenTTL,
	}
}

// HashToken returns the stored form of a bearer token.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func (s *authService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	req.Email = models.NormalizeEmail(req.Email)
	if errors := s.validator.Struct(req); len(errors) > 0 {
		return nil, errors
	}

	user, err := s.repo.User().GetByEmail(ctx, nil, req.Email)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			s.logger.InfoContext(ctx, "Login rejected", "reason", "unknown email")
			return nil, ErrEmailNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.CheckPassword(req.Password) {
		s.logger.InfoContext(ctx, "Login rejected", "user_id", user.ID, "reason", "incorrect password")
		return nil, ErrIncorrectPassword
	}

	token, err := newToken()
	if err != nil {
		return nil, err
	}

	if err := s.repo.Token().Store(ctx, HashToken(token), user.ID, s.tokenTTL); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	s.logger.InfoContext(ctx, "User logged in", "user_id", user.ID, "role", user.Role)

	return &LoginResponse{User: user, Token: token}, nil
}

func (s *authService) Validate(ctx context.Context, token string) (*models.Actor, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrUnauthenticated
	}

	userID, err := s.repo.Token().Lookup(ctx, HashToken(token))
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}

	user, err := s.repo.User().GetByID(ctx, nil, userID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}

	return s.resolveActor(ctx, user)
}

// resolveActor attaches the role profile. A missing profile leaves the actor without role capabilities.
func (s *authService) resolveActor(ctx context.Context, user *models.User) (*models.Actor, error) {
	actor := &models.Actor{User: user}

	switch user.Role {
	case models.RoleProfessor:
		professor, err := s.repo.Professor().GetByUserID(ctx, nil, user.ID)
		if err != nil && !repositories.IsNotFoundError(err) {
			return nil, fmt.Errorf("failed to load professor profile: %w", err)
		}
		actor.Professor = professor
	case models.RoleStudent:
		student, err := s.repo.Student().GetByUserID(ctx, nil, user.ID)
		if err != nil && !repositories.IsNotFoundError(err) {
			return nil, fmt.Errorf("failed to load student profile: %w", err)
		}
		actor.Student = student
	}

	return actor, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrUnauthenticated
	}

	if err := s.repo.Token().Revoke(ctx, HashToken(token)); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrUnauthenticated
		}
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	s.logger.InfoContext(ctx, "User logged out")
	return nil
}

func (s *authService) LogoutAll(ctx context.Context, actor *models.Actor) error {
	if actor == nil || actor.User == nil {
		return ErrUnauthenticated
	}

	if err := s.repo.Token().RevokeAllForUser(ctx, actor.UserID()); err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}

	s.logger.InfoContext(ctx, "User logged out everywhere", "user_id", actor.UserID())
	return nil
}

func (s *authService) Register(ctx context.Context, req *RegisterRequest) (*models.Actor, error) {
	s.logger.InfoContext(ctx, "Registering account", "role", req.Role)

	req.Email = models.NormalizeEmail(req.Email)
	if errors := s.validator.GetBusinessValidator().ValidateRegistration(req); len(errors) > 0 {
		return nil, errors
	}

	role := models.UserRole(req.Role)
	actor := &models.Actor{}

	err := s.repo.WithTransaction(ctx, func(repo repositories.Repository) error {
		exists, err := repo.User().ExistsByEmail(ctx, nil, req.Email)
		if err != nil {
			return err
		}
		if exists {
			return ValidationErrors{*NewValidationError("email", "has already been taken", req.Email)}
		}

		if role == models.RoleStudent {
			taken, err := repo.Student().ExistsByIndex(ctx, nil, req.Index)
			if err != nil {
				return err
			}
			if taken {
				return ValidationErrors{*NewValidationError("index", "has already been taken", req.Index)}
			}
		}

		user := &models.User{
			Name:  strings.TrimSpace(req.Name + " " + req.Surname),
			Email: req.Email,
			Role:  role,
		}
		if err := user.SetPassword(req.Password); err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		if err := repo.User().Create(ctx, nil, user); err != nil {
			return err
		}
		actor.User = user

		switch role {
		case models.RoleProfessor:
			professor := &models.Professor{UserID: user.ID, Name: req.Name, Surname: req.Surname}
			if err := repo.Professor().Create(ctx, nil, professor); err != nil {
				return err
			}
			actor.Professor = professor
		case models.RoleStudent:
			student := &models.Student{UserID: user.ID, Name: req.Name, Surname: req.Surname, Index: req.Index}
			if err := repo.Student().Create(ctx, nil, student); err != nil {
				return err
			}
			actor.Student = student
		}

		return nil
	})
	if err != nil {
		if repositories.IsDuplicateError(err) {
			// lost a race with a concurrent registration
			return nil, ValidationErrors{*NewValidationError("email", "has already been taken", req.Email)}
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "Account registered", "user_id", actor.User.ID, "role", role)
	return actor, nil
}
