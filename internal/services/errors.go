package services

import (
	"errors"
	"fmt"

	"github.com/SAP-F-2025/course-service/internal/validator"
)

// Generic errors, mapped to HTTP statuses by the handlers
var (
	ErrUnauthenticated  = errors.New("not authenticated")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrConflict         = errors.New("resource conflict")
)

// Authentication errors
var (
	ErrEmailNotFound     = fmt.Errorf("email not found: %w", ErrNotFound)
	ErrIncorrectPassword = errors.New("incorrect password")
)

// Course domain errors
var (
	ErrCourseNotFound    = fmt.Errorf("course not found: %w", ErrNotFound)
	ErrStudentNotFound   = fmt.Errorf("student not found: %w", ErrNotFound)
	ErrProfessorNotFound = fmt.Errorf("professor not found: %w", ErrNotFound)
	ErrFileNotFound      = fmt.Errorf("course file not found: %w", ErrNotFound)
	ErrNotEnrolled       = fmt.Errorf("student not enrolled in course: %w", ErrNotFound)
	ErrAlreadyEnrolled   = fmt.Errorf("student already attached to this course: %w", ErrConflict)
	ErrFileTooLarge      = fmt.Errorf("file exceeds the upload limit: %w", ErrValidationFailed)
	ErrFileMissing       = fmt.Errorf("file is required: %w", ErrValidationFailed)
)

type ValidationError = validator.ValidationError
type ValidationErrors = validator.ValidationErrors

func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Value:   value,
		Rule:    "business_logic",
	}
}

// PermissionError is a Forbidden with context. errors.Is(err, ErrForbidden) holds.
type PermissionError struct {
	UserID     uint   `json:"user_id"`
	ResourceID uint   `json:"resource_id"`
	Resource   string `json:"resource"`
	Action     string `json:"action"`
	Reason     string `json:"reason"`
}

func NewPermissionError(userID, resourceID uint, resource, action, reason string) *PermissionError {
	return &PermissionError{
		UserID:     userID,
		ResourceID: resourceID,
		Resource:   resource,
		Action:     action,
		Reason:     reason,
	}
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: user %d cannot %s %s %d: %s", e.UserID, e.Action, e.Resource, e.ResourceID, e.Reason)
}

func (e *PermissionError) Unwrap() error {
	return ErrForbidden
}

// FileTooLargeError carries the upload limit that was exceeded. errors.Is(err, ErrFileTooLarge) holds.
type FileTooLargeError struct {
	Limit int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("file exceeds the upload limit of %d bytes", e.Limit)
}

func (e *FileTooLargeError) Unwrap() error {
	return ErrFileTooLarge
}
