package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/repositories"
)

const pgUniqueViolation = "23505"

// handleDBError wraps err with the operation name and maps driver errors onto
// repositories.ErrNotFound and repositories.ErrDuplicate.
func handleDBError(err error, operation string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s failed: %w", operation, repositories.ErrNotFound)
	case isUniqueViolation(err):
		return fmt.Errorf("%s failed: %w: %v", operation, repositories.ErrDuplicate, err)
	}

	return fmt.Errorf("%s failed: %w", operation, err)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	// sqlite drivers only expose the constraint failure through the message
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func getDB(db, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return db
}
