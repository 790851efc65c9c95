package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories"
)

const defaultTokenName = "main"

// accessTokenPostgreSQL stores sessions in access_tokens when Redis is not configured.
type accessTokenPostgreSQL struct {
	db  *gorm.DB
	now func() time.Time
}

func NewAccessTokenPostgreSQL(db *gorm.DB) repositories.TokenRepository {
	return &accessTokenPostgreSQL{db: db, now: time.Now}
}

func (r *accessTokenPostgreSQL) Store(ctx context.Context, tokenHash string, userID uint, ttl time.Duration) error {
	token := &models.AccessToken{
		UserID:    userID,
		Name:      defaultTokenName,
		TokenHash: tokenHash,
	}
	if ttl > 0 {
		expires := r.now().Add(ttl)
		token.ExpiresAt = &expires
	}

	if err := r.db.WithContext(ctx).Create(token).Error; err != nil {
		return handleDBError(err, "store access token")
	}
	return nil
}

func (r *accessTokenPostgreSQL) Lookup(ctx context.Context, tokenHash string) (uint, error) {
	var token models.AccessToken
	if err := r.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		First(&token).Error; err != nil {
		return 0, handleDBError(err, "lookup access token")
	}

	if token.Expired(r.now()) {
		return 0, handleDBError(gorm.ErrRecordNotFound, "lookup access token")
	}

	return token.UserID, nil
}

func (r *accessTokenPostgreSQL) Revoke(ctx context.Context, tokenHash string) error {
	result := r.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		Delete(&models.AccessToken{})
	if result.Error != nil {
		return handleDBError(result.Error, "revoke access token")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "revoke access token")
	}
	return nil
}

func (r *accessTokenPostgreSQL) RevokeAllForUser(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.AccessToken{}).Error; err != nil {
		return handleDBError(err, "revoke user access tokens")
	}
	return nil
}
