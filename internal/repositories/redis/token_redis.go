package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/SAP-F-2025/course-service/internal/repositories"
)

const (
	sessionKeyPrefix     = "session:"
	userSessionKeyPrefix = "user_sessions:"
)

// TokenRedis keeps session digests in Redis: session:<digest> holds the user id,
// user_sessions:<user id> indexes a user's digests for bulk revocation.
type TokenRedis struct {
	client *goredis.Client
}

func NewTokenRedis(client *goredis.Client) *TokenRedis {
	return &TokenRedis{client: client}
}

func sessionKey(tokenHash string) string {
	return sessionKeyPrefix + tokenHash
}

func userSessionsKey(userID uint) string {
	return userSessionKeyPrefix + strconv.FormatUint(uint64(userID), 10)
}

func (r *TokenRedis) Store(ctx context.Context, tokenHash string, userID uint, ttl time.Duration) error {
	pipe := r.client.TxPipeline()
	// zero ttl keeps the key until revoked
	pipe.Set(ctx, sessionKey(tokenHash), strconv.FormatUint(uint64(userID), 10), ttl)
	pipe.SAdd(ctx, userSessionsKey(userID), tokenHash)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store session failed: %w", err)
	}
	return nil
}

func (r *TokenRedis) Lookup(ctx context.Context, tokenHash string) (uint, error) {
	val, err := r.client.Get(ctx, sessionKey(tokenHash)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, fmt.Errorf("lookup session failed: %w", repositories.ErrNotFound)
		}
		return 0, fmt.Errorf("lookup session failed: %w", err)
	}

	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt session value %q: %w", val, err)
	}
	return uint(userID), nil
}

func (r *TokenRedis) Revoke(ctx context.Context, tokenHash string) error {
	userID, err := r.Lookup(ctx, tokenHash)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, sessionKey(tokenHash))
	pipe.SRem(ctx, userSessionsKey(userID), tokenHash)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("revoke session failed: %w", err)
	}
	return nil
}

func (r *TokenRedis) RevokeAllForUser(ctx context.Context, userID uint) error {
	hashes, err := r.client.SMembers(ctx, userSessionsKey(userID)).Result()
	if err != nil {
		return fmt.Errorf("list user sessions failed: %w", err)
	}

	keys := make([]string, 0, len(hashes)+1)
	for _, h := range hashes {
		keys = append(keys, sessionKey(h))
	}
	keys = append(keys, userSessionsKey(userID))

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("revoke user sessions failed: %w", err)
	}
	return nil
}
