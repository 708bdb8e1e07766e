package redis

import (
	"Blogverse/internal/pkg/consts"
	"Blogverse/internal/pkg/security"
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist 基于 Redis 的 Token 注销列表
type TokenDenylist struct {
	rdb redis.Cmdable
}

var _ security.Denylist = (*TokenDenylist)(nil)

func NewTokenDenylist(rdb redis.Cmdable) *TokenDenylist {
	return &TokenDenylist{rdb: rdb}
}

// Revoke ttl 为 0 表示永久保存，用于没有过期时间的 Token
func (s *TokenDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	return s.rdb.Set(ctx, consts.RevokedTokenKey+jti, 1, ttl).Err()
}

func (s *TokenDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	_, err := s.rdb.Get(ctx, consts.RevokedTokenKey+jti).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
