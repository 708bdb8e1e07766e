package security

import (
	"context"
	"time"
)

// Denylist 记录已注销 Token 的 jti
type Denylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type nopDenylist struct{}

// NopDenylist 未配置 Redis 时使用，注销不生效
func NopDenylist() Denylist {
	return nopDenylist{}
}

func (nopDenylist) Revoke(context.Context, string, time.Duration) error {
	return nil
}

func (nopDenylist) IsRevoked(context.Context, string) (bool, error) {
	return false, nil
}
