package repository

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenBlacklist 记录已登出但尚未过期的会话 token。
type TokenBlacklist interface {
	Add(ctx context.Context, token string, ttl time.Duration) error
	Contains(ctx context.Context, token string) (bool, error)
}

// redisTokenBlacklist 是 TokenBlacklist 的 Redis 实现。
// key 的过期时间取 token 的剩余有效期，过期后自动清理。
type redisTokenBlacklist struct {
	rdb *redis.Client
}

// NewTokenBlacklist 创建一个基于 Redis 的 TokenBlacklist。
func NewTokenBlacklist(rdb *redis.Client) TokenBlacklist {
	return &redisTokenBlacklist{rdb: rdb}
}

// Add 将 token 加入黑名单，值为 "true"，并设置过期时间。
func (b *redisTokenBlacklist) Add(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// 已过期的 token 无需入黑名单
		return nil
	}
	return b.rdb.Set(ctx, "blacklist:"+token, "true", ttl).Err()
}

// Contains 判断 token 是否在黑名单中。
func (b *redisTokenBlacklist) Contains(ctx context.Context, token string) (bool, error) {
	n, err := b.rdb.Exists(ctx, "blacklist:"+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
