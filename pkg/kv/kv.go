package kv

import (
	"context"
	"time"
)

// Store 键值存储抽象
// 线上为数据库实现，测试用内存实现。
// 调用方自行决定存储不可用时的降级策略（限流/幂等都选择 fail-open），
// 这里只如实返回错误
type Store interface {
	// Get 读取键值，第二个返回值表示键是否存在（过期视同不存在）
	Get(ctx context.Context, key string) (string, bool, error)

	// Set 写入键值并设置过期时间，ttl <= 0 表示永不过期
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Incr 计数器原子自增，返回自增后的值；键不存在时从 1 开始
	Incr(ctx context.Context, key string) (int64, error)

	// Expire 设置已有键的过期时间
	Expire(ctx context.Context, key string, ttl time.Duration) error

	// Delete 删除键
	Delete(ctx context.Context, key string) error
}
