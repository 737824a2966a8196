package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"selling-sisters-api/pkg/kv"
)

const (
	idempotencyPrefix = "selling-sisters:order:"
	idempotencyTTL    = 7 * 24 * time.Hour
)

// IdempotencyGuard 订单幂等保护:
// 同一个 idempotency key 七天内重复提交返回首次的订单号。
// KV 故障时放行请求 (fail-open)，宁可偶尔重复下单也不能拦住真客户。
type IdempotencyGuard struct {
	store  kv.Store
	logger *zap.Logger
}

func NewIdempotencyGuard(store kv.Store, logger *zap.Logger) *IdempotencyGuard {
	return &IdempotencyGuard{store: store, logger: logger}
}

// Lookup 返回该 key 已有的订单号，没有则返回 ("", false)
func (g *IdempotencyGuard) Lookup(ctx context.Context, key string) (string, bool) {
	if key == "" {
		return "", false
	}
	orderID, found, err := g.store.Get(ctx, idempotencyPrefix+key)
	if err != nil {
		g.logger.Warn("idempotency_lookup_failed", zap.Error(err))
		return "", false
	}
	return orderID, found
}

// Record 记录 key -> 订单号，失败只打日志，此时订单已经成功接收
func (g *IdempotencyGuard) Record(ctx context.Context, key, orderID string) {
	if key == "" {
		return
	}
	if err := g.store.Set(ctx, idempotencyPrefix+key, orderID, idempotencyTTL); err != nil {
		g.logger.Warn("idempotency_store_failed",
			zap.String("order_id", orderID),
			zap.Error(err))
	}
}
